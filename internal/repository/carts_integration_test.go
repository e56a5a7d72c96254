//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardapio/storefront-service/internal/circuitbreaker"
	"github.com/cardapio/storefront-service/internal/domain/model"
)

func testItems() []model.LineItem {
	return []model.LineItem{
		{
			ID:        "taca-tropical#1.3-kg",
			ProductID: "taca-tropical",
			Name:      "Taça Tropical",
			UnitPrice: 90,
			Quantity:  2,
			Options:   []model.ItemOption{{Label: "Tamanho", Value: "1.3 kg"}},
		},
		{
			ID:        "quiche-de-camarao",
			ProductID: "quiche-de-camarao",
			Name:      "Quiche de Camarão",
			UnitPrice: 250,
			Quantity:  1,
		},
	}
}

func TestCartsRepository_SaveAndLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewCartsRepository(db)
	sessionID := uuid.NewString()

	require.NoError(t, repo.Save(ctx, sessionID, testItems()))

	items, err := repo.Load(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "taca-tropical#1.3-kg", items[0].ID)
	assert.Equal(t, 90.0, items[0].UnitPrice)
	assert.Equal(t, "Tamanho", items[0].Options[0].Label)
}

func TestCartsRepository_SaveOverwrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewCartsRepository(db)
	sessionID := uuid.NewString()

	require.NoError(t, repo.Save(ctx, sessionID, testItems()))
	require.NoError(t, repo.Save(ctx, sessionID, testItems()[:1]))

	items, err := repo.Load(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartsRepository_LoadAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewCartsRepository(db)

	items, err := repo.Load(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestCartsRepository_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewCartsRepository(db)
	sessionID := uuid.NewString()

	require.NoError(t, repo.Save(ctx, sessionID, testItems()))
	require.NoError(t, repo.Delete(ctx, sessionID))

	items, err := repo.Load(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, items)

	// Deleting an absent cart is not an error.
	assert.NoError(t, repo.Delete(ctx, sessionID))
}

func TestCartsRepositoryWithCircuitBreaker_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig("mongodb-carts-test"))
	repo := NewCartsRepositoryWithCircuitBreaker(NewCartsRepository(db), cb)
	sessionID := uuid.NewString()

	require.NoError(t, repo.Save(ctx, sessionID, testItems()))

	items, err := repo.Load(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
}

func TestLogsRepository_CreateAndCreateMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)

	entry := &LogEntryDocument{
		Timestamp:  time.Now(),
		Level:      "info",
		Message:    "HTTP Request",
		RequestID:  uuid.NewString(),
		SessionID:  uuid.NewString(),
		Method:     "POST",
		Path:       "/api/cart/items",
		StatusCode: 200,
	}
	require.NoError(t, repo.Create(ctx, entry))

	batch := []*LogEntryDocument{
		{Timestamp: time.Now(), Level: "info", Message: "one", RequestID: uuid.NewString()},
		{Timestamp: time.Now(), Level: "warn", Message: "two", RequestID: uuid.NewString()},
	}
	require.NoError(t, repo.CreateMany(ctx, batch))
}

func TestMongoDB_TTLIndexes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	assert.NoError(t, db.SetLogsTTL(ctx, 30))
	assert.NoError(t, db.SetCartsTTL(ctx, 30*24*time.Hour))
	assert.NoError(t, db.HealthCheck(ctx))
}
