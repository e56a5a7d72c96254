//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cardapio/storefront-service/internal/circuitbreaker"
	"github.com/cardapio/storefront-service/internal/domain/model"
	"github.com/cardapio/storefront-service/internal/mocks"
)

func TestCartsRepositoryWithCircuitBreaker_PassThrough(t *testing.T) {
	ctx := context.Background()
	inner := new(mocks.MockCartRepositoryInterface)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig("test"))
	repo := NewCartsRepositoryWithCircuitBreaker(inner, cb)

	items := []model.LineItem{{ID: "banoffe#1.3-kg", Quantity: 1}}
	inner.On("Save", mock.Anything, "s1", items).Return(nil)
	inner.On("Load", mock.Anything, "s1").Return(items, nil)
	inner.On("Delete", mock.Anything, "s1").Return(nil)

	assert.NoError(t, repo.Save(ctx, "s1", items))

	loaded, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, items, loaded)

	assert.NoError(t, repo.Delete(ctx, "s1"))
	assert.Equal(t, circuitbreaker.StateClosed, repo.Breaker().State())
	inner.AssertExpectations(t)
}

func TestCartsRepositoryWithCircuitBreaker_OpensAfterFailures(t *testing.T) {
	ctx := context.Background()
	inner := new(mocks.MockCartRepositoryInterface)
	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "test",
		FailureThreshold: 2,
		SuccessThreshold: 1,
	})
	repo := NewCartsRepositoryWithCircuitBreaker(inner, cb)

	dbErr := errors.New("connection reset")
	inner.On("Save", mock.Anything, "s1", mock.Anything).Return(dbErr)

	assert.ErrorIs(t, repo.Save(ctx, "s1", nil), dbErr)
	assert.ErrorIs(t, repo.Save(ctx, "s1", nil), dbErr)
	assert.Equal(t, circuitbreaker.StateOpen, repo.Breaker().State())

	// Open breaker rejects without touching the repository.
	err := repo.Save(ctx, "s1", nil)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	inner.AssertNumberOfCalls(t, "Save", 2)
}
