package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardapio/storefront-service/internal/domain/model"
)

func item(id string, price float64, qty int) model.LineItem {
	return model.LineItem{ID: id, ProductID: id, Name: id, UnitPrice: price, Quantity: qty}
}

func TestAddItemAppends(t *testing.T) {
	s := NewCartStore()

	snap := s.AddItem(item("a", 10, 2))

	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.TotalItems)
	assert.InDelta(t, 20.0, snap.TotalPrice, 1e-9)
}

func TestAddItemMergesSameID(t *testing.T) {
	s := NewCartStore()
	s.AddItem(item("a", 10, 1))

	snap := s.AddItem(item("a", 10, 2))

	require.Len(t, snap.Items, 1)
	assert.Equal(t, 3, snap.Items[0].Quantity)
}

func TestAddItemKeepsVariantsSeparate(t *testing.T) {
	s := NewCartStore()
	s.AddItem(item("bolo#1.3-kg", 220, 1))

	snap := s.AddItem(item("bolo#1.4-kg", 260, 1))

	assert.Len(t, snap.Items, 2)
}

func TestAddItemNormalizesQuantity(t *testing.T) {
	s := NewCartStore()
	snap := s.AddItem(item("a", 10, 0))
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	s := NewCartStore()
	s.AddItem(item("c", 1, 1))
	s.AddItem(item("a", 1, 1))
	snap := s.AddItem(item("b", 1, 1))

	ids := []string{snap.Items[0].ID, snap.Items[1].ID, snap.Items[2].ID}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestRemoveItem(t *testing.T) {
	s := NewCartStore()
	s.AddItem(item("a", 10, 1))
	s.AddItem(item("b", 5, 1))

	snap := s.RemoveItem("a")

	require.Len(t, snap.Items, 1)
	assert.Equal(t, "b", snap.Items[0].ID)
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	s := NewCartStore()
	s.AddItem(item("a", 10, 1))

	snap := s.RemoveItem("zz")

	assert.Len(t, snap.Items, 1)
}

func TestUpdateQuantitySetsExactly(t *testing.T) {
	s := NewCartStore()
	s.AddItem(item("a", 10, 2))

	snap := s.UpdateQuantity("a", 5)

	assert.Equal(t, 5, snap.Items[0].Quantity)
	assert.InDelta(t, 50.0, snap.TotalPrice, 1e-9)
}

func TestUpdateQuantityIgnoresNonPositive(t *testing.T) {
	s := NewCartStore()
	s.AddItem(item("a", 10, 2))

	snap := s.UpdateQuantity("a", 0)

	assert.Equal(t, 2, snap.Items[0].Quantity, "zero is handled as remove by callers, never stored")
}

func TestClear(t *testing.T) {
	s := NewCartStore()
	s.AddItem(item("a", 10, 2))

	snap := s.Clear()

	assert.True(t, snap.Empty())
	assert.Zero(t, snap.TotalPrice)
}

func TestSubscribeReceivesEveryMutation(t *testing.T) {
	s := NewCartStore()

	var mu sync.Mutex
	var got []model.CartSnapshot
	s.Subscribe(func(snap model.CartSnapshot) {
		mu.Lock()
		got = append(got, snap)
		mu.Unlock()
	})

	s.AddItem(item("a", 10, 1))
	s.UpdateQuantity("a", 3)
	s.RemoveItem("a")

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].TotalItems)
	assert.Equal(t, 3, got[1].TotalItems)
	assert.True(t, got[2].Empty())
}

func TestSnapshotRevisionOrdersMutations(t *testing.T) {
	s := NewCartStore()

	first := s.AddItem(item("a", 10, 1))
	second := s.UpdateQuantity("a", 2)

	assert.Greater(t, second.Revision, first.Revision)
	assert.Equal(t, second.Revision, s.Snapshot().Revision)
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := NewCartStore()
	s.AddItem(item("a", 10, 1))

	snap := s.Snapshot()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 1, s.Snapshot().Items[0].Quantity)
}

func TestNewCartStoreWithItemsDropsInvalidEntries(t *testing.T) {
	s := NewCartStoreWithItems([]model.LineItem{
		item("a", 10, 2),
		item("b", 5, 0),
		{UnitPrice: 3, Quantity: 1},
	})

	snap := s.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "a", snap.Items[0].ID)
}

func TestNewCartStoreWithItemsKeepsFirstOfDuplicateIDs(t *testing.T) {
	s := NewCartStoreWithItems([]model.LineItem{
		item("a", 10, 2),
		item("a", 10, 7),
		item("b", 5, 1),
	})

	snap := s.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "a", snap.Items[0].ID)
	assert.Equal(t, 2, snap.Items[0].Quantity)

	merged := s.AddItem(item("a", 10, 1))
	require.Len(t, merged.Items, 2)
	assert.Equal(t, 3, merged.Items[0].Quantity)
}

func TestConcurrentMutations(t *testing.T) {
	s := NewCartStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddItem(item("a", 10, 1))
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 50, snap.Items[0].Quantity)
}
