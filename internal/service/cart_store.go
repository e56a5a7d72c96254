// Package service implements the storefront business logic.
package service

import (
	"sync"

	"github.com/cardapio/storefront-service/internal/domain/model"
)

// CartStore is the in-memory state machine of one cart. All mutations
// are serialized by a mutex and publish an immutable snapshot to every
// subscriber after the lock is released. Each mutation stamps its
// snapshot with the next revision under the lock, so subscribers can
// order snapshots even when they arrive out of order.
type CartStore struct {
	mu    sync.Mutex
	rev   uint64
	items []model.LineItem
	subs  []func(model.CartSnapshot)
}

// NewCartStore creates an empty cart.
func NewCartStore() *CartStore {
	return &CartStore{}
}

// NewCartStoreWithItems seeds a cart from a rehydrated item list.
// Entries without an ID or a positive quantity are dropped, and only
// the first entry of a repeated ID is kept, so the store never holds
// an invalid or duplicate line.
func NewCartStoreWithItems(items []model.LineItem) *CartStore {
	s := &CartStore{}
	seen := make(map[string]struct{}, len(items))
	for _, li := range items {
		if li.ID == "" || li.Quantity < 1 {
			continue
		}
		if _, dup := seen[li.ID]; dup {
			continue
		}
		seen[li.ID] = struct{}{}
		s.items = append(s.items, li)
	}
	return s
}

// Subscribe registers a snapshot listener for every future mutation.
func (s *CartStore) Subscribe(fn func(model.CartSnapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// AddItem merges the item into the cart. An existing line with the
// same ID absorbs the quantity; otherwise the item is appended.
func (s *CartStore) AddItem(item model.LineItem) model.CartSnapshot {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, item)
	}
	snap := s.nextSnapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// RemoveItem drops the line with the given ID. Removing an absent ID
// is a no-op.
func (s *CartStore) RemoveItem(id string) model.CartSnapshot {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	snap := s.nextSnapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// UpdateQuantity sets the quantity of a line exactly. Quantities below
// one are rejected here; callers treat zero as a remove before calling.
// Updating an absent ID is a no-op.
func (s *CartStore) UpdateQuantity(id string, quantity int) model.CartSnapshot {
	s.mu.Lock()
	if quantity >= 1 {
		for i := range s.items {
			if s.items[i].ID == id {
				s.items[i].Quantity = quantity
				break
			}
		}
	}
	snap := s.nextSnapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// Clear empties the cart.
func (s *CartStore) Clear() model.CartSnapshot {
	s.mu.Lock()
	s.items = nil
	snap := s.nextSnapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// Snapshot returns the current state without mutating or publishing.
func (s *CartStore) Snapshot() model.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := model.NewCartSnapshot(s.items)
	snap.Revision = s.rev
	return snap
}

func (s *CartStore) nextSnapshotLocked() model.CartSnapshot {
	s.rev++
	snap := model.NewCartSnapshot(s.items)
	snap.Revision = s.rev
	return snap
}

func (s *CartStore) publish(snap model.CartSnapshot) {
	s.mu.Lock()
	subs := make([]func(model.CartSnapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
