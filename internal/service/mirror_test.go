package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cardapio/storefront-service/internal/domain/model"
	"github.com/cardapio/storefront-service/internal/mocks"
)

func TestRehydrateReturnsStoredItems(t *testing.T) {
	repo := new(mocks.MockCartRepositoryInterface)
	stored := []model.LineItem{{ID: "a", Quantity: 2, UnitPrice: 10}}
	repo.On("Load", mock.Anything, "sess-1").Return(stored, nil)

	m := NewCartMirror(repo, time.Second)

	items := m.Rehydrate(context.Background(), "sess-1")
	assert.Equal(t, stored, items)
	repo.AssertExpectations(t)
}

func TestRehydrateSwallowsErrors(t *testing.T) {
	repo := new(mocks.MockCartRepositoryInterface)
	repo.On("Load", mock.Anything, "sess-1").Return(nil, errors.New("backend down"))

	m := NewCartMirror(repo, time.Second)

	assert.Nil(t, m.Rehydrate(context.Background(), "sess-1"))
}

func TestRehydrateWithoutBackend(t *testing.T) {
	m := NewCartMirror(nil, time.Second)
	assert.False(t, m.Enabled())
	assert.Nil(t, m.Rehydrate(context.Background(), "sess-1"))
}

func TestWatchMirrorsEveryMutation(t *testing.T) {
	repo := new(mocks.MockCartRepositoryInterface)
	saved := make(chan []model.LineItem, 4)
	repo.On("Save", mock.Anything, "sess-1", mock.Anything).
		Run(func(args mock.Arguments) {
			items, _ := args.Get(2).([]model.LineItem)
			saved <- items
		}).
		Return(nil)

	m := NewCartMirror(repo, time.Second)
	store := NewCartStore()
	m.Watch("sess-1", store)

	store.AddItem(model.LineItem{ID: "a", UnitPrice: 10, Quantity: 1})

	select {
	case items := <-saved:
		require.Len(t, items, 1)
		assert.Equal(t, "a", items[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("mirror write never happened")
	}
}

func TestWatchRapidMutationsMirrorLatestState(t *testing.T) {
	repo := new(mocks.MockCartRepositoryInterface)
	firstStarted := make(chan struct{})
	release := make(chan struct{})

	var mu sync.Mutex
	var last []model.LineItem
	var first sync.Once
	repo.On("Save", mock.Anything, "sess-1", mock.Anything).
		Run(func(args mock.Arguments) {
			// Stall the first write until the second mutation is in,
			// then record whatever the backend ends up holding.
			first.Do(func() {
				close(firstStarted)
				<-release
			})
			items, _ := args.Get(2).([]model.LineItem)
			mu.Lock()
			last = items
			mu.Unlock()
		}).
		Return(nil)

	m := NewCartMirror(repo, time.Second)
	store := NewCartStore()
	m.Watch("sess-1", store)

	store.AddItem(model.LineItem{ID: "a", UnitPrice: 10, Quantity: 1})

	select {
	case <-firstStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("mirror write never started")
	}

	store.UpdateQuantity("a", 2)
	close(release)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(last) == 1 && last[0].Quantity == 2
	}, 2*time.Second, 10*time.Millisecond, "mirror must end on the newest cart state")
}

func TestWatchSwallowsSaveFailures(t *testing.T) {
	repo := new(mocks.MockCartRepositoryInterface)
	done := make(chan struct{}, 1)
	repo.On("Save", mock.Anything, "sess-1", mock.Anything).
		Run(func(mock.Arguments) { done <- struct{}{} }).
		Return(errors.New("backend down"))

	m := NewCartMirror(repo, time.Second)
	store := NewCartStore()
	m.Watch("sess-1", store)

	// The mutation itself must not observe the failure.
	snap := store.AddItem(model.LineItem{ID: "a", UnitPrice: 10, Quantity: 1})
	assert.Equal(t, 1, snap.TotalItems)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("mirror write never attempted")
	}
}

func TestForget(t *testing.T) {
	repo := new(mocks.MockCartRepositoryInterface)
	done := make(chan struct{}, 1)
	repo.On("Delete", mock.Anything, "sess-1").
		Run(func(mock.Arguments) { done <- struct{}{} }).
		Return(nil)

	m := NewCartMirror(repo, time.Second)
	m.Forget("sess-1")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("mirror delete never happened")
	}
}
