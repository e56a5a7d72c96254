package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cardapio/storefront-service/internal/metrics"
)

const (
	defaultSessionTTL     = 24 * time.Hour
	sessionJanitorPeriod  = 5 * time.Minute
	sessionJanitorMaxScan = 10_000
)

type sessionEntry struct {
	store    *CartStore
	lastSeen time.Time
}

// SessionCarts owns one cart store per browsing session and evicts
// entries that have been idle past the TTL. The first touch of a
// session rehydrates its cart from the mirror.
type SessionCarts struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	ttl     time.Duration
	mirror  *CartMirror
	stop    chan struct{}
	stopped sync.Once
}

// NewSessionCarts creates the registry and starts its janitor.
func NewSessionCarts(mirror *CartMirror, ttl time.Duration) *SessionCarts {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	sc := &SessionCarts{
		entries: make(map[string]*sessionEntry),
		ttl:     ttl,
		mirror:  mirror,
		stop:    make(chan struct{}),
	}
	go sc.janitor()
	return sc
}

// Get returns the cart store for a session, creating and rehydrating
// it on first touch.
func (sc *SessionCarts) Get(ctx context.Context, sessionID string) *CartStore {
	sc.mu.Lock()
	if entry, ok := sc.entries[sessionID]; ok {
		entry.lastSeen = time.Now()
		store := entry.store
		sc.mu.Unlock()
		return store
	}
	sc.mu.Unlock()

	// Rehydration happens outside the registry lock; a concurrent
	// first touch of the same session may race, so re-check before
	// installing.
	items := sc.mirror.Rehydrate(ctx, sessionID)
	store := NewCartStoreWithItems(items)

	sc.mu.Lock()
	if entry, ok := sc.entries[sessionID]; ok {
		entry.lastSeen = time.Now()
		existing := entry.store
		sc.mu.Unlock()
		return existing
	}
	sc.entries[sessionID] = &sessionEntry{store: store, lastSeen: time.Now()}
	size := len(sc.entries)
	sc.mu.Unlock()

	sc.mirror.Watch(sessionID, store)
	metrics.SetActiveCartSessions(size)
	return store
}

// Len returns the number of sessions currently held.
func (sc *SessionCarts) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.entries)
}

// Stop terminates the janitor. Safe to call more than once.
func (sc *SessionCarts) Stop() {
	sc.stopped.Do(func() { close(sc.stop) })
}

func (sc *SessionCarts) janitor() {
	ticker := time.NewTicker(sessionJanitorPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-sc.stop:
			return
		case <-ticker.C:
			sc.evictIdle()
		}
	}
}

func (sc *SessionCarts) evictIdle() {
	cutoff := time.Now().Add(-sc.ttl)

	sc.mu.Lock()
	evicted := 0
	scanned := 0
	for id, entry := range sc.entries {
		if scanned++; scanned > sessionJanitorMaxScan {
			break
		}
		if entry.lastSeen.Before(cutoff) {
			delete(sc.entries, id)
			evicted++
		}
	}
	size := len(sc.entries)
	sc.mu.Unlock()

	metrics.SetActiveCartSessions(size)
	if evicted > 0 {
		log.Debug().
			Int("evicted", evicted).
			Int("remaining", size).
			Msg("Evicted idle cart sessions")
	}
}
