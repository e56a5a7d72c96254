package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cardapio/storefront-service/internal/domain/model"
	"github.com/cardapio/storefront-service/internal/metrics"
	"github.com/cardapio/storefront-service/internal/repository"
)

const defaultMirrorTimeout = 5 * time.Second

// CartMirror keeps a best-effort copy of each cart in the configured
// backend. The in-memory cart stays authoritative: every failure here
// is logged and swallowed, never surfaced to the caller.
type CartMirror struct {
	repo    repository.CartRepositoryInterface
	timeout time.Duration
}

// NewCartMirror creates a mirror over repo. A nil repo disables
// mirroring (memory-only deployment).
func NewCartMirror(repo repository.CartRepositoryInterface, timeout time.Duration) *CartMirror {
	if timeout <= 0 {
		timeout = defaultMirrorTimeout
	}
	return &CartMirror{repo: repo, timeout: timeout}
}

// Enabled reports whether a backend is configured.
func (m *CartMirror) Enabled() bool {
	return m != nil && m.repo != nil
}

// Rehydrate loads the mirrored item list for a session. Absent,
// malformed, or unreadable mirrors all yield nil.
func (m *CartMirror) Rehydrate(ctx context.Context, sessionID string) []model.LineItem {
	if !m.Enabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	items, err := m.repo.Load(ctx, sessionID)
	if err != nil {
		log.Warn().
			Err(err).
			Str("session_id", sessionID).
			Msg("Cart rehydration failed, starting empty")
		return nil
	}
	return items
}

// Watch subscribes the store so every mutation schedules a best-effort
// write of the full item list. Writes for one session go through a
// single in-flight worker that always keeps the newest pending
// snapshot, so a slow backend can never leave a stale cart mirrored
// over a newer one.
func (m *CartMirror) Watch(sessionID string, store *CartStore) {
	if !m.Enabled() {
		return
	}
	w := &mirrorWriter{mirror: m, sessionID: sessionID}
	store.Subscribe(w.enqueue)
}

// mirrorWriter serializes mirror writes for one session. Snapshots
// are coalesced latest-wins by revision; the drain goroutine exists
// only while a write is pending.
type mirrorWriter struct {
	mirror    *CartMirror
	sessionID string

	mu      sync.Mutex
	pending model.CartSnapshot
	queued  bool
	running bool
	latest  uint64
}

func (w *mirrorWriter) enqueue(snap model.CartSnapshot) {
	w.mu.Lock()
	if snap.Revision <= w.latest {
		w.mu.Unlock()
		return
	}
	w.latest = snap.Revision
	w.pending = snap
	w.queued = true
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.drain()
}

func (w *mirrorWriter) drain() {
	for {
		w.mu.Lock()
		if !w.queued {
			w.running = false
			w.mu.Unlock()
			return
		}
		snap := w.pending
		w.queued = false
		w.mu.Unlock()

		w.mirror.save(w.sessionID, snap.Items)
	}
}

// Forget drops the mirror for a session, e.g. on TTL eviction of an
// empty cart. Best effort like every other write.
func (m *CartMirror) Forget(sessionID string) {
	if !m.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		if err := m.repo.Delete(ctx, sessionID); err != nil {
			log.Warn().
				Err(err).
				Str("session_id", sessionID).
				Msg("Cart mirror delete failed")
		}
	}()
}

func (m *CartMirror) save(sessionID string, items []model.LineItem) {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	if err := m.repo.Save(ctx, sessionID, items); err != nil {
		metrics.RecordCartMirrorFailure()
		log.Warn().
			Err(err).
			Str("session_id", sessionID).
			Int("items", len(items)).
			Msg("Cart mirror write failed")
	}
}
