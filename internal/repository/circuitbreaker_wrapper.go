package repository

import (
	"context"

	"github.com/cardapio/storefront-service/internal/circuitbreaker"
	"github.com/cardapio/storefront-service/internal/domain/model"
)

// CartsRepositoryWithCircuitBreaker decorates a cart repository so a
// failing backend trips open instead of slowing every request.
type CartsRepositoryWithCircuitBreaker struct {
	inner   CartRepositoryInterface
	breaker *circuitbreaker.CircuitBreaker
}

// NewCartsRepositoryWithCircuitBreaker wraps repo with cb.
func NewCartsRepositoryWithCircuitBreaker(repo CartRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CartsRepositoryWithCircuitBreaker {
	return &CartsRepositoryWithCircuitBreaker{inner: repo, breaker: cb}
}

// Save mirrors the item list through the breaker.
func (r *CartsRepositoryWithCircuitBreaker) Save(ctx context.Context, sessionID string, items []model.LineItem) error {
	return r.breaker.Execute(ctx, func() error {
		return r.inner.Save(ctx, sessionID, items)
	})
}

// Load reads the mirror through the breaker.
func (r *CartsRepositoryWithCircuitBreaker) Load(ctx context.Context, sessionID string) ([]model.LineItem, error) {
	var items []model.LineItem
	err := r.breaker.Execute(ctx, func() error {
		var loadErr error
		items, loadErr = r.inner.Load(ctx, sessionID)
		return loadErr
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes the mirror through the breaker.
func (r *CartsRepositoryWithCircuitBreaker) Delete(ctx context.Context, sessionID string) error {
	return r.breaker.Execute(ctx, func() error {
		return r.inner.Delete(ctx, sessionID)
	})
}

// Breaker exposes the underlying breaker for health reporting.
func (r *CartsRepositoryWithCircuitBreaker) Breaker() *circuitbreaker.CircuitBreaker {
	return r.breaker
}
