// Package repository provides interfaces for persistence operations.
package repository

import (
	"context"

	"github.com/cardapio/storefront-service/internal/domain/model"
)

// CartRepositoryInterface mirrors cart item lists keyed by session ID.
// Load returns (nil, nil) when no cart is stored for the session;
// malformed stored payloads are treated the same way.
type CartRepositoryInterface interface {
	Save(ctx context.Context, sessionID string, items []model.LineItem) error
	Load(ctx context.Context, sessionID string) ([]model.LineItem, error)
	Delete(ctx context.Context, sessionID string) error
}

// LogsRepositoryInterface persists request and audit log entries.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
}
