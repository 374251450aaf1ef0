package ports

import (
	"context"

	"github.com/99minutos/asset-management/internal/core/domain"
)

// AuditPublisher accepts audit events for delivery. Enqueue must not block
// the caller on downstream I/O.
type AuditPublisher interface {
	Enqueue(event domain.AuditEvent)
}

// AuditSink is one delivery target for audit events.
type AuditSink interface {
	Name() string
	Publish(ctx context.Context, event domain.AuditEvent) error
}

// AuditLog reads back stored audit events.
type AuditLog interface {
	ListByAsset(ctx context.Context, assetID int64, limit int64) ([]domain.AuditEvent, error)
}

// IdempotencyStore remembers which disposal a client key produced. Reserve
// claims key atomically before the disposal is created; Complete or Release
// settles the reservation afterwards.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
	// Lookup returns the disposal id stored under key. The id is 0 while the
	// reserving request has not completed yet.
	Lookup(ctx context.Context, key string) (int64, bool, error)
	Complete(ctx context.Context, key string, disposalID int64) error
	Release(ctx context.Context, key string) error
}
