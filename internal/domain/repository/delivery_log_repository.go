// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"athan/internal/domain/entity"
)

// DeliveryLogRepository defines the append-only ledger of delivered reminders.
type DeliveryLogRepository interface {
	// FindLoggedKeys returns the subset of keys that already have a log entry, in one query.
	FindLoggedKeys(ctx context.Context, keys []string) (map[string]struct{}, error)

	// AppendEntries inserts entries in one batch. Entries whose key is already
	// logged are skipped silently; the returned count covers new rows only.
	AppendEntries(ctx context.Context, entries []*entity.DeliveryLogEntry) (int64, error)
}
