// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"athan/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionRepository defines the operations the dispatch engine needs on push subscriptions.
type SubscriptionRepository interface {
	// FindEnabled retrieves every subscription with notifications enabled.
	FindEnabled(ctx context.Context) ([]*entity.PushSubscription, error)

	// DeleteByIDs removes subscriptions in one statement and returns the number of rows removed.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}
