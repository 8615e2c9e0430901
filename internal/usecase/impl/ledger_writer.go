package impl

import (
	"context"
	"time"

	"athan/internal/domain/entity"
	"athan/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// LedgerResult reports what Commit persisted. Errors are per operation.
type LedgerResult struct {
	LogsWritten          int64
	SubscriptionsDeleted int64
	LogErr               error
	DeleteErr            error
}

// LedgerWriter persists delivered reminders and removes dead subscriptions.
type LedgerWriter struct {
	logRepo          repository.DeliveryLogRepository
	subscriptionRepo repository.SubscriptionRepository
	timeout          time.Duration
}

// NewLedgerWriter creates a ledger writer bounding each write by timeout.
func NewLedgerWriter(logRepo repository.DeliveryLogRepository, subscriptionRepo repository.SubscriptionRepository, timeout time.Duration) *LedgerWriter {
	return &LedgerWriter{
		logRepo:          logRepo,
		subscriptionRepo: subscriptionRepo,
		timeout:          timeout,
	}
}

// Commit issues the batched log insert and the batched subscription delete
// concurrently. A failure in one does not stop the other.
func (w *LedgerWriter) Commit(ctx context.Context, delivered []*entity.DeliveryLogEntry, invalidSubscriptionIDs []uuid.UUID) LedgerResult {
	var (
		result LedgerResult
		group  errgroup.Group
	)

	if len(delivered) > 0 {
		group.Go(func() error {
			writeCtx, cancel := context.WithTimeout(ctx, w.timeout)
			defer cancel()

			written, err := w.logRepo.AppendEntries(writeCtx, delivered)
			result.LogsWritten = written
			if err != nil {
				result.LogErr = errors.Wrap(err, "failed to append delivery log entries")
			}

			return nil
		})
	}

	if len(invalidSubscriptionIDs) > 0 {
		group.Go(func() error {
			deleteCtx, cancel := context.WithTimeout(ctx, w.timeout)
			defer cancel()

			deleted, err := w.subscriptionRepo.DeleteByIDs(deleteCtx, invalidSubscriptionIDs)
			result.SubscriptionsDeleted = deleted
			if err != nil {
				result.DeleteErr = errors.Wrap(err, "failed to delete invalid subscriptions")
			}

			return nil
		})
	}

	_ = group.Wait()

	return result
}
