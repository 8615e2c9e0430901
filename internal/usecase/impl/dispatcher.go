package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "athan/internal/delivery/context"
	"athan/internal/domain/entity"
	"athan/internal/domain/service"

	"golang.org/x/sync/errgroup"
)

// DispatchResult is the classified outcome of delivering one candidate.
type DispatchResult struct {
	Candidate entity.ReminderCandidate
	Outcome   service.DeliveryOutcome
	MessageID string
	SentAt    time.Time
	Err       error
}

// Dispatcher delivers candidates through the push service.
type Dispatcher struct {
	logger      *slog.Logger
	pushSvc     service.PushService
	body        string
	workers     int
	sendTimeout time.Duration
	now         func() time.Time
}

// NewDispatcher creates a dispatcher running at most workers sends at once.
func NewDispatcher(logger *slog.Logger, pushSvc service.PushService, body string, workers int, sendTimeout time.Duration) *Dispatcher {
	if workers < 1 {
		workers = 1
	}

	return &Dispatcher{
		logger:      logger,
		pushSvc:     pushSvc,
		body:        body,
		workers:     workers,
		sendTimeout: sendTimeout,
		now:         time.Now,
	}
}

// Dispatch sends every candidate and returns one result per candidate in input order.
// Candidates carry distinct keys, so each key is handled by exactly one worker.
// A failed send never stops the others.
func (d *Dispatcher) Dispatch(ctx context.Context, candidates []entity.ReminderCandidate) []DispatchResult {
	results := make([]DispatchResult, len(candidates))

	var group errgroup.Group
	group.SetLimit(d.workers)

	for idx := range candidates {
		group.Go(func() error {
			results[idx] = d.send(ctx, candidates[idx])

			return nil
		})
	}

	_ = group.Wait()

	return results
}

func (d *Dispatcher) send(ctx context.Context, c entity.ReminderCandidate) DispatchResult {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	messageID, err := d.pushSvc.Send(sendCtx, buildPushMessage(c, d.body))
	outcome := service.ClassifyDeliveryError(err)

	result := DispatchResult{
		Candidate: c,
		Outcome:   outcome,
		MessageID: messageID,
		SentAt:    d.now(),
		Err:       err,
	}

	switch outcome {
	case service.Delivered:
		logger.Debug("[Dispatch] Reminder delivered",
			slog.String("dedupe_key", c.Key),
			slog.String("message_id", messageID),
		)
	case service.TokenInvalid:
		logger.Warn("[Dispatch] Registration gone, subscription queued for removal",
			slog.String("dedupe_key", c.Key),
			slog.String("subscription_id", c.SubscriptionID.String()),
			slog.Any("error", err),
		)
	default:
		logger.Error("[Dispatch] Reminder delivery failed",
			slog.String("dedupe_key", c.Key),
			slog.String("token_prefix", c.Token[:min(10, len(c.Token))]),
			slog.Any("error", err),
		)
	}

	return result
}
