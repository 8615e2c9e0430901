package impl

import (
	"context"
	"time"

	"athan/internal/domain/entity"
	"athan/internal/domain/repository"

	"github.com/pkg/errors"
)

// DedupGate drops candidates whose idempotency key is already in the delivery log.
type DedupGate struct {
	logRepo repository.DeliveryLogRepository
	timeout time.Duration
}

// NewDedupGate creates a gate that bounds its lookup by timeout.
func NewDedupGate(logRepo repository.DeliveryLogRepository, timeout time.Duration) *DedupGate {
	return &DedupGate{
		logRepo: logRepo,
		timeout: timeout,
	}
}

// Filter returns the candidates not yet logged, preserving order. All keys
// are checked in a single lookup; no candidates means no store access.
func (g *DedupGate) Filter(ctx context.Context, candidates []entity.ReminderCandidate) ([]entity.ReminderCandidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(candidates))
	for _, c := range candidates {
		keys = append(keys, c.Key)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	logged, err := g.logRepo.FindLoggedKeys(lookupCtx, keys)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up delivery log")
	}

	fresh := make([]entity.ReminderCandidate, 0, len(candidates))
	for _, c := range candidates {
		if _, done := logged[c.Key]; done {
			continue
		}
		fresh = append(fresh, c)
	}

	return fresh, nil
}
