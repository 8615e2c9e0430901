package usecase

import (
	"context"

	"athan/internal/domain/entity"
)

// DispatchUsecase runs the prayer reminder pipeline once per trigger.
type DispatchUsecase interface {
	// RunTick resolves the current minute, delivers every reminder due in it
	// exactly once and repairs stale registrations. It returns an error only
	// when the tick had to abort; per-delivery and ledger failures are reported
	// in the TickReport instead.
	RunTick(ctx context.Context) (*entity.TickReport, error)
}
