// Package scheduler triggers dispatch ticks from an in-process cron.
package scheduler

import (
	"context"
	"log/slog"

	"athan/config"
	"athan/internal/delivery"
	deliverycontext "athan/internal/delivery/context"
	"athan/internal/domain/constants"
	"athan/internal/domain/lifecycle"
	"athan/internal/schedule"
	"athan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type cronScheduler struct {
	enabled     bool
	spec        string
	logger      *slog.Logger
	cron        *cron.Cron
	dispatchSvc usecase.DispatchUsecase
}

// CronParams holds dependencies for the cron trigger
type CronParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Resolver    *schedule.Resolver
	DispatchSvc usecase.DispatchUsecase
}

// NewCronScheduler creates the in-process tick trigger. The job chain skips a
// run while the previous one is still going, and the tick lock guards against
// other processes.
func NewCronScheduler(params CronParams) (delivery.Delivery, error) {
	cronLog := &cronLogger{logger: params.Logger}
	s := &cronScheduler{
		enabled: params.Cfg.Scheduler.Cron.Enabled,
		spec:    params.Cfg.Scheduler.Cron.Spec,
		logger:  params.Logger,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(params.Resolver.Location()),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		dispatchSvc: params.DispatchSvc,
	}

	if !s.enabled {
		return s, nil
	}

	if _, err := s.cron.AddFunc(s.spec, s.runTick); err != nil {
		return nil, errors.Wrapf(err, "invalid cron spec %q", s.spec)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the cron loop; it returns immediately and runs until stop
func (s *cronScheduler) Serve(_ context.Context) error {
	if !s.enabled {
		s.logger.Info("[Scheduler] Cron trigger disabled")

		return nil
	}

	s.logger.Info("[Scheduler] Starting cron trigger", slog.String("spec", s.spec))
	s.cron.Start()

	return nil
}

func (s *cronScheduler) runTick() {
	tickID := uuid.New().String()
	ctx := deliverycontext.WithTickID(context.Background(), tickID)

	// RunTick logs and records its own outcome.
	if _, err := s.dispatchSvc.RunTick(ctx); err != nil {
		s.logger.Debug("[Scheduler] Tick returned error", slog.String(constants.LogKeyTickID, tickID), slog.Any("error", err))
	}
}

func (s *cronScheduler) stop(ctx context.Context) error {
	s.logger.Info("[Scheduler] Stopping cron trigger")

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	// Wait for a running tick to finish its ledger writes.
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "cron tick still running at shutdown")
	}
}

// cronLogger adapts slog to cron.Logger
type cronLogger struct {
	logger *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Scheduler] "+msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Scheduler] "+msg, append(keysAndValues, slog.Any("error", err))...)
}
