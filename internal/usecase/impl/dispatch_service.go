package impl

import (
	"context"
	"log/slog"
	"time"

	"athan/config"
	deliverycontext "athan/internal/delivery/context"
	"athan/internal/domain/constants"
	"athan/internal/domain/entity"
	"athan/internal/domain/repository"
	"athan/internal/domain/service"
	"athan/internal/errors"
	"athan/internal/schedule"
	"athan/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// DispatchServiceParams holds dependencies for the dispatch service, injected by Fx
type DispatchServiceParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	Resolver         *schedule.Resolver
	PrayerTimeRepo   repository.PrayerTimeRepository
	SubscriptionRepo repository.SubscriptionRepository
	DeliveryLogRepo  repository.DeliveryLogRepository
	TickLock         repository.TickLock
	PushSvc          service.PushService
	Publisher        service.EventPublisher
	Metrics          service.DispatchMetrics
}

type dispatchService struct {
	logger           *slog.Logger
	resolver         *schedule.Resolver
	prayerTimeRepo   repository.PrayerTimeRepository
	subscriptionRepo repository.SubscriptionRepository
	tickLock         repository.TickLock
	gate             *DedupGate
	dispatcher       *Dispatcher
	ledger           *LedgerWriter
	publisher        service.EventPublisher
	metrics          service.DispatchMetrics
	storeTimeout     time.Duration
	tickTimeout      time.Duration
}

// NewDispatchService wires the tick pipeline
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	cfg := params.Config.Dispatch

	return &dispatchService{
		logger:           params.Logger,
		resolver:         params.Resolver,
		prayerTimeRepo:   params.PrayerTimeRepo,
		subscriptionRepo: params.SubscriptionRepo,
		tickLock:         params.TickLock,
		gate:             NewDedupGate(params.DeliveryLogRepo, cfg.StoreTimeout),
		dispatcher:       NewDispatcher(params.Logger, params.PushSvc, cfg.Body, cfg.Workers, cfg.SendTimeout),
		ledger:           NewLedgerWriter(params.DeliveryLogRepo, params.SubscriptionRepo, cfg.StoreTimeout),
		publisher:        params.Publisher,
		metrics:          params.Metrics,
		storeTimeout:     cfg.StoreTimeout,
		tickTimeout:      cfg.TickTimeout,
	}
}

// RunTick runs one pass of the pipeline: resolve time, generate candidates,
// drop already-logged ones, deliver, then commit the ledger.
func (s *dispatchService) RunTick(ctx context.Context) (*entity.TickReport, error) {
	tickID := deliverycontext.GetTickID(ctx)
	if tickID == "" {
		tickID = uuid.New().String()
		ctx = deliverycontext.WithTickID(ctx, tickID)
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String(constants.LogKeyTickID, tickID))
	ctx = deliverycontext.WithLogger(ctx, logger)

	ctx, cancel := context.WithTimeout(ctx, s.tickTimeout)
	defer cancel()

	report := &entity.TickReport{TickID: tickID, StartedAt: time.Now()}

	release, acquired, err := s.tickLock.TryAcquire(ctx)
	if err != nil {
		return s.finish(ctx, report, errors.Wrap(err, "failed to acquire tick lock"))
	}
	if !acquired {
		report.Skipped = entity.TickSkippedLocked
		logger.Warn("[Dispatch] Previous tick still running, skipping")

		return s.finish(ctx, report, nil)
	}
	defer func() {
		// Release even if the tick deadline already passed.
		releaseCtx, releaseCancel := context.WithTimeout(context.WithoutCancel(ctx), s.storeTimeout)
		defer releaseCancel()

		if releaseErr := release(releaseCtx); releaseErr != nil {
			logger.Warn("[Dispatch] Failed to release tick lock", slog.Any("error", releaseErr))
		}
	}()

	err = s.run(ctx, report)

	return s.finish(ctx, report, err)
}

func (s *dispatchService) run(ctx context.Context, report *entity.TickReport) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	today, currentMinute := s.resolver.Now()
	report.Date = today.String()
	report.Minute = currentMinute.String()

	times, err := s.fetchPrayerTimes(ctx, today)
	if errors.Is(err, repository.ErrPrayerTimesNotFound) {
		report.Skipped = entity.TickSkippedNoPrayerTimes
		logger.Warn("[Dispatch] No prayer times published for today", slog.String("date", report.Date))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to fetch prayer times")
	}

	subscriptions, err := s.fetchSubscriptions(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to fetch subscriptions")
	}
	report.Subscriptions = len(subscriptions)
	if len(subscriptions) == 0 {
		report.Skipped = entity.TickSkippedNoSubscriptions

		return nil
	}

	candidates, skipped := GenerateCandidates(times, subscriptions, today, currentMinute)
	for _, field := range skipped {
		report.SkippedFields = append(report.SkippedFields, string(field.Prayer))
		logger.Warn("[Dispatch] Skipping malformed prayer time",
			slog.String("prayer", string(field.Prayer)),
			slog.String("raw", field.Raw),
			slog.Any("error", field.Err),
		)
	}
	report.Candidates = len(candidates)

	fresh, err := s.gate.Filter(ctx, candidates)
	if err != nil {
		return err
	}
	report.AlreadyDelivered = len(candidates) - len(fresh)

	if len(fresh) == 0 {
		return nil
	}

	logger.Info("[Dispatch] Delivering reminders",
		slog.String("date", report.Date),
		slog.String("minute", report.Minute),
		slog.Int("candidate_count", len(fresh)),
	)

	results := s.dispatcher.Dispatch(ctx, fresh)
	delivered, invalidIDs := s.collectOutcomes(results, subscriptions, report)

	ledger := s.ledger.Commit(context.WithoutCancel(ctx), delivered, invalidIDs)
	report.LogsWritten = ledger.LogsWritten
	report.SubscriptionsDeleted = ledger.SubscriptionsDeleted
	if ledger.LogErr != nil || ledger.DeleteErr != nil {
		report.LedgerErrors = make(map[string]string, 2)
	}
	if ledger.LogErr != nil {
		// The event stays eligible, so a later tick in the same minute may resend it.
		report.LedgerErrors[entity.LedgerOpAppendLog] = ledger.LogErr.Error()
		logger.Error("[Dispatch] Failed to write delivery log", slog.Any("error", ledger.LogErr))
	}
	if ledger.DeleteErr != nil {
		report.LedgerErrors[entity.LedgerOpDeleteSubscriptions] = ledger.DeleteErr.Error()
		logger.Error("[Dispatch] Failed to delete invalid subscriptions", slog.Any("error", ledger.DeleteErr))
	}

	return nil
}

// collectOutcomes tallies results and returns the rows to log and the
// subscriptions to delete. A dead token takes every row sharing it.
func (s *dispatchService) collectOutcomes(
	results []DispatchResult,
	subscriptions []*entity.PushSubscription,
	report *entity.TickReport,
) ([]*entity.DeliveryLogEntry, []uuid.UUID) {
	delivered := make([]*entity.DeliveryLogEntry, 0, len(results))
	deadTokens := make(map[string]struct{})
	invalidIDs := make([]uuid.UUID, 0)
	queued := make(map[uuid.UUID]struct{})

	queue := func(id uuid.UUID) {
		if _, ok := queued[id]; ok {
			return
		}
		queued[id] = struct{}{}
		invalidIDs = append(invalidIDs, id)
	}

	for _, result := range results {
		switch result.Outcome {
		case service.Delivered:
			report.Delivered++
			delivered = append(delivered, result.Candidate.LogEntry(result.MessageID, result.SentAt))
		case service.TokenInvalid:
			report.TokenInvalid++
			deadTokens[result.Candidate.Token] = struct{}{}
			queue(result.Candidate.SubscriptionID)
		default:
			report.TransientFailures++
		}
	}

	if len(deadTokens) > 0 {
		for _, sub := range subscriptions {
			if _, dead := deadTokens[sub.Token]; dead {
				queue(sub.ID)
			}
		}
	}

	return delivered, invalidIDs
}

func (s *dispatchService) fetchPrayerTimes(ctx context.Context, today schedule.CivilDate) (*entity.DailyPrayerTimes, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	return s.prayerTimeRepo.FindByDate(fetchCtx, today)
}

func (s *dispatchService) fetchSubscriptions(ctx context.Context) ([]*entity.PushSubscription, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	return s.subscriptionRepo.FindEnabled(fetchCtx)
}

// finish stamps the report, records metrics, logs and publishes it.
func (s *dispatchService) finish(ctx context.Context, report *entity.TickReport, tickErr error) (*entity.TickReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	report.Duration = time.Since(report.StartedAt)

	s.metrics.ObserveTick(report, tickErr)

	if tickErr != nil {
		logger.Error("[Dispatch] Tick aborted",
			slog.String("date", report.Date),
			slog.String("minute", report.Minute),
			slog.Any("error", tickErr),
		)

		return report, tickErr
	}

	attrs := []any{
		slog.String("date", report.Date),
		slog.String("minute", report.Minute),
		slog.Int("candidates", report.Candidates),
		slog.Int("already_delivered", report.AlreadyDelivered),
		slog.Int("delivered", report.Delivered),
		slog.Int("token_invalid", report.TokenInvalid),
		slog.Int("transient_failures", report.TransientFailures),
		slog.Int64("subscriptions_deleted", report.SubscriptionsDeleted),
		slog.Duration("duration", report.Duration),
	}
	if report.Skipped != "" {
		attrs = append(attrs, slog.String("skipped", report.Skipped))
	}

	if report.Candidates > 0 {
		logger.Info("[Dispatch] Tick completed", attrs...)

		publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.storeTimeout)
		defer cancel()

		if err := s.publisher.PublishTickReport(publishCtx, report); err != nil {
			logger.Warn("[Dispatch] Failed to publish tick report", slog.Any("error", err))
		}
	} else {
		logger.Debug("[Dispatch] Tick completed", attrs...)
	}

	return report, nil
}
