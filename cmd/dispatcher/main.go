package main

import (
	"context"
	"log/slog"
	"os"

	"athan/config"
	"athan/internal/delivery"
	"athan/internal/delivery/scheduler"
	"athan/internal/delivery/worker"
	"athan/internal/delivery/worker/handler"
	"athan/internal/infra/lock"
	logs "athan/internal/infra/log"
	"athan/internal/infra/metrics"
	"athan/internal/infra/notification"
	"athan/internal/infra/persistence/postgres"
	"athan/internal/infra/pubsub"
	"athan/internal/schedule"
	"athan/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		// Congregation time zone, never the host zone
		func(cfg *config.Config) (*schedule.Resolver, error) {
			return schedule.NewResolver(cfg.Dispatch.TimeZone)
		},
		metrics.New,
		metrics.AsDispatchMetrics,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPrayerTimeRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewDeliveryLogRepository,
			lock.NewTickLock,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFirebaseService,
			pubsub.NewEventPublisher,
			impl.NewDispatchService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTickHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewCronScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
