package pubsub

import (
	"context"
	"log/slog"

	"athan/config"
	"athan/internal/domain/constants"
	"athan/internal/domain/entity"
	"athan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops tick reports when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishTickReport(_ context.Context, report *entity.TickReport) error {
	p.logger.Debug("[NoopPubSub] Report publishing disabled, skipping",
		slog.String("tick_id", report.TickID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("[PubSub] Not configured, tick reports will not be published")

		return &noopPublisher{logger: logger}, nil
	}

	var (
		publisher service.EventPublisher
		err       error
	)

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("[PubSub] Using local HTTP publisher",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("[PubSub] Closing publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// reportAttributes are the message attributes subscribers filter on.
func reportAttributes(report *entity.TickReport) map[string]string {
	attributes := map[string]string{
		"tick_id": report.TickID,
		"date":    report.Date,
		"minute":  report.Minute,
	}
	if report.Skipped != "" {
		attributes["skipped"] = report.Skipped
	}

	return attributes
}
