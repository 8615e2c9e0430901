package service

import (
	"context"

	"athan/internal/domain/entity"
)

// EventPublisher publishes tick reports for downstream auditing
type EventPublisher interface {
	// PublishTickReport publishes the summary of a finished tick
	PublishTickReport(ctx context.Context, report *entity.TickReport) error

	// Close releases any resources held by the publisher
	Close() error
}
