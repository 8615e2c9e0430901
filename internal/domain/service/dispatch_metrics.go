package service

import "athan/internal/domain/entity"

// DispatchMetrics records tick outcomes for monitoring.
type DispatchMetrics interface {
	// ObserveTick records a finished tick; err is the tick's abort error, if any.
	ObserveTick(report *entity.TickReport, err error)
}
