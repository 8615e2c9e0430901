// Package metrics exposes dispatch tick outcomes to Prometheus.
package metrics

import (
	"net/http"

	"athan/internal/domain/entity"
	"athan/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Values of the "result" label on the ticks counter.
const (
	ResultCompleted       = "completed"
	ResultAborted         = "aborted"
	ResultLocked          = "locked"
	ResultNoPrayerTimes   = "no_prayer_times"
	ResultNoSubscriptions = "no_subscriptions"
)

// DispatchMetrics holds the collectors, registered on their own registry.
type DispatchMetrics struct {
	registry *prometheus.Registry

	ticks                *prometheus.CounterVec
	deliveries           *prometheus.CounterVec
	candidates           *prometheus.CounterVec
	tickDuration         prometheus.Histogram
	subscriptionsDeleted prometheus.Counter
	ledgerErrors         *prometheus.CounterVec
}

// New creates the dispatch collectors plus the Go runtime and process collectors.
func New() *DispatchMetrics {
	m := &DispatchMetrics{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prayer_dispatch_ticks_total",
				Help: "Number of dispatch ticks by result",
			},
			[]string{"result"},
		),
		deliveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prayer_dispatch_deliveries_total",
				Help: "Number of reminder sends by classified outcome",
			},
			[]string{"outcome"},
		),
		candidates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prayer_dispatch_candidates_total",
				Help: "Number of reminder candidates by pipeline stage",
			},
			[]string{"stage"},
		),
		tickDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "prayer_dispatch_tick_duration_seconds",
				Help:    "Histogram of tick durations",
				Buckets: prometheus.DefBuckets,
			},
		),
		subscriptionsDeleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "prayer_dispatch_subscriptions_deleted_total",
				Help: "Number of subscriptions removed after their token was reported invalid",
			},
		),
		ledgerErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prayer_dispatch_ledger_errors_total",
				Help: "Number of failed ledger writes by operation",
			},
			[]string{"op"},
		),
	}

	m.registry.MustRegister(
		m.ticks,
		m.deliveries,
		m.candidates,
		m.tickDuration,
		m.subscriptionsDeleted,
		m.ledgerErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// AsDispatchMetrics exposes the collectors through the domain interface.
func AsDispatchMetrics(m *DispatchMetrics) service.DispatchMetrics {
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *DispatchMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveTick records one finished tick.
func (m *DispatchMetrics) ObserveTick(report *entity.TickReport, err error) {
	m.ticks.WithLabelValues(tickResult(report, err)).Inc()
	if report == nil {
		return
	}

	m.tickDuration.Observe(report.Duration.Seconds())

	m.candidates.WithLabelValues("generated").Add(float64(report.Candidates))
	m.candidates.WithLabelValues("already_delivered").Add(float64(report.AlreadyDelivered))

	m.deliveries.WithLabelValues(service.Delivered.String()).Add(float64(report.Delivered))
	m.deliveries.WithLabelValues(service.TokenInvalid.String()).Add(float64(report.TokenInvalid))
	m.deliveries.WithLabelValues(service.TransientFailure.String()).Add(float64(report.TransientFailures))

	m.subscriptionsDeleted.Add(float64(report.SubscriptionsDeleted))

	for op := range report.LedgerErrors {
		m.ledgerErrors.WithLabelValues(op).Inc()
	}
}

func tickResult(report *entity.TickReport, err error) string {
	if err != nil || report == nil {
		return ResultAborted
	}

	switch report.Skipped {
	case entity.TickSkippedLocked:
		return ResultLocked
	case entity.TickSkippedNoPrayerTimes:
		return ResultNoPrayerTimes
	case entity.TickSkippedNoSubscriptions:
		return ResultNoSubscriptions
	default:
		return ResultCompleted
	}
}
