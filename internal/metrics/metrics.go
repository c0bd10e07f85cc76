package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	AIMode = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAIMode,
			Help: HelpTextAIMode,
		},
		[]string{LabelMode},
	)

	AIOutcome = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAIOutcome,
			Help: HelpTextAIOutcome,
		},
		[]string{LabelMode, LabelOutcome},
	)
)

// Entropy Metrics
var (
	EntropyRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEntropyRequests,
			Help: HelpTextEntropyRequests,
		},
		[]string{LabelOutcome},
	)

	EntropyRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameEntropyRequestDuration,
			Help:    HelpTextEntropyRequestDuration,
			Buckets: EntropyLatencyBuckets,
		},
		[]string{LabelOutcome},
	)
)

// History Metrics
var (
	HistoryCleanupDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHistoryCleanupDeleted,
			Help: HelpTextHistoryCleanupDeleted,
		},
	)

	StatsCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStatsCacheLookups,
			Help: HelpTextStatsCacheLookups,
		},
		[]string{LabelResult},
	)
)
