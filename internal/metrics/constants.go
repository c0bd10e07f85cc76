package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameAIMode    = "rpsls_ai_mode_total"
	MetricNameAIOutcome = "rpsls_ai_outcome_total"
)

// Entropy metric names
const (
	MetricNameEntropyRequests        = "rpsls_entropy_requests_total"
	MetricNameEntropyRequestDuration = "rpsls_entropy_request_duration_seconds"
)

// History metric names
const (
	MetricNameHistoryCleanupDeleted = "rpsls_history_cleanup_deleted_total"
	MetricNameStatsCacheLookups     = "rpsls_stats_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextAIMode    = "Rounds played per computer mode"
	HelpTextAIOutcome = "Round outcomes per computer mode"
)

// Entropy metric help text
const (
	HelpTextEntropyRequests        = "Random provider requests by outcome"
	HelpTextEntropyRequestDuration = "Random provider request latency in seconds"
)

// History metric help text
const (
	HelpTextHistoryCleanupDeleted = "Total number of history records removed by cleanup"
	HelpTextStatsCacheLookups     = "Player statistics cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelMode    = "mode"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// Cache lookup results
const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// EntropyLatencyBuckets covers the random provider call up to its default 2s timeout
var EntropyLatencyBuckets = []float64{.01, .025, .05, .1, .25, .5, 1, 1.5, 2, 3}

// UnmatchedRoute labels requests that did not hit a registered route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
