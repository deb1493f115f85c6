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

// Planner metric names
const (
	MetricNameRankingsComputed      = "farm_rankings_computed_total"
	MetricNameDetailsComputed       = "farm_details_computed_total"
	MetricNamePriceUpdates          = "farm_price_updates_total"
	MetricNamePreferenceUpdates     = "preference_updates_total"
	MetricNamePreferenceStoreErrors = "preference_store_errors_total"
	MetricNameStreamClients         = "ranking_stream_clients"
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

// Planner metric help text
const (
	HelpTextRankingsComputed      = "Total number of crop rankings computed"
	HelpTextDetailsComputed       = "Total number of crop detail breakdowns computed"
	HelpTextPriceUpdates          = "Total number of crop price updates"
	HelpTextPreferenceUpdates     = "Total number of preference fields written"
	HelpTextPreferenceStoreErrors = "Total number of failed preference store reads and writes"
	HelpTextStreamClients         = "Current number of connected ranking stream clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelCrop      = "crop"
	LabelField     = "field"
	LabelOperation = "operation"
)

// Store operations
const (
	OperationGet  = "get"
	OperationSet  = "set"
	OperationSeed = "seed"
)

// UnmatchedRoute labels requests no route pattern matched
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
