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

// Discord metric names
const (
	MetricNameCommandsTotal = "discord_commands_total"
)

// Calculation metric names
const (
	MetricNameCalculationsTotal = "magic_crit_calculations_total"
	MetricNameCappedResults     = "magic_crit_capped_results_total"
	MetricNameCacheHits         = "magic_crit_cache_hits_total"
	MetricNameCacheMisses       = "magic_crit_cache_misses_total"
)

// Keep-alive metric names
const (
	MetricNameKeepAlivePings = "keepalive_pings_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextCommandsTotal = "Total number of slash commands handled"

	HelpTextCalculationsTotal = "Total number of magic critical rate calculations by outcome"
	HelpTextCappedResults     = "Total number of calculations that exceeded the display cap"
	HelpTextCacheHits         = "Total number of calculations served from cache"
	HelpTextCacheMisses       = "Total number of calculations that missed the cache"

	HelpTextKeepAlivePings = "Total number of keep-alive pings by status"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelCommand = "command"
	LabelOutcome = "outcome"
)

// Outcome label values
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Ping status label values
const (
	PingStatusOK     = "ok"
	PingStatusFailed = "failed"
)

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets are histogram buckets for HTTP latency (seconds)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
