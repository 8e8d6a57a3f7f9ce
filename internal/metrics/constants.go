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

// Business metric names
const (
	MetricNameSpinsPerformed     = "spins_performed_total"
	MetricNamePayoutCredits      = "payout_credits_total"
	MetricNameCursesResolved     = "curses_resolved_total"
	MetricNameItemsBought        = "items_bought_total"
	MetricNameItemsUsed          = "items_used_total"
	MetricNameTalismansPurchased = "talismans_purchased_total"
	MetricNameGamesCompleted     = "games_completed_total"
	MetricNameRoundsCleared      = "rounds_cleared_total"
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

// Business metric help text
const (
	HelpTextSpinsPerformed     = "Total number of spins performed"
	HelpTextPayoutCredits      = "Total credits paid out by winning spins"
	HelpTextCursesResolved     = "Total number of curse resolutions by outcome"
	HelpTextItemsBought        = "Total number of items bought"
	HelpTextItemsUsed          = "Total number of items used"
	HelpTextTalismansPurchased = "Total number of talismans purchased"
	HelpTextGamesCompleted     = "Total number of games reaching a terminal state"
	HelpTextRoundsCleared      = "Total number of rounds cleared"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelItem       = "item"
	LabelKind       = "kind"
	LabelResolution = "resolution"
	LabelTalisman   = "talisman"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets covers the expected latency range of engine intents.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
