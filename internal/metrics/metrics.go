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

// Business Metrics
var (
	SpinsPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSpinsPerformed,
			Help: HelpTextSpinsPerformed,
		},
	)

	PayoutCredits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePayoutCredits,
			Help: HelpTextPayoutCredits,
		},
	)

	CursesResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCursesResolved,
			Help: HelpTextCursesResolved,
		},
		[]string{LabelResolution},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem, LabelKind},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelItem},
	)

	TalismansPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTalismansPurchased,
			Help: HelpTextTalismansPurchased,
		},
		[]string{LabelTalisman},
	)

	GamesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGamesCompleted,
			Help: HelpTextGamesCompleted,
		},
	)

	RoundsCleared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoundsCleared,
			Help: HelpTextRoundsCleared,
		},
	)
)
