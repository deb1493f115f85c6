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

// Planner Metrics
var (
	RankingsComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRankingsComputed,
			Help: HelpTextRankingsComputed,
		},
	)

	DetailsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDetailsComputed,
			Help: HelpTextDetailsComputed,
		},
		[]string{LabelCrop},
	)

	PriceUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePriceUpdates,
			Help: HelpTextPriceUpdates,
		},
		[]string{LabelCrop},
	)

	PreferenceUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePreferenceUpdates,
			Help: HelpTextPreferenceUpdates,
		},
		[]string{LabelField},
	)

	PreferenceStoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePreferenceStoreErrors,
			Help: HelpTextPreferenceStoreErrors,
		},
		[]string{LabelOperation},
	)

	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)
)
