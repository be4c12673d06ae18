package metrics

import "github.com/prometheus/client_golang/prometheus"

// Routing and generation Prometheus metrics.
var (
	RoutingDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "intentd",
			Name:      "routing_decisions_total",
			Help:      "Total routing decisions by resolved label",
		},
		[]string{"label"},
	)

	RoutingDegradedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "intentd",
			Name:      "routing_degraded_total",
			Help:      "Routing attempts that failed open to ambiguous",
		},
	)

	RoutingNearestDistance = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "intentd",
			Name:      "routing_nearest_distance",
			Help:      "Cosine distance to the nearest labeled example",
			Buckets:   []float64{0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.4, 0.5, 0.75, 1, 1.5, 2},
		},
	)

	GenerationRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "intentd",
			Name:      "generation_requests_total",
			Help:      "Total generation requests",
		},
		[]string{"model", "status"},
	)

	GenerationRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "intentd",
			Name:      "generation_request_duration_seconds",
			Help:      "Generation request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"model"},
	)

	GenerationFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "intentd",
			Name:      "generation_fallbacks_total",
			Help:      "Responses served from the canned fallback table",
		},
	)
)

var routingMetricsRegistered bool

// RegisterRoutingMetrics registers routing and generation metrics. Must be called once from main.
func RegisterRoutingMetrics() {
	if routingMetricsRegistered {
		return
	}
	prometheus.MustRegister(RoutingDecisionsTotal)
	prometheus.MustRegister(RoutingDegradedTotal)
	prometheus.MustRegister(RoutingNearestDistance)
	prometheus.MustRegister(GenerationRequestsTotal)
	prometheus.MustRegister(GenerationRequestDuration)
	prometheus.MustRegister(GenerationFallbacksTotal)
	routingMetricsRegistered = true
}
