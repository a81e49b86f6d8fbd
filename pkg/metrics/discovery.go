package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the search HTTP handler
	SearchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "discovery_search_latency_seconds",
		Help:    "Latency of product search handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of search requests served
	SearchRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "discovery_search_requests_total",
		Help: "Total number of product search requests",
	})

	// Total number of autocomplete suggestion requests served
	SuggestRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "discovery_suggest_requests_total",
		Help: "Total number of autocomplete suggestion requests",
	})

	// Latency of the recommendation HTTP handlers
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "discovery_recommend_latency_seconds",
		Help:    "Latency of recommendation handlers",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "discovery_recommend_requests_total",
		Help: "Total number of recommendation requests",
	})
)

func Init() {
	prometheus.MustRegister(
		SearchLatency,
		SearchRequests,
		SuggestRequests,
		RecommendLatency,
		RecommendRequests,
	)
}
