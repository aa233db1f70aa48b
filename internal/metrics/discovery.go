package metrics

import "github.com/prometheus/client_golang/prometheus"

// Discovery and suggestion Prometheus metrics.
var (
	DiscoveryRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendex",
			Name:      "discovery_requests_total",
			Help:      "Total number of vendor discovery requests",
		},
		[]string{"source"}, // "search" / "fallback"
	)

	DiscoveryCandidatesFilteredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendex",
			Name:      "discovery_candidates_filtered_total",
			Help:      "Candidates dropped as collection pages, by rule",
		},
		[]string{"rule"},
	)

	SearchProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendex",
			Name:      "search_provider_requests_total",
			Help:      "Total upstream search provider requests",
		},
		[]string{"provider", "status"},
	)

	SearchCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendex",
			Name:      "search_cache_total",
			Help:      "Search result cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	SuggestionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendex",
			Name:      "suggestion_requests_total",
			Help:      "Total AI suggestion requests",
		},
		[]string{"provider", "status"},
	)

	SuggestionRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vendex",
			Name:      "suggestion_request_duration_seconds",
			Help:      "AI suggestion request duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"provider"},
	)
)

var discoveryMetricsRegistered bool

// RegisterDiscoveryMetrics registers discovery Prometheus metrics. Must be called once from main.
func RegisterDiscoveryMetrics() {
	if discoveryMetricsRegistered {
		return
	}
	prometheus.MustRegister(DiscoveryRequestsTotal)
	prometheus.MustRegister(DiscoveryCandidatesFilteredTotal)
	prometheus.MustRegister(SearchProviderRequestsTotal)
	prometheus.MustRegister(SearchCacheTotal)
	prometheus.MustRegister(SuggestionRequestsTotal)
	prometheus.MustRegister(SuggestionRequestDuration)
	discoveryMetricsRegistered = true
}
