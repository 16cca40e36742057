package metrics

import "github.com/prometheus/client_golang/prometheus"

// Comparison Prometheus metrics.
var (
	ComparisonsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mossy",
			Name:      "comparisons_total",
			Help:      "Total number of similarity comparisons",
		},
		[]string{"status"},
	)

	ComparisonDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mossy",
			Name:      "comparison_duration_seconds",
			Help:      "Similarity comparison duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	NeighborhoodConcepts = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mossy",
			Name:      "neighborhood_concepts",
			Help:      "Number of concepts per constructed neighborhood",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	ICCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mossy",
			Name:      "ic_cache_total",
			Help:      "Information-content cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var compareMetricsRegistered bool

// RegisterCompareMetrics registers comparison metrics. Must be called once from main.
func RegisterCompareMetrics() {
	if compareMetricsRegistered {
		return
	}
	prometheus.MustRegister(ComparisonsTotal)
	prometheus.MustRegister(ComparisonDuration)
	prometheus.MustRegister(NeighborhoodConcepts)
	prometheus.MustRegister(ICCacheTotal)
	compareMetricsRegistered = true
}
