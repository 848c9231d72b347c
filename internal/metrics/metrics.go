package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ResolverMetrics holds the Prometheus collectors for rate resolution.
type ResolverMetrics struct {
	// Resolutions by outcome: "resolved", "no_path".
	ResolutionsTotal *prometheus.CounterVec

	// Cache hits and misses for the resolved-rate cache.
	CacheLookupsTotal *prometheus.CounterVec

	// End-to-end resolve duration, cache included.
	ResolveDuration prometheus.Histogram
}

// NewResolverMetrics registers and returns the resolver collectors.
func NewResolverMetrics() *ResolverMetrics {
	return &ResolverMetrics{
		ResolutionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "exchanger_resolutions_total",
			Help: "Rate resolutions by outcome",
		}, []string{"outcome"}),
		CacheLookupsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "exchanger_cache_lookups_total",
			Help: "Resolved-rate cache lookups by result",
		}, []string{"result"}),
		ResolveDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "exchanger_resolve_duration_seconds",
			Help:    "Duration of rate resolutions",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
