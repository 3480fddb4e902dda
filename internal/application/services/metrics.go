package services

import "github.com/prometheus/client_golang/prometheus"

var (
	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparison_cache_hits_total",
			Help: "The total number of comparison cache hits",
		},
		[]string{"cache"},
	)

	cacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparison_cache_misses_total",
			Help: "The total number of comparison cache misses",
		},
		[]string{"cache"},
	)

	coalescedComputes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "comparison_coalesced_computes_total",
			Help: "The total number of computations shared between concurrent callers",
		},
	)

	tagInvalidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparison_tag_invalidations_total",
			Help: "The total number of cache tag invalidations",
		},
		[]string{"tag"},
	)

	computeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "comparison_compute_duration_seconds",
			Help: "Time spent aggregating offers on a cache miss",
		},
	)
)

func init() {
	prometheus.MustRegister(cacheHits)
	prometheus.MustRegister(cacheMisses)
	prometheus.MustRegister(coalescedComputes)
	prometheus.MustRegister(tagInvalidations)
	prometheus.MustRegister(computeDuration)
}
