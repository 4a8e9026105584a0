package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transparency_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transparency_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	QueryRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transparency_query_runs_total",
			Help: "List queries executed per collection and outcome",
		},
		[]string{"collection", "outcome"},
	)

	QueryMatched = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transparency_query_matched_records",
			Help:    "Records left after search and filters",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
		[]string{"collection"},
	)

	QueryWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transparency_query_ignored_params_total",
			Help: "Parameters ignored by lenient list queries",
		},
		[]string{"collection"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transparency_cache_lookups_total",
			Help: "Response cache lookups by result",
		},
		[]string{"result"},
	)

	CatalogRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "transparency_catalog_records",
			Help: "Records loaded per collection",
		},
		[]string{"collection"},
	)
)

// Query outcomes
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)

// Cache results
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// ObserveQuery records one pipeline run.
func ObserveQuery(collection string, matched, warnings int) {
	QueryRuns.WithLabelValues(collection, OutcomeOK).Inc()
	QueryMatched.WithLabelValues(collection).Observe(float64(matched))
	if warnings > 0 {
		QueryWarnings.WithLabelValues(collection).Add(float64(warnings))
	}
}

func QueryRejected(collection string) {
	QueryRuns.WithLabelValues(collection, OutcomeRejected).Inc()
}

// SetCatalogSize publishes collection sizes after a catalog load.
func SetCatalogSize(sizes map[string]int) {
	for collection, n := range sizes {
		CatalogRecords.WithLabelValues(collection).Set(float64(n))
	}
}
