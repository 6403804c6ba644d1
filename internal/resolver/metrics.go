package resolver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultResolved = "resolved"
	resultNotFound = "not_found"
	resultError    = "error"
)

var (
	resolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domainindexor_name_resolutions_total",
			Help: "Total number of name resolutions by resolver and result",
		},
		[]string{"resolver", "result"},
	)

	resolutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "domainindexor_name_resolution_duration_seconds",
			Help:    "Duration of name resolutions by resolver",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resolver"},
	)

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domainindexor_name_cache_lookups_total",
			Help: "Total number of name cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

func ResolutionObserve(resolver, result string, duration time.Duration) {
	resolutions.WithLabelValues(resolver, result).Inc()
	resolutionDuration.WithLabelValues(resolver).Observe(duration.Seconds())
}

func CacheHitInc() {
	cacheLookups.WithLabelValues("hit").Inc()
}

func CacheMissInc() {
	cacheLookups.WithLabelValues("miss").Inc()
}
