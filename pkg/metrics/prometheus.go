package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	cacheHits      *prometheus.CounterVec
	cacheMisses    *prometheus.CounterVec
	upstreamTotal  *prometheus.CounterVec
	fallbacksTotal prometheus.Counter
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coinpulse_cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"scope"},
		),
		cacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coinpulse_cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"scope"},
		),
		upstreamTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coinpulse_upstream_requests_total",
				Help: "Total number of upstream fetch attempts by outcome",
			},
			[]string{"source", "outcome"},
		),
		fallbacksTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "coinpulse_calendar_fallbacks_total",
				Help: "Times the calendar gateway served the static dataset",
			},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coinpulse_operation_duration_seconds",
				Help:    "Duration of data-layer operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordCacheHit records a cache hit for a scope (markets, events).
func (r *Recorder) RecordCacheHit(scope string) {
	r.cacheHits.WithLabelValues(scope).Inc()
}

// RecordCacheMiss records a cache miss for a scope.
func (r *Recorder) RecordCacheMiss(scope string) {
	r.cacheMisses.WithLabelValues(scope).Inc()
}

// RecordUpstream records an upstream fetch attempt outcome (ok, error).
func (r *Recorder) RecordUpstream(source, outcome string) {
	r.upstreamTotal.WithLabelValues(source, outcome).Inc()
}

// RecordFallback records a calendar fallback serve.
func (r *Recorder) RecordFallback() {
	r.fallbacksTotal.Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
