package cache

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for the query cache.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	hits          *prometheus.CounterVec
	misses        *prometheus.CounterVec
	invalidations *prometheus.CounterVec
	fetchSeconds  *prometheus.HistogramVec
}

// NewMetrics registers the cache collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		hits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "backoffice",
			Subsystem: "query_cache",
			Name:      "hits_total",
			Help:      "Reads served from a fresh cache entry.",
		}, []string{"kind"}),
		misses: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "backoffice",
			Subsystem: "query_cache",
			Name:      "misses_total",
			Help:      "Reads that required a fetch.",
		}, []string{"kind"}),
		invalidations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "backoffice",
			Subsystem: "query_cache",
			Name:      "invalidated_entries_total",
			Help:      "Entries marked stale by mutations.",
		}, []string{"kind", "shape"}),
		fetchSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "backoffice",
			Subsystem: "query_cache",
			Name:      "fetch_duration_seconds",
			Help:      "Latency of fetches issued on cache misses.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}
}

func (m *Metrics) hit(kind Kind) {
	if m == nil {
		return
	}
	m.hits.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) miss(kind Kind) {
	if m == nil {
		return
	}
	m.misses.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) invalidated(kind Kind, shape Shape, n int) {
	if m == nil || n == 0 {
		return
	}
	label := string(shape)
	if label == "" {
		label = "any"
	}
	m.invalidations.WithLabelValues(string(kind), label).Add(float64(n))
}

func (m *Metrics) observeFetch(kind Kind, d time.Duration) {
	if m == nil {
		return
	}
	m.fetchSeconds.WithLabelValues(string(kind)).Observe(d.Seconds())
}
