package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Query outcome label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// QueryMetrics records search engine query counts and latency per collection and query kind.
type QueryMetrics struct {
	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
}

// NewQueryMetrics creates unregistered engine query metrics.
func NewQueryMetrics() *QueryMetrics {
	return &QueryMetrics{
		queriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "engine_queries_total",
				Help:      "Total number of search engine queries",
			},
			[]string{"collection", "kind", "status"},
		),
		queryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "engine_query_duration_seconds",
				Help:      "Search engine query duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"collection", "kind"},
		),
	}
}

// MustRegister registers the query metrics with reg. Must be called once from main.
func (m *QueryMetrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.queriesTotal, m.queryDuration)
}

// Observe records one finished query. A nil receiver is a no-op.
func (m *QueryMetrics) Observe(collection, kind string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.queriesTotal.WithLabelValues(collection, kind, status).Inc()
	m.queryDuration.WithLabelValues(collection, kind).Observe(elapsed.Seconds())
}
