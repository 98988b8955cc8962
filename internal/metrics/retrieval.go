package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Status label values for namespace queries.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Retrieval pipeline Prometheus metrics.
var (
	NamespaceQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "namespace_queries_total",
			Help:      "Total number of per-namespace vector queries",
		},
		[]string{"namespace", "status"},
	)

	NamespaceMatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "namespace_matches_total",
			Help:      "Total number of matches returned per namespace",
		},
		[]string{"namespace"},
	)

	AskOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ask_outcomes_total",
			Help:      "Total number of answered queries by outcome",
		},
		[]string{"outcome"},
	)

	ContextChars = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "context_chars",
			Help:      "Size of the assembled context block in characters",
			Buckets:   []float64{500, 1000, 2000, 4000, 6000, 8000, 9000, 12000},
		},
	)
)

var registerRetrievalOnce sync.Once

// RegisterRetrievalMetrics registers retrieval metrics. Must be called once from main.
func RegisterRetrievalMetrics() {
	registerRetrievalOnce.Do(func() {
		prometheus.MustRegister(NamespaceQueriesTotal)
		prometheus.MustRegister(NamespaceMatchesTotal)
		prometheus.MustRegister(AskOutcomesTotal)
		prometheus.MustRegister(ContextChars)
	})
}
