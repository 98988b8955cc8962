package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "counsellor"

// Operation label values for language model calls.
const (
	OpEmbedding = "embedding"
	OpRouting   = "routing"
	OpAnswer    = "answer"
	OpModels    = "models"
)

// Provider (LLM and embedding API) Prometheus metrics.
var (
	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Total number of language model provider requests",
		},
		[]string{"provider", "model", "operation", "status"},
	)

	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Language model provider request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "model", "operation"},
	)

	ProviderTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_tokens_total",
			Help:      "Total tokens consumed by provider calls",
		},
		[]string{"provider", "model", "type"}, // "prompt" / "completion"
	)

	ProviderErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_errors_total",
			Help:      "Total provider errors",
		},
		[]string{"provider", "model", "error_type"},
	)
)

var registerProviderOnce sync.Once

// RegisterProviderMetrics registers provider metrics. Must be called once from main.
func RegisterProviderMetrics() {
	registerProviderOnce.Do(func() {
		prometheus.MustRegister(ProviderRequestsTotal)
		prometheus.MustRegister(ProviderRequestDuration)
		prometheus.MustRegister(ProviderTokensTotal)
		prometheus.MustRegister(ProviderErrorsTotal)
	})
}
