// Package metrics collects Prometheus metrics for the verifier.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for evaluation metrics. One per taxonomy kind plus success.
const (
	OutcomeSuccess         = "success"
	OutcomeValidation      = "validation_error"
	OutcomeConfiguration   = "configuration_error"
	OutcomeEmptyResponse   = "empty_response"
	OutcomeSafetyBlocked   = "safety_blocked"
	OutcomeSchemaViolation = "schema_violation"
	OutcomeUpstream        = "upstream_error"
	OutcomeInternal        = "internal_error"
)

// Metrics tracks verification request metrics.
//
// Metrics exposed (namespace configurable, default "verifier"):
//   - verifier_requests_total: request count by outcome
//   - verifier_evaluation_duration_seconds: reasoning-call duration histogram
//   - verifier_evaluation_tokens_total: token consumption by type
//   - verifier_decisions_total: decision count by kind
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal      *prometheus.CounterVec
	evaluationDuration *prometheus.HistogramVec
	tokensTotal        *prometheus.CounterVec
	decisionsTotal     *prometheus.CounterVec
}

// New creates and registers verifier metrics on a dedicated registry.
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = "verifier"
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of verification requests by outcome",
			},
			[]string{"outcome"},
		),

		evaluationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "evaluation_duration_seconds",
				Help:      "Duration of reasoning-service evaluations in seconds",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45, 60, 90},
			},
			[]string{"provider", "outcome"},
		),

		tokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluation_tokens_total",
				Help:      "Total number of tokens consumed by evaluations",
			},
			[]string{"provider", "type"},
		),

		decisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decisions_total",
				Help:      "Total number of returned decisions by kind",
			},
			[]string{"decision"},
		),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.evaluationDuration,
		m.tokensTotal,
		m.decisionsTotal,
	)

	return m
}

// RecordRequest records the outcome of one verification request.
func (m *Metrics) RecordRequest(outcome string) {
	m.requestsTotal.WithLabelValues(outcome).Inc()
}

// RecordEvaluation records a completed reasoning call.
func (m *Metrics) RecordEvaluation(provider, outcome string, duration time.Duration, promptTokens, completionTokens int) {
	m.evaluationDuration.WithLabelValues(provider, outcome).Observe(duration.Seconds())
	if promptTokens > 0 {
		m.tokensTotal.WithLabelValues(provider, "prompt").Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		m.tokensTotal.WithLabelValues(provider, "completion").Add(float64(completionTokens))
	}
}

// RecordDecision records a returned decision kind.
func (m *Metrics) RecordDecision(kind string) {
	m.decisionsTotal.WithLabelValues(kind).Inc()
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
