package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"juscash/verifier/pkg/policy"
	"juscash/verifier/pkg/prompt"
	"juscash/verifier/pkg/providers"
	"juscash/verifier/pkg/schema"
	"juscash/verifier/pkg/telemetry/metrics"
)

// DefaultTimeout bounds a single evaluation. Reasoning latency is
// significant, so the bound is on the order of tens of seconds, but an
// unresponsive call must never occupy a serving slot indefinitely.
const DefaultTimeout = 60 * time.Second

// Evaluator delegates decision evaluation to a reasoning provider and
// enforces the output contract on the way back.
//
// All collaborators are injected at construction and read-only afterwards,
// so an Evaluator is safe for concurrent use and testable with substituted
// providers.
type Evaluator struct {
	provider providers.Provider
	policy   *policy.Document
	builder  *prompt.Builder
	timeout  time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTimeout overrides the per-evaluation timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Evaluator) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithMetrics attaches evaluation metrics: call duration per outcome and
// token consumption.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Evaluator) { e.metrics = m }
}

// New creates an Evaluator for the given provider and policy document.
func New(provider providers.Provider, doc *policy.Document, builder *prompt.Builder, opts ...Option) *Evaluator {
	e := &Evaluator{
		provider: provider,
		policy:   doc,
		builder:  builder,
		timeout:  DefaultTimeout,
		logger:   slog.Default().With("component", "evaluator"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Timeout returns the per-evaluation timeout.
func (e *Evaluator) Timeout() time.Duration {
	return e.timeout
}

// Evaluate runs one delegated evaluation of a validated record.
//
// The sequence is: build the evaluation request, make a single bounded
// provider call, then check the result in order: provider-side block
// indicator first, then empty text, then decode-and-validate against the
// Decision contract including citation existence. The validated Decision
// is returned only if every check passes.
//
// Every failure is classified into exactly one taxonomy kind; no error is
// swallowed and no retry is performed.
func (e *Evaluator) Evaluate(ctx context.Context, record *schema.ProcessRecord) (*schema.Decision, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req := e.builder.Build(record)
	startTime := time.Now()

	result, err := e.provider.GenerateStructured(ctx, req)
	latency := time.Since(startTime)

	if err != nil {
		classified := e.classify(err)
		outcome := metrics.OutcomeUpstream
		var configErr *ConfigurationError
		if errors.As(classified, &configErr) {
			outcome = metrics.OutcomeConfiguration
		}
		e.recordMetrics(outcome, latency, nil)
		e.logger.Error("evaluation call failed",
			"provider", e.provider.GetName(),
			"process_number", record.ProcessNumber,
			"latency_ms", latency.Milliseconds(),
			"error", classified,
		)
		return nil, classified
	}

	// A blocked prompt usually arrives with empty text as well; the block
	// indicator wins so the two outage signals stay distinguishable.
	if result.BlockReason != "" {
		e.recordMetrics(metrics.OutcomeSafetyBlocked, latency, result)
		return nil, &SafetyBlockedError{
			Provider: e.provider.GetName(),
			Reason:   result.BlockReason,
		}
	}

	if result.Text == "" {
		e.recordMetrics(metrics.OutcomeEmptyResponse, latency, result)
		return nil, &EmptyResponseError{Provider: e.provider.GetName()}
	}

	decision, err := schema.DecodeDecision([]byte(result.Text))
	if err != nil {
		e.recordMetrics(metrics.OutcomeSchemaViolation, latency, result)
		return nil, &SchemaViolationError{
			Provider:    e.provider.GetName(),
			RawResponse: result.Text,
			Cause:       err,
		}
	}

	if err := e.verifyCitations(decision); err != nil {
		e.recordMetrics(metrics.OutcomeSchemaViolation, latency, result)
		return nil, err
	}

	e.recordMetrics(metrics.OutcomeSuccess, latency, result)

	e.logger.Info("evaluation completed",
		"provider", e.provider.GetName(),
		"process_number", record.ProcessNumber,
		"decision", decision.Decision,
		"citations", decision.Citations,
		"latency_ms", latency.Milliseconds(),
		"tokens", result.Usage.TotalTokens,
	)

	return decision, nil
}

// recordMetrics observes one reasoning call. Token counts are only known
// when the provider returned a result.
func (e *Evaluator) recordMetrics(outcome string, latency time.Duration, result *providers.GenerationResult) {
	if e.metrics == nil {
		return
	}
	var promptTokens, completionTokens int
	if result != nil {
		promptTokens = result.Usage.PromptTokens
		completionTokens = result.Usage.CompletionTokens
	}
	e.metrics.RecordEvaluation(e.provider.GetName(), outcome, latency, promptTokens, completionTokens)
}

// verifyCitations checks that every cited rule identifier exists in the
// policy document. Category consistency between citations and the
// decision kind is a soft invariant left to the reasoning service.
func (e *Evaluator) verifyCitations(decision *schema.Decision) error {
	for _, id := range decision.Citations {
		if !e.policy.HasRule(id) {
			return &SchemaViolationError{
				Provider: e.provider.GetName(),
				Cause: &schema.SchemaError{
					Field: "citations",
					Cause: fmt.Errorf("cited rule %q is not in the policy document", id),
				},
			}
		}
	}
	return nil
}

// classify maps provider-layer errors onto the evaluator taxonomy.
func (e *Evaluator) classify(err error) error {
	var configErr *providers.ConfigError
	if errors.As(err, &configErr) {
		return &ConfigurationError{
			Message: configErr.Message,
			Cause:   configErr,
		}
	}

	// Timeouts, auth failures, rate limits, transport errors and
	// malformed provider envelopes are all the dependency's fault.
	return &UpstreamError{
		Provider: e.provider.GetName(),
		Cause:    err,
	}
}
