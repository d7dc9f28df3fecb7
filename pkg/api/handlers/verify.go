package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"juscash/verifier/pkg/api"
	"juscash/verifier/pkg/api/middleware"
	"juscash/verifier/pkg/evaluator"
	"juscash/verifier/pkg/schema"
	"juscash/verifier/pkg/telemetry/metrics"
)

// Evaluator is the narrow contract the verify handler depends on.
// It is satisfied by *evaluator.Evaluator and by test doubles.
type Evaluator interface {
	Evaluate(ctx context.Context, record *schema.ProcessRecord) (*schema.Decision, error)
}

// Recorder receives completed verifications for the optional audit trail.
// Recording is best-effort: a recorder failure never fails a request.
type Recorder interface {
	Record(ctx context.Context, requestID string, record *schema.ProcessRecord, decision *schema.Decision, outcome string, latency time.Duration)
}

// VerifyHandler handles POST /verify.
type VerifyHandler struct {
	evaluator    Evaluator
	metrics      *metrics.Metrics
	recorder     Recorder
	maxBodyBytes int64
}

// VerifyOption configures a VerifyHandler.
type VerifyOption func(*VerifyHandler)

// WithMetrics attaches request metrics.
func WithMetrics(m *metrics.Metrics) VerifyOption {
	return func(h *VerifyHandler) { h.metrics = m }
}

// WithRecorder attaches the audit-trail recorder.
func WithRecorder(r Recorder) VerifyOption {
	return func(h *VerifyHandler) { h.recorder = r }
}

// WithMaxBodyBytes bounds the accepted request body size.
func WithMaxBodyBytes(n int64) VerifyOption {
	return func(h *VerifyHandler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewVerifyHandler creates a new verify handler.
func NewVerifyHandler(e Evaluator, opts ...VerifyOption) *VerifyHandler {
	h := &VerifyHandler{
		evaluator:    e,
		maxBodyBytes: 1 << 20,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP implements http.Handler.
//
// Input validation runs before anything touches the reasoning service: a
// record missing a required field never causes an outbound call.
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	startTime := time.Now()

	if r.Method != http.MethodPost {
		errResp := api.NewErrorResponse(
			fmt.Sprintf("Method %s not allowed. Use POST instead.", r.Method),
			api.ErrorTypeValidation, "", "method_not_allowed",
		)
		api.WriteJSON(w, http.StatusMethodNotAllowed, errResp)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBodyBytes+1))
	if err != nil {
		h.record(ctx, w, api.NewValidationError("failed to read request body", "(body)"), requestID, nil, nil, startTime, metrics.OutcomeValidation)
		return
	}
	if int64(len(body)) > h.maxBodyBytes {
		h.record(ctx, w, api.NewValidationError(
			fmt.Sprintf("request body exceeds %d bytes", h.maxBodyBytes), "(body)",
		), requestID, nil, nil, startTime, metrics.OutcomeValidation)
		return
	}

	record, err := schema.ValidateInput(body)
	if err != nil {
		var validationErr *schema.ValidationError
		param := ""
		if errors.As(err, &validationErr) {
			param = validationErr.Field
		}

		slog.WarnContext(ctx, "input validation failed",
			"request_id", requestID,
			"field", param,
			"error", err,
		)

		h.record(ctx, w, api.NewValidationError(err.Error(), param), requestID, nil, nil, startTime, metrics.OutcomeValidation)
		return
	}

	decision, err := h.evaluator.Evaluate(ctx, record)
	latency := time.Since(startTime)

	if err != nil {
		outcome, errResp := classifyFailure(err)

		slog.ErrorContext(ctx, "evaluation failed",
			"request_id", requestID,
			"process_number", record.ProcessNumber,
			"outcome", outcome,
			"latency_ms", latency.Milliseconds(),
			"error", err,
		)

		h.record(ctx, w, errResp, requestID, record, nil, startTime, outcome)
		return
	}

	slog.InfoContext(ctx, "verification completed",
		"request_id", requestID,
		"process_number", record.ProcessNumber,
		"decision", decision.Decision,
		"citations", decision.Citations,
		"latency_ms", latency.Milliseconds(),
	)

	if h.metrics != nil {
		h.metrics.RecordRequest(metrics.OutcomeSuccess)
		h.metrics.RecordDecision(string(decision.Decision))
	}
	if h.recorder != nil {
		h.recorder.Record(ctx, requestID, record, decision, metrics.OutcomeSuccess, latency)
	}

	if err := api.WriteJSON(w, http.StatusOK, decision); err != nil {
		slog.ErrorContext(ctx, "failed to write response",
			"request_id", requestID,
			"error", err,
		)
	}
}

// record emits metrics, audit evidence, and the error response for one
// failed request.
func (h *VerifyHandler) record(ctx context.Context, w http.ResponseWriter, errResp *api.ErrorResponse, requestID string, rec *schema.ProcessRecord, decision *schema.Decision, startTime time.Time, outcome string) {
	if h.metrics != nil {
		h.metrics.RecordRequest(outcome)
	}
	if h.recorder != nil && rec != nil {
		h.recorder.Record(ctx, requestID, rec, decision, outcome, time.Since(startTime))
	}
	if err := api.WriteError(w, errResp); err != nil {
		slog.ErrorContext(ctx, "failed to write error response", "error", err)
	}
}

// classifyFailure maps an evaluator failure onto a metrics outcome and a
// structured error body. This is the single place internal failure kinds
// become external status codes.
func classifyFailure(err error) (string, *api.ErrorResponse) {
	var configErr *evaluator.ConfigurationError
	if errors.As(err, &configErr) {
		return metrics.OutcomeConfiguration, api.NewErrorResponse(
			fmt.Sprintf("Configuration error: %v", configErr),
			api.ErrorTypeConfiguration, "", api.CodeMissingCredential,
		)
	}

	var emptyErr *evaluator.EmptyResponseError
	if errors.As(err, &emptyErr) {
		return metrics.OutcomeEmptyResponse, api.NewErrorResponse(
			fmt.Sprintf("Reasoning service error: %v", emptyErr),
			api.ErrorTypeReasoningUnavailable, "", api.CodeEmptyResponse,
		)
	}

	var blockedErr *evaluator.SafetyBlockedError
	if errors.As(err, &blockedErr) {
		return metrics.OutcomeSafetyBlocked, api.NewErrorResponse(
			fmt.Sprintf("Reasoning service error: %v", blockedErr),
			api.ErrorTypeReasoningUnavailable, "", api.CodeSafetyBlocked,
		)
	}

	var schemaErr *evaluator.SchemaViolationError
	if errors.As(err, &schemaErr) {
		return metrics.OutcomeSchemaViolation, api.NewErrorResponse(
			fmt.Sprintf("Reasoning service error: %v", schemaErr),
			api.ErrorTypeReasoningUnavailable, "", api.CodeSchemaViolation,
		)
	}

	var upstreamErr *evaluator.UpstreamError
	if errors.As(err, &upstreamErr) {
		return metrics.OutcomeUpstream, api.NewErrorResponse(
			fmt.Sprintf("Reasoning service error: %v", upstreamErr),
			api.ErrorTypeReasoningUnavailable, "", api.CodeUpstreamFailure,
		)
	}

	return metrics.OutcomeInternal, api.NewServerError(
		fmt.Sprintf("Unexpected internal error: %v", err),
	)
}
