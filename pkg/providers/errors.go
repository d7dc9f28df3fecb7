package providers

import (
	"fmt"
	"time"
)

// ProviderError is the catch-all failure for an outbound generation
// call: unexpected status codes, transport faults, malformed envelopes
// that still reached the service. StatusCode is 0 when no HTTP response
// was received.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Cause      error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %q error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider %q error: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Cause }

// ConfigError reports missing or invalid provider configuration. The
// important case is an absent API credential: it surfaces here, at the
// first generation attempt, rather than as a startup crash, so a
// misconfigured deployment still serves health checks and typed errors.
type ConfigError struct {
	Provider string
	Field    string
	Message  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("provider %q configuration error for field %q: %s",
		e.Provider, e.Field, e.Message)
}

// AuthError means the reasoning service rejected the credential
// (HTTP 401 or 403).
type AuthError struct {
	Provider string
	Message  string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("provider %q authentication failed: %s", e.Provider, e.Message)
}

// RateLimitError means the reasoning service throttled the call
// (HTTP 429). RetryAfter is zero when the service gave no hint; the
// caller decides whether to surface it, there is no internal retry.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider %q rate limit exceeded (retry after %s): %s",
			e.Provider, e.RetryAfter, e.Message)
	}
	return fmt.Sprintf("provider %q rate limit exceeded: %s", e.Provider, e.Message)
}

// TimeoutError means the call exceeded its deadline. Reasoning latency
// dominates this service, so timeouts are an expected failure mode, not
// an anomaly.
type TimeoutError struct {
	Provider string
	Timeout  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("provider %q request timeout after %s", e.Provider, e.Timeout)
}

// ParseError means the response envelope itself was unreadable. This is
// distinct from a well-formed envelope carrying a non-conforming
// decision, which the evaluator classifies separately. RawResponse is
// kept for diagnostics.
type ParseError struct {
	Provider    string
	RawResponse string
	Cause       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("provider %q response parse error: %v", e.Provider, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }
