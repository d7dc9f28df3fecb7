package evaluator

import "fmt"

// ConfigurationError indicates the required reasoning-service credential
// or configuration is absent. The request fails, but the condition is
// recoverable at deployment; no retry will help within this process.
type ConfigurationError struct {
	// Message describes the missing configuration
	Message string

	// Cause is the underlying provider error (if any)
	Cause error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("evaluator configuration error: %s", e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError indicates the reasoning service returned no content.
// Treated as a service-level outage signal.
type EmptyResponseError struct {
	// Provider is the name of the reasoning provider
	Provider string
}

// Error implements the error interface.
func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("reasoning service %q returned an empty response", e.Provider)
}

// SafetyBlockedError indicates the reasoning service declined to answer
// for provider-side content policy reasons unrelated to the business
// policy. Kept distinct from EmptyResponseError because the cause differs
// and may warrant different operator action.
type SafetyBlockedError struct {
	// Provider is the name of the reasoning provider
	Provider string

	// Reason is the provider's block reason (e.g. "SAFETY")
	Reason string
}

// Error implements the error interface.
func (e *SafetyBlockedError) Error() string {
	return fmt.Sprintf("reasoning service %q blocked the request: %s", e.Provider, e.Reason)
}

// SchemaViolationError indicates the returned text does not decode into
// the Decision contract.
type SchemaViolationError struct {
	// Provider is the name of the reasoning provider
	Provider string

	// RawResponse is the offending response text
	RawResponse string

	// Cause is the underlying schema error
	Cause error
}

// Error implements the error interface.
func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("reasoning service %q returned output violating the decision contract: %v",
		e.Provider, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *SchemaViolationError) Unwrap() error {
	return e.Cause
}

// UpstreamError wraps any other failure raised by the reasoning call
// (network, timeout, rate limit), preserving the cause for diagnostics.
type UpstreamError struct {
	// Provider is the name of the reasoning provider
	Provider string

	// Cause is the underlying provider error
	Cause error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("reasoning service %q call failed: %v", e.Provider, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
