// Package providers implements the reasoning-service abstraction used by
// the decision evaluator.
//
// # Overview
//
// The verifier delegates the authoritative policy judgment to an external
// LLM reasoning service. This package keeps that call behind a narrow
// interface so the service can be swapped (for another provider, or for a
// deterministic rules engine) without touching any other component.
//
// # Architecture
//
//  1. Provider interface - the contract every adapter implements
//  2. Base HTTP provider - shared HTTP client logic (connection pooling,
//     bounded timeouts, typed errors, health tracking)
//  3. Adapters - provider-specific implementations (currently Gemini)
//
// # Structured output
//
// A GenerationRequest carries, alongside the prompt, a JSON Schema the
// provider must be instructed to conform to. Adapters translate that
// constraint into the provider's native structured-output mechanism. The
// returned text is still untrusted: callers re-validate it against the
// output contract.
//
// # Failure model
//
// Each invocation makes exactly one outbound call. There is no retry in
// this layer; a failed attempt surfaces as a typed error
// (ConfigError, AuthError, RateLimitError, TimeoutError, ProviderError,
// ParseError) and retry policy, if any, belongs to the caller.
//
// # Thread safety
//
// All provider implementations are safe for concurrent use.
package providers
