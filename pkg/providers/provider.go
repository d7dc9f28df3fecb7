package providers

import "context"

// Provider is the narrow interface the decision evaluator depends on.
// It abstracts the external reasoning service behind a single structured
// generation call so the service can be swapped without changing any other
// component.
//
// All methods accept a context.Context for cancellation and timeout
// control. Implementations must respect context cancellation and return
// immediately when the context is cancelled.
type Provider interface {
	// GenerateStructured sends a single structured-output generation
	// request to the reasoning service and returns the raw result.
	//
	// Exactly one outbound call is made per invocation: implementations
	// must not retry. Failures surface as typed errors (ConfigError,
	// AuthError, RateLimitError, TimeoutError, ProviderError, ParseError).
	//
	// A non-nil result does not imply usable output: the result may carry
	// empty text or a provider-side block reason, which the caller
	// classifies.
	GenerateStructured(ctx context.Context, req *GenerationRequest) (*GenerationResult, error)

	// HealthCheck performs a lightweight reachability check against the
	// provider. It must not run an evaluation.
	HealthCheck(ctx context.Context) error

	// GetName returns the provider's configured name.
	GetName() string

	// GetType returns the provider's type (e.g. "gemini").
	GetType() string

	// GetConfig returns the provider's configuration.
	GetConfig() ProviderConfig

	// IsHealthy returns the current health status of the provider.
	IsHealthy() bool

	// GetHealth returns detailed health information including last check
	// time, consecutive failures, and error details.
	GetHealth() ProviderHealth

	// Close closes the provider and releases any resources.
	Close() error
}
