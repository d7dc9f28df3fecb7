package providers

import "time"

// GenerationRequest is a provider-agnostic structured generation request.
// Adapters transform it to the provider's native format.
type GenerationRequest struct {
	// Prompt is the full evaluation prompt (instruction + policy text +
	// serialized record). Adapters must send it unmodified.
	Prompt string

	// ResponseSchema is the JSON Schema the provider must be instructed
	// to conform to. Adapters translate it into the provider's native
	// structured-output constraint.
	ResponseSchema map[string]interface{}

	// Temperature controls randomness (0.0 to 1.0). Decision evaluation
	// wants low temperatures.
	Temperature float64

	// MaxOutputTokens bounds the generated output length (0 = provider default)
	MaxOutputTokens int
}

// GenerationResult is the normalized outcome of a generation call.
// The caller is responsible for classifying empty text and block reasons;
// this layer only reports what the provider returned.
type GenerationResult struct {
	// Text is the raw generated text. May be empty.
	Text string

	// BlockReason is non-empty when the provider declined to answer for
	// content-safety reasons (e.g. "SAFETY"). Distinct from empty text
	// because the cause differs and may warrant different operator action.
	BlockReason string

	// FinishReason indicates why generation stopped, in provider terms
	FinishReason string

	// Model is the model that produced the result
	Model string

	// Usage contains token consumption information
	Usage TokenUsage
}

// TokenUsage tracks token consumption for a generation call.
type TokenUsage struct {
	// PromptTokens is the number of tokens in the prompt
	PromptTokens int `json:"prompt_tokens"`

	// CompletionTokens is the number of tokens in the completion
	CompletionTokens int `json:"completion_tokens"`

	// TotalTokens is the total number of tokens used (prompt + completion)
	TotalTokens int `json:"total_tokens"`
}

// ProviderHealth tracks the health status of a provider.
type ProviderHealth struct {
	// IsHealthy indicates whether the provider is currently healthy
	IsHealthy bool

	// LastCheck is the timestamp of the last health check
	LastCheck time.Time

	// LastError is the most recent error encountered (nil if healthy)
	LastError error

	// ConsecutiveFailures counts sequential failures
	ConsecutiveFailures int

	// LastSuccessfulRequest is the timestamp of the last successful request
	LastSuccessfulRequest time.Time

	// TotalRequests is the total number of requests sent to this provider
	TotalRequests int64

	// FailedRequests is the total number of failed requests
	FailedRequests int64
}

// ProviderConfig contains configuration for a single provider instance.
type ProviderConfig struct {
	// Name is the provider identifier (e.g. "gemini")
	Name string

	// Type is the provider type ("gemini")
	Type string

	// BaseURL is the API endpoint base URL
	BaseURL string

	// APIKey is the authentication key. An empty key is not a
	// construction error: its absence is detected at the first
	// generation attempt and reported as a ConfigError.
	APIKey string

	// Model is the model identifier to invoke
	Model string

	// Timeout is the request timeout duration. Reasoning latency is
	// significant, so this should be on the order of tens of seconds,
	// but it must be bounded.
	Timeout time.Duration

	// MaxIdleConns is the maximum number of idle connections in the pool
	MaxIdleConns int

	// MaxIdleConnsPerHost is the maximum idle connections per host
	MaxIdleConnsPerHost int

	// IdleConnTimeout is how long an idle connection remains in the pool
	IdleConnTimeout time.Duration
}
