package config

import "time"

// Config is the root configuration structure for the verifier.
type Config struct {
	// Server contains HTTP server configuration.
	Server ServerConfig `yaml:"server"`

	// Provider contains reasoning-service configuration.
	Provider ProviderConfig `yaml:"provider"`

	// Policy contains policy-document configuration.
	Policy PolicyConfig `yaml:"policy"`

	// Evidence contains configuration for the optional decision audit trail.
	Evidence EvidenceConfig `yaml:"evidence"`

	// Logging contains structured-logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Client contains settings for thin-client collaborators.
	Client ClientConfig `yaml:"client"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Default: "127.0.0.1:8000"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request.
	// Default: 15s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out response
	// writes. It must leave room for the reasoning-call timeout.
	// Default: 90s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the keep-alive idle timeout.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits request header size.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// MaxBodyBytes limits request body size for /verify.
	// Default: 1048576 (1MB)
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// TLS contains optional TLS settings.
	TLS TLSConfig `yaml:"tls"`
}

// TLSConfig contains TLS settings for the HTTP server.
type TLSConfig struct {
	// Enabled controls whether the server terminates TLS.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// CertFile is the path to the PEM certificate.
	CertFile string `yaml:"cert_file"`

	// KeyFile is the path to the PEM private key.
	KeyFile string `yaml:"key_file"`
}

// ProviderConfig contains configuration for the reasoning service.
type ProviderConfig struct {
	// Type selects the provider adapter. Currently "gemini".
	// Default: "gemini"
	Type string `yaml:"type"`

	// BaseURL overrides the provider's API endpoint. Mainly used to point
	// the verifier at a stub in tests.
	BaseURL string `yaml:"base_url"`

	// APIKey is the reasoning-service credential. Usually supplied via
	// the GEMINI_API_KEY environment variable. Its absence surfaces at
	// the first evaluation attempt, never as a startup crash.
	APIKey string `yaml:"api_key"`

	// Model is the model identifier to invoke.
	// Default: "gemini-2.5-flash"
	Model string `yaml:"model"`

	// Timeout bounds a single reasoning call.
	// Default: 60s
	Timeout time.Duration `yaml:"timeout"`

	// Temperature is the sampling temperature for evaluation calls.
	// Default: 0.0
	Temperature float64 `yaml:"temperature"`

	// MaxOutputTokens bounds the generated output length.
	// Default: 1024
	MaxOutputTokens int `yaml:"max_output_tokens"`
}

// PolicyConfig contains policy-document configuration.
type PolicyConfig struct {
	// File is an optional path to a policy file loaded once at startup.
	// When empty, the built-in JusCash policy is used. The file is never
	// watched: changing the policy requires a process restart.
	File string `yaml:"file"`
}

// EvidenceConfig contains configuration for the decision audit trail.
type EvidenceConfig struct {
	// Enabled turns the audit trail on. The request path itself never
	// persists decisions; recording is asynchronous and best-effort.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Path is the sqlite database file path.
	// Default: "data/evidence.db"
	Path string `yaml:"path"`

	// RetentionDays is how long records are kept. Zero disables pruning.
	// Default: 90
	RetentionDays int `yaml:"retention_days"`

	// PruneSchedule is a cron expression for retention pruning.
	// Default: "0 3 * * *" (daily at 3 AM)
	PruneSchedule string `yaml:"prune_schedule"`
}

// LoggingConfig contains structured-logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format ("json", "text").
	// Default: "json"
	Format string `yaml:"format"`
}

// MetricsConfig contains prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether /metrics is exposed.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Namespace is the prometheus metric namespace.
	// Default: "verifier"
	Namespace string `yaml:"namespace"`
}

// ClientConfig contains settings handed to thin-client collaborators
// (the form/testing UI). The core never uses them for evaluation.
type ClientConfig struct {
	// BaseURL is an optional base-URL override advertised to clients.
	BaseURL string `yaml:"base_url"`
}
