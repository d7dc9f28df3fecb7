package config

import "time"

// Default values for the verifier configuration.
const (
	DefaultListenAddress   = "127.0.0.1:8000"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 90 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1 << 20
	DefaultMaxBodyBytes    = int64(1 << 20)

	DefaultProviderType    = "gemini"
	DefaultModel           = "gemini-2.5-flash"
	DefaultProviderTimeout = 60 * time.Second
	DefaultMaxOutputTokens = 1024

	DefaultEvidencePath   = "data/evidence.db"
	DefaultRetentionDays  = 90
	DefaultPruneSchedule  = "0 3 * * *"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
	DefaultMetricsEnabled = true
	DefaultNamespace      = "verifier"
)

// ApplyDefaults fills unset fields with default values.
// Booleans with a true default are handled by Load, which applies
// defaults before unmarshalling.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxHeaderBytes == 0 {
		cfg.Server.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if cfg.Provider.Type == "" {
		cfg.Provider.Type = DefaultProviderType
	}
	if cfg.Provider.Model == "" {
		cfg.Provider.Model = DefaultModel
	}
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = DefaultProviderTimeout
	}
	if cfg.Provider.MaxOutputTokens == 0 {
		cfg.Provider.MaxOutputTokens = DefaultMaxOutputTokens
	}

	if cfg.Evidence.Path == "" {
		cfg.Evidence.Path = DefaultEvidencePath
	}
	if cfg.Evidence.RetentionDays == 0 {
		cfg.Evidence.RetentionDays = DefaultRetentionDays
	}
	if cfg.Evidence.PruneSchedule == "" {
		cfg.Evidence.PruneSchedule = DefaultPruneSchedule
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultNamespace
	}
}

// NewDefault returns a configuration populated entirely from defaults.
func NewDefault() *Config {
	cfg := &Config{}
	cfg.Metrics.Enabled = DefaultMetricsEnabled
	ApplyDefaults(cfg)
	return cfg
}
