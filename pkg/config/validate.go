package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate checks the configuration for structural problems.
//
// It deliberately does not require the provider API key: credential
// absence is a per-request ConfigurationFailure, not a startup failure.
func Validate(cfg *Config) error {
	if _, _, err := net.SplitHostPort(cfg.Server.ListenAddress); err != nil {
		return fmt.Errorf("server.listen_address %q is not host:port: %w",
			cfg.Server.ListenAddress, err)
	}

	if cfg.Server.WriteTimeout > 0 && cfg.Server.WriteTimeout <= cfg.Provider.Timeout {
		return fmt.Errorf("server.write_timeout (%s) must exceed provider.timeout (%s), or evaluations are cut off mid-flight",
			cfg.Server.WriteTimeout, cfg.Provider.Timeout)
	}

	if cfg.Server.TLS.Enabled {
		if cfg.Server.TLS.CertFile == "" {
			return fmt.Errorf("server.tls.cert_file is required when TLS is enabled")
		}
		if cfg.Server.TLS.KeyFile == "" {
			return fmt.Errorf("server.tls.key_file is required when TLS is enabled")
		}
	}

	switch cfg.Provider.Type {
	case "gemini":
	default:
		return fmt.Errorf("provider.type %q is not supported (supported: gemini)", cfg.Provider.Type)
	}

	if cfg.Provider.Timeout <= 0 {
		return fmt.Errorf("provider.timeout must be positive, got %s", cfg.Provider.Timeout)
	}

	if cfg.Provider.Temperature < 0 || cfg.Provider.Temperature > 1 {
		return fmt.Errorf("provider.temperature must be in [0, 1], got %v", cfg.Provider.Temperature)
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format %q is not one of json, text", cfg.Logging.Format)
	}

	if cfg.Evidence.Enabled {
		if cfg.Evidence.Path == "" {
			return fmt.Errorf("evidence.path is required when evidence is enabled")
		}
		if cfg.Evidence.RetentionDays < 0 {
			return fmt.Errorf("evidence.retention_days must be non-negative, got %d", cfg.Evidence.RetentionDays)
		}
		if cfg.Evidence.PruneSchedule != "" {
			if _, err := cron.ParseStandard(cfg.Evidence.PruneSchedule); err != nil {
				return fmt.Errorf("evidence.prune_schedule %q is not a valid cron expression: %w",
					cfg.Evidence.PruneSchedule, err)
			}
		}
	}

	return nil
}
