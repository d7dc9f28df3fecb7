package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a YAML file, applies defaults and
// environment variable overrides, and validates the result.
//
// A missing file is not an error: the service can run on defaults plus
// environment variables. An unreadable or malformed file is an error.
func Load(path string) (*Config, error) {
	// Booleans with true defaults are set before unmarshalling so an
	// explicit "false" in the file survives.
	cfg := &Config{}
	cfg.Metrics.Enabled = DefaultMetricsEnabled

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults + env only.
	default:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	ApplyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
// Variables use the format VERIFIER_SECTION_FIELD; the API key also
// honors the provider-conventional GEMINI_API_KEY.
func applyEnvOverrides(cfg *Config) {
	setString := func(key string, dst *string) {
		if val := os.Getenv(key); val != "" {
			*dst = val
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if val := os.Getenv(key); val != "" {
			if d, err := time.ParseDuration(val); err == nil {
				*dst = d
			}
		}
	}
	setBool := func(key string, dst *bool) {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				*dst = b
			}
		}
	}

	setString("VERIFIER_SERVER_LISTEN_ADDRESS", &cfg.Server.ListenAddress)
	setDuration("VERIFIER_SERVER_READ_TIMEOUT", &cfg.Server.ReadTimeout)
	setDuration("VERIFIER_SERVER_WRITE_TIMEOUT", &cfg.Server.WriteTimeout)
	setDuration("VERIFIER_SERVER_SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout)

	setString("VERIFIER_PROVIDER_BASE_URL", &cfg.Provider.BaseURL)
	setString("VERIFIER_PROVIDER_MODEL", &cfg.Provider.Model)
	setDuration("VERIFIER_PROVIDER_TIMEOUT", &cfg.Provider.Timeout)
	setString("VERIFIER_PROVIDER_API_KEY", &cfg.Provider.APIKey)
	setString("GEMINI_API_KEY", &cfg.Provider.APIKey)

	setString("VERIFIER_POLICY_FILE", &cfg.Policy.File)

	setBool("VERIFIER_EVIDENCE_ENABLED", &cfg.Evidence.Enabled)
	setString("VERIFIER_EVIDENCE_PATH", &cfg.Evidence.Path)

	setString("VERIFIER_LOGGING_LEVEL", &cfg.Logging.Level)
	setString("VERIFIER_LOGGING_FORMAT", &cfg.Logging.Format)

	setBool("VERIFIER_METRICS_ENABLED", &cfg.Metrics.Enabled)

	setString("VERIFIER_CLIENT_BASE_URL", &cfg.Client.BaseURL)
}
