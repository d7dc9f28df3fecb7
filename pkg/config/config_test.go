package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("expected default listen address, got %s", cfg.Server.ListenAddress)
	}
	if cfg.Provider.Model != DefaultModel {
		t.Errorf("expected default model, got %s", cfg.Provider.Model)
	}
	if cfg.Provider.Timeout != DefaultProviderTimeout {
		t.Errorf("expected default provider timeout, got %s", cfg.Provider.Timeout)
	}
	if cfg.Evidence.Enabled {
		t.Error("evidence recording must be off by default")
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics must be on by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults: %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoad_FromFile(t *testing.T) {
	content := `
server:
  listen_address: "0.0.0.0:9000"
  write_timeout: 120s
provider:
  model: gemini-2.0-pro
  timeout: 45s
  temperature: 0.2
logging:
  level: debug
  format: text
metrics:
  enabled: false
evidence:
  enabled: true
  path: /tmp/ev.db
  retention_days: 7
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9000" {
		t.Errorf("listen address not loaded: %s", cfg.Server.ListenAddress)
	}
	if cfg.Server.WriteTimeout != 120*time.Second {
		t.Errorf("write timeout not loaded: %s", cfg.Server.WriteTimeout)
	}
	if cfg.Provider.Model != "gemini-2.0-pro" {
		t.Errorf("model not loaded: %s", cfg.Provider.Model)
	}
	if cfg.Provider.Temperature != 0.2 {
		t.Errorf("temperature not loaded: %v", cfg.Provider.Temperature)
	}
	if cfg.Metrics.Enabled {
		t.Error("explicit metrics.enabled=false must survive defaulting")
	}
	if !cfg.Evidence.Enabled || cfg.Evidence.Path != "/tmp/ev.db" {
		t.Errorf("evidence config not loaded: %+v", cfg.Evidence)
	}
	if cfg.Evidence.RetentionDays != 7 {
		t.Errorf("retention days not loaded: %d", cfg.Evidence.RetentionDays)
	}

	// Unset fields still get defaults.
	if cfg.Server.ReadTimeout != DefaultReadTimeout {
		t.Errorf("read timeout default missing: %s", cfg.Server.ReadTimeout)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VERIFIER_SERVER_LISTEN_ADDRESS", "127.0.0.1:9999")
	t.Setenv("GEMINI_API_KEY", "env-credential")
	t.Setenv("VERIFIER_PROVIDER_TIMEOUT", "30s")
	t.Setenv("VERIFIER_LOGGING_LEVEL", "warn")
	t.Setenv("VERIFIER_EVIDENCE_ENABLED", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.ListenAddress != "127.0.0.1:9999" {
		t.Errorf("listen address override ignored: %s", cfg.Server.ListenAddress)
	}
	if cfg.Provider.APIKey != "env-credential" {
		t.Errorf("API key override ignored: %q", cfg.Provider.APIKey)
	}
	if cfg.Provider.Timeout != 30*time.Second {
		t.Errorf("timeout override ignored: %s", cfg.Provider.Timeout)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level override ignored: %s", cfg.Logging.Level)
	}
	if !cfg.Evidence.Enabled {
		t.Error("evidence enable override ignored")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{"defaults are valid", func(cfg *Config) {}, false},
		{"missing API key is valid", func(cfg *Config) { cfg.Provider.APIKey = "" }, false},
		{"bad listen address", func(cfg *Config) { cfg.Server.ListenAddress = "no-port" }, true},
		{"write timeout below provider timeout", func(cfg *Config) {
			cfg.Server.WriteTimeout = 10 * time.Second
			cfg.Provider.Timeout = 60 * time.Second
		}, true},
		{"TLS without cert", func(cfg *Config) { cfg.Server.TLS.Enabled = true }, true},
		{"unsupported provider type", func(cfg *Config) { cfg.Provider.Type = "openai" }, true},
		{"negative temperature", func(cfg *Config) { cfg.Provider.Temperature = -0.1 }, true},
		{"temperature above one", func(cfg *Config) { cfg.Provider.Temperature = 1.5 }, true},
		{"bad log level", func(cfg *Config) { cfg.Logging.Level = "trace" }, true},
		{"bad log format", func(cfg *Config) { cfg.Logging.Format = "xml" }, true},
		{"bad cron schedule", func(cfg *Config) {
			cfg.Evidence.Enabled = true
			cfg.Evidence.PruneSchedule = "every day at 3"
		}, true},
		{"valid cron schedule", func(cfg *Config) {
			cfg.Evidence.Enabled = true
			cfg.Evidence.PruneSchedule = "0 3 * * *"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
