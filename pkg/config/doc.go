// Package config provides configuration management for the JusCash verifier.
//
// Configuration is loaded once at process start from a YAML file, with
// environment variable overrides, and is treated as read-only for the
// process lifetime. There is no reload.
//
// # Loading
//
//	cfg, err := config.Load("config.yaml")
//
// A missing file is not an error: defaults plus environment variables are
// enough to run the service, since the only required setting (the Gemini
// API key) comes from GEMINI_API_KEY.
//
// # Environment variable overrides
//
// Variables follow the naming convention VERIFIER_SECTION_FIELD:
//
//   - VERIFIER_SERVER_LISTEN_ADDRESS overrides server.listen_address
//   - VERIFIER_PROVIDER_MODEL overrides provider.model
//   - VERIFIER_LOGGING_LEVEL overrides logging.level
//   - GEMINI_API_KEY overrides provider.api_key (provider-conventional name)
//
// Environment variables always take precedence over file values.
//
// Note that an absent API key does not fail Load or Validate: per the
// failure contract, credential absence is detected at the first
// evaluation attempt, not at startup.
package config
