package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"juscash/verifier/pkg/providers"
)

// Provider is the Gemini provider adapter.
// It implements the providers.Provider interface for the generateContent API.
type Provider struct {
	*providers.HTTPProvider
}

const (
	// DefaultBaseURL is the Gemini API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds the reasoning call. Reasoning latency is
	// significant, so the bound is generous but never absent.
	DefaultTimeout = 60 * time.Second
)

// NewProvider creates a new Gemini provider instance.
//
// An empty API key is accepted here: credential absence is reported as a
// ConfigError on the first generation attempt, not as a startup crash.
func NewProvider(config providers.ProviderConfig) (*Provider, error) {
	if config.Name == "" {
		return nil, &providers.ConfigError{
			Provider: "gemini",
			Field:    "name",
			Message:  "provider name is required",
		}
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.MaxIdleConns == 0 {
		config.MaxIdleConns = 100
	}
	if config.MaxIdleConnsPerHost == 0 {
		config.MaxIdleConnsPerHost = 10
	}

	p := &Provider{
		HTTPProvider: providers.NewHTTPProvider(config),
	}

	slog.Info("Gemini provider initialized",
		"provider", config.Name,
		"base_url", config.BaseURL,
		"model", config.Model,
		"api_key_present", config.APIKey != "",
	)

	return p, nil
}

// GenerateStructured sends a single structured generation request to Gemini.
func (p *Provider) GenerateStructured(ctx context.Context, req *providers.GenerationRequest) (*providers.GenerationResult, error) {
	if err := p.checkCredential(); err != nil {
		return nil, err
	}

	if req == nil || req.Prompt == "" {
		return nil, &providers.ProviderError{
			Provider: p.GetName(),
			Message:  "generation request must carry a prompt",
		}
	}

	geminiReq := transformRequest(req)

	cfg := p.GetConfig()
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", cfg.BaseURL, cfg.Model)
	headers := map[string]string{
		"x-goog-api-key": cfg.APIKey,
		"Content-Type":   "application/json",
	}

	var geminiResp GenerateResponse
	if err := p.DoJSONRequest(ctx, "POST", url, geminiReq, &geminiResp, headers); err != nil {
		return nil, err
	}

	result := transformResponse(&geminiResp)

	slog.Debug("generation request completed",
		"provider", p.GetName(),
		"model", cfg.Model,
		"finish_reason", result.FinishReason,
		"block_reason", result.BlockReason,
		"tokens", result.Usage.TotalTokens,
	)

	return result, nil
}

// HealthCheck performs a lightweight reachability check by fetching model
// metadata. It never runs an evaluation.
func (p *Provider) HealthCheck(ctx context.Context) error {
	if err := p.checkCredential(); err != nil {
		return err
	}

	cfg := p.GetConfig()
	url := fmt.Sprintf("%s/v1beta/models/%s", cfg.BaseURL, cfg.Model)
	headers := map[string]string{
		"x-goog-api-key": cfg.APIKey,
	}

	resp, err := p.DoRequest(ctx, "GET", url, nil, headers)
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

// checkCredential reports an absent API key as a ConfigError.
func (p *Provider) checkCredential() error {
	if p.GetConfig().APIKey == "" {
		return &providers.ConfigError{
			Provider: p.GetName(),
			Field:    "api_key",
			Message:  "API key is not configured",
		}
	}
	return nil
}
