package providers

import (
	"testing"
	"time"

	"juscash/verifier/pkg/providers"
)

// TestConfig returns a test provider configuration.
func TestConfig(name, providerType string) providers.ProviderConfig {
	return providers.ProviderConfig{
		Name:                name,
		Type:                providerType,
		BaseURL:             "http://localhost:8000",
		APIKey:              "test-key",
		Model:               "gemini-2.5-flash",
		Timeout:             5 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     30 * time.Second,
	}
}

// TestConfigWithURL returns a test config with a specific base URL.
func TestConfigWithURL(name, providerType, baseURL string) providers.ProviderConfig {
	config := TestConfig(name, providerType)
	config.BaseURL = baseURL
	return config
}

// MockGeminiDecision builds a generateContent response body whose single
// candidate carries the given text.
func MockGeminiDecision(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
		"usageMetadata": map[string]interface{}{
			"promptTokenCount":     120,
			"candidatesTokenCount": 40,
			"totalTokenCount":      160,
		},
		"modelVersion": "gemini-2.5-flash",
	}
}

// MockGeminiBlocked builds a generateContent response body where the
// prompt was declined by content safety filtering.
func MockGeminiBlocked(reason string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{},
		"promptFeedback": map[string]interface{}{
			"blockReason": reason,
		},
	}
}

// MockGeminiEmpty builds a generateContent response body with no
// candidates and no block reason.
func MockGeminiEmpty() map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{},
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
