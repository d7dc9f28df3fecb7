package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"juscash/verifier/pkg/providers"
)

// staticProvider implements providers.Provider with a fixed health state.
type staticProvider struct {
	healthy bool
}

func (s *staticProvider) GenerateStructured(ctx context.Context, req *providers.GenerationRequest) (*providers.GenerationResult, error) {
	return nil, &providers.ProviderError{Provider: "static", Message: "not implemented"}
}
func (s *staticProvider) HealthCheck(ctx context.Context) error { return nil }
func (s *staticProvider) GetName() string                       { return "static" }
func (s *staticProvider) GetType() string                       { return "static" }
func (s *staticProvider) GetConfig() providers.ProviderConfig   { return providers.ProviderConfig{} }
func (s *staticProvider) IsHealthy() bool                       { return s.healthy }
func (s *staticProvider) GetHealth() providers.ProviderHealth {
	return providers.ProviderHealth{IsHealthy: s.healthy}
}
func (s *staticProvider) Close() error { return nil }

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler("1.2.3", "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("expected ok status, got %q", body.Status)
	}
	if body.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %q", body.Version)
	}
	if body.ClientBaseURL != "" {
		t.Errorf("expected no client base URL, got %q", body.ClientBaseURL)
	}
}

func TestHealthHandler_AdvertisesClientBaseURL(t *testing.T) {
	handler := NewHealthHandler("1.2.3", "https://verifier.juscash.example")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if body.ClientBaseURL != "https://verifier.juscash.example" {
		t.Errorf("expected advertised base URL, got %q", body.ClientBaseURL)
	}
}

func TestHealthHandler_MethodNotAllowed(t *testing.T) {
	handler := NewHealthHandler("", "")

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestReadyHandler(t *testing.T) {
	tests := []struct {
		name       string
		healthy    bool
		wantStatus int
		wantReady  bool
	}{
		{"healthy provider", true, http.StatusOK, true},
		{"unhealthy provider", false, http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewReadyHandler(&staticProvider{healthy: tt.healthy})

			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}

			var body readyResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode ready response: %v", err)
			}
			if body.Ready != tt.wantReady {
				t.Errorf("expected ready=%v, got %v", tt.wantReady, body.Ready)
			}
			if body.Provider != "static" {
				t.Errorf("expected provider static, got %q", body.Provider)
			}
		})
	}
}
