//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	testproviders "juscash/verifier/internal/providers"
	"juscash/verifier/pkg/config"
	"juscash/verifier/pkg/evaluator"
	"juscash/verifier/pkg/policy"
	"juscash/verifier/pkg/prompt"
	"juscash/verifier/pkg/providers/gemini"
	"juscash/verifier/pkg/schema"
	"juscash/verifier/pkg/server"
)

const generatePath = "/v1beta/models/gemini-2.5-flash:generateContent"

const validRecord = `{
	"process_number": "0001234-56.2020.8.26.0100",
	"sphere": "Federal",
	"condemnation_value": 150000.50,
	"missing_documents": false,
	"final_judgment_confirmed": true,
	"transfer_without_reservation": false,
	"claimant_deceased": false
}`

// newStack wires the full service against a mock reasoning backend:
// HTTP handler -> evaluator -> Gemini adapter -> mock server.
func newStack(t *testing.T) (http.Handler, *testproviders.MockServer) {
	t.Helper()

	mock := testproviders.NewMockServer()
	t.Cleanup(mock.Close)

	provider, err := gemini.NewProvider(testproviders.TestConfigWithURL("gemini", "gemini", mock.URL()))
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { provider.Close() })

	doc := policy.Default()
	builder := prompt.NewBuilder(doc)
	eval := evaluator.New(provider, doc, builder, evaluator.WithTimeout(5*time.Second))

	return server.NewServer(config.NewDefault(), provider, eval).Handler(), mock
}

func postVerify(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/verify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestVerifyEndToEnd(t *testing.T) {
	handler, mock := newStack(t)

	mock.SetResponse(generatePath, testproviders.MockResponse{
		StatusCode: http.StatusOK,
		Body: testproviders.MockGeminiDecision(
			`{"decision":"rejected","rationale":"Condemnation is under final appeal.","citations":["POL-4"]}`,
		),
	})

	rec := postVerify(t, handler, validRecord)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}

	var decision schema.Decision
	if err := json.Unmarshal(rec.Body.Bytes(), &decision); err != nil {
		t.Fatalf("failed to decode decision: %v", err)
	}
	if decision.Decision != schema.KindRejected {
		t.Errorf("expected rejected, got %s", decision.Decision)
	}
	if len(decision.Citations) != 1 || decision.Citations[0] != "POL-4" {
		t.Errorf("unexpected citations: %v", decision.Citations)
	}
	if mock.GetRequestCount() != 1 {
		t.Errorf("expected exactly 1 upstream call, got %d", mock.GetRequestCount())
	}
}

func TestVerifyEndToEnd_InvalidInputNeverReachesUpstream(t *testing.T) {
	handler, mock := newStack(t)

	rec := postVerify(t, handler, `{"process_number": ""}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if mock.GetRequestCount() != 0 {
		t.Errorf("upstream called %d times for invalid input", mock.GetRequestCount())
	}
}

func TestVerifyEndToEnd_FailureTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		response   testproviders.MockResponse
		wantStatus int
		wantCode   string
	}{
		{
			name: "safety blocked",
			response: testproviders.MockResponse{
				StatusCode: http.StatusOK,
				Body:       testproviders.MockGeminiBlocked("SAFETY"),
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "safety_blocked",
		},
		{
			name: "empty response",
			response: testproviders.MockResponse{
				StatusCode: http.StatusOK,
				Body:       testproviders.MockGeminiEmpty(),
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "empty_response",
		},
		{
			name: "schema violation",
			response: testproviders.MockResponse{
				StatusCode: http.StatusOK,
				Body:       testproviders.MockGeminiDecision(`{"decision":"maybe"}`),
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "schema_violation",
		},
		{
			name: "upstream failure",
			response: testproviders.MockResponse{
				StatusCode: http.StatusInternalServerError,
				Body:       map[string]interface{}{"error": "internal"},
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "upstream_failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mock := newStack(t)
			mock.SetResponse(generatePath, tt.response)

			rec := postVerify(t, handler, validRecord)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d (body: %s)", tt.wantStatus, rec.Code, rec.Body.String())
			}

			var errResp struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if errResp.Error.Code != tt.wantCode {
				t.Errorf("expected error code %q, got %q", tt.wantCode, errResp.Error.Code)
			}
		})
	}
}

func TestVerifyEndToEnd_HealthAndReady(t *testing.T) {
	handler, _ := newStack(t)

	for _, path := range []string{"/health", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
