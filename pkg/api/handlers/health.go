package handlers

import (
	"net/http"

	"juscash/verifier/pkg/api"
	"juscash/verifier/pkg/providers"
)

// HealthHandler handles GET /health.
//
// Liveness is independent of the reasoning service: the endpoint reports ok
// whenever the process is serving, even with no credential configured.
type HealthHandler struct {
	version       string
	clientBaseURL string
}

// NewHealthHandler creates a new health check handler. clientBaseURL is
// the optional base-URL override advertised to thin clients (the form UI);
// empty means clients use the address they connected to.
func NewHealthHandler(version, clientBaseURL string) *HealthHandler {
	return &HealthHandler{version: version, clientBaseURL: clientBaseURL}
}

// healthResponse is the body returned by the health endpoint.
type healthResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Version       string `json:"version,omitempty"`
	ClientBaseURL string `json:"client_base_url,omitempty"`
}

// ServeHTTP implements http.Handler.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	api.WriteJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Message:       "judicial process verification service is running",
		Version:       h.version,
		ClientBaseURL: h.clientBaseURL,
	})
}

// ReadyHandler handles GET /ready. Unlike /health it reflects the recorded
// health of the reasoning provider, so load balancers can drain an instance
// whose upstream is persistently failing.
type ReadyHandler struct {
	provider providers.Provider
}

// NewReadyHandler creates a new readiness handler.
func NewReadyHandler(p providers.Provider) *ReadyHandler {
	return &ReadyHandler{provider: p}
}

// readyResponse is the body returned by the readiness endpoint.
type readyResponse struct {
	Ready    bool   `json:"ready"`
	Provider string `json:"provider,omitempty"`
}

// ServeHTTP implements http.Handler.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	resp := readyResponse{Ready: true}
	status := http.StatusOK

	if h.provider != nil {
		resp.Provider = h.provider.GetName()
		if !h.provider.IsHealthy() {
			resp.Ready = false
			status = http.StatusServiceUnavailable
		}
	}

	api.WriteJSON(w, status, resp)
}
