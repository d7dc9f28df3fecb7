// Package gemini implements the providers.Provider interface for Google's
// Gemini generateContent API.
//
// The adapter enforces structured output by sending the request with
// responseMimeType "application/json" and a responseSchema translated
// from the provider-agnostic JSON Schema constraint into Gemini's
// OpenAPI-style schema dialect.
//
// A missing API key is not a construction error. It surfaces as a
// *providers.ConfigError on the first generation attempt, so a
// misconfigured deployment fails per-request instead of crashing.
package gemini
