// Package api defines the verifier's HTTP surface.
//
// The request handler layer is the only component permitted to translate
// internal failure kinds into external status codes:
//
//   - input validation failure  -> 422, echoing the schema mismatch
//   - ConfigurationError        -> 500, deployment/configuration problem
//   - EmptyResponse, SafetyBlocked, SchemaViolation, Upstream
//     failures                  -> 503, reasoning dependency failed,
//     with the underlying cause in the error body for diagnostics
//   - success                   -> 200, the Decision serialized per schema
//
// Every failure path returns a structured error body, never an unhandled
// fault. GET /health is the one operation guaranteed never to fail due to
// the reasoning dependency.
package api
