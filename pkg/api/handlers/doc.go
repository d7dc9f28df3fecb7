// Package handlers implements the verifier's HTTP handlers.
//
//   - VerifyHandler serves POST /verify: validates the record, delegates
//     to the decision evaluator, and maps every failure kind to its
//     external status code.
//   - HealthHandler serves GET /health: a static liveness signal with no
//     dependency on the reasoning service.
//   - ReadyHandler serves GET /ready: readiness from the provider's
//     tracked health, still without running an evaluation.
package handlers
