// Package telemetry provides observability for the JusCash verifier.
//
// # Components
//
//   - logging: structured logging via log/slog (json or text handlers)
//   - metrics: Prometheus metrics collection and the /metrics handler
//
// Both are wired once at startup from the configuration and carry no
// mutable state of their own after that.
package telemetry
