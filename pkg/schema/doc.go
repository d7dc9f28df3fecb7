// Package schema defines the input and output contracts of the verifier.
//
// The package owns both sides of the evaluation boundary:
//
//   - ProcessRecord is the judicial-process record submitted by callers.
//     ValidateInput performs structural validation only: field presence,
//     type, sphere membership, and value sign. It never applies business
//     rules; whether a record should be approved is the evaluator's job.
//
//   - Decision is the structured verdict returned by the reasoning service.
//     DecodeDecision re-validates the service's output against a compiled
//     JSON Schema before it is trusted, because schema enforcement on the
//     far side of a process boundary is best-effort.
//
// All validation is pure: no I/O, no logging, no state.
//
// Error types:
//
//   - ValidationError: the caller's input is structurally invalid. Carries
//     the offending field path.
//   - SchemaError: the reasoning service's output does not conform to the
//     Decision contract. Carries the raw response for diagnostics.
package schema
