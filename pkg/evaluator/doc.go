// Package evaluator owns the delegated decision evaluation.
//
// Evaluate builds the evaluation request, makes exactly one bounded call
// to the reasoning provider, and classifies every possible outcome into
// one failure kind:
//
//   - ConfigurationError: the provider credential is absent. Fatal for the
//     request, recoverable at deployment.
//   - EmptyResponseError: the service returned no text; treated as a
//     service-level outage signal.
//   - SafetyBlockedError: the service declined for provider-side content
//     policy reasons, surfaced distinctly from an empty response.
//   - SchemaViolationError: the returned text does not satisfy the
//     Decision contract (malformed JSON, missing field, unknown decision
//     kind, empty citation list, or a citation naming no policy rule).
//   - UpstreamError: any other provider failure (network, timeout, rate
//     limit), with the underlying cause preserved.
//
// No retries happen here; retry policy, if wanted, layers above Evaluate.
package evaluator
