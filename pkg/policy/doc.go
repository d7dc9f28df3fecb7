// Package policy holds the versioned JusCash purchase policy.
//
// The policy is a fixed, ordered collection of rules, each tagged with a
// stable identifier (POL-1, POL-3, ...). It is loaded once at process start
// and treated as process-wide read-only state: determinism of citations
// depends on the reasoning service seeing exactly the same policy text on
// every call. There is no hot reload; changing the policy requires a new
// process start.
//
// Rule identifiers follow the original policy document's numbering, which
// has no POL-7.
package policy
