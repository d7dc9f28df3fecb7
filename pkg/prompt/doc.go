// Package prompt deterministically renders evaluation requests.
//
// A request is the concatenation of a fixed analyst instruction, the full
// policy text, and the submitted record serialized field by field in a
// stable order, plus the structured-output constraint the reasoning
// service must conform to. The policy text is never truncated or
// summarized: every rule must be visible to the evaluator on every call.
//
// Building a request has no side effects. The same record and the same
// policy always produce a byte-identical prompt.
package prompt
