package schema

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Kind is the final decision about a process.
type Kind string

// Decision kind constants. These are the only three permitted values.
const (
	KindApproved   Kind = "approved"
	KindRejected   Kind = "rejected"
	KindIncomplete Kind = "incomplete"
)

// Kinds lists every permitted decision kind, in declaration order.
var Kinds = []Kind{KindApproved, KindRejected, KindIncomplete}

// Decision is the structured verdict produced by the reasoning service.
// It is produced once per request, returned to the caller, and not
// persisted by the request path.
//
// The decision kind determines the expected policy category of the
// citations (a rejection should cite rejection rules). That consistency is
// a soft invariant enforced only by the reasoning service's own judgment;
// the verifier checks citation existence, not citation category.
type Decision struct {
	// Decision is the final verdict (approved, rejected, incomplete)
	Decision Kind `json:"decision"`

	// Rationale is the non-empty justification for the verdict, grounded
	// in the policy rules
	Rationale string `json:"rationale"`

	// Citations is the ordered, non-empty list of policy-rule identifiers
	// that justify the verdict (e.g. "POL-3")
	Citations []string `json:"citations"`
}

// decisionSchema is the JSON Schema the reasoning service's output is
// re-validated against before it is trusted. It mirrors the constraint
// handed to the service in the evaluation request.
const decisionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "required": ["decision", "rationale", "citations"],
  "properties": {
    "decision": {
      "type": "string",
      "enum": ["approved", "rejected", "incomplete"]
    },
    "rationale": {
      "type": "string",
      "minLength": 1
    },
    "citations": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

// compiledDecisionSchema is compiled once at package initialization.
// The schema text is a constant, so compilation cannot fail at runtime.
var compiledDecisionSchema = jsonschema.MustCompileString("decision.schema.json", decisionSchema)

// ResponseSchema returns the Decision contract as a JSON Schema document.
// The prompt builder hands it to the reasoning provider as the
// structured-output constraint, so the constraint sent out and the
// validation applied on the way back share one source of truth.
func ResponseSchema() map[string]interface{} {
	var doc map[string]interface{}
	// The schema text is a constant; this cannot fail at runtime.
	if err := json.Unmarshal([]byte(decisionSchema), &doc); err != nil {
		panic(err)
	}
	return doc
}

// DecodeDecision decodes and validates raw reasoning-service output
// against the Decision contract. The service is untrusted with respect to
// formatting: its text is validated against the compiled JSON Schema
// before being decoded into a Decision.
//
// Failures return a *SchemaError carrying the raw response.
func DecodeDecision(raw []byte) (*Decision, error) {
	if len(raw) == 0 {
		return nil, &SchemaError{
			RawResponse: "",
			Cause:       fmt.Errorf("empty response text"),
		}
	}

	// Validate against the schema first so enum and cardinality violations
	// are reported precisely.
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, &SchemaError{
			RawResponse: string(raw),
			Cause:       fmt.Errorf("malformed JSON: %w", err),
		}
	}

	if err := compiledDecisionSchema.Validate(value); err != nil {
		return nil, &SchemaError{
			RawResponse: string(raw),
			Cause:       err,
		}
	}

	var decision Decision
	if err := json.Unmarshal(raw, &decision); err != nil {
		return nil, &SchemaError{
			RawResponse: string(raw),
			Cause:       err,
		}
	}

	return &decision, nil
}

// Validate checks an already-decoded Decision against the contract.
// It mirrors DecodeDecision for decisions constructed in-process.
func (d *Decision) Validate() error {
	valid := false
	for _, k := range Kinds {
		if d.Decision == k {
			valid = true
			break
		}
	}
	if !valid {
		return &SchemaError{
			Field: "decision",
			Cause: fmt.Errorf("decision kind %q is not one of %v", d.Decision, Kinds),
		}
	}

	if d.Rationale == "" {
		return &SchemaError{
			Field: "rationale",
			Cause: fmt.Errorf("rationale must not be empty"),
		}
	}

	if len(d.Citations) == 0 {
		return &SchemaError{
			Field: "citations",
			Cause: fmt.Errorf("citation list must not be empty"),
		}
	}

	for i, c := range d.Citations {
		if c == "" {
			return &SchemaError{
				Field: fmt.Sprintf("citations[%d]", i),
				Cause: fmt.Errorf("citation must not be empty"),
			}
		}
	}

	return nil
}
