package prompt

import (
	"fmt"
	"strings"

	"juscash/verifier/pkg/policy"
	"juscash/verifier/pkg/providers"
	"juscash/verifier/pkg/schema"
)

// instruction frames the reasoning service's role. It is fixed: together
// with the fixed policy text, it keeps citations deterministic across calls.
const instruction = `You are the credit-purchase analyst at JusCash. Apply the JusCash policy
rules below to the judicial-process data and return your analysis in the
required JSON format.

Determine the decision ("approved", "rejected" or "incomplete") and cite
the policy rule identifiers (e.g. "POL-3") that justify it. Base the
rationale strictly on the policy rules.`

// Builder renders evaluation requests for a fixed policy document.
type Builder struct {
	policy          *policy.Document
	temperature     float64
	maxOutputTokens int
}

// Option configures a Builder.
type Option func(*Builder)

// WithTemperature sets the sampling temperature sent to the provider.
func WithTemperature(t float64) Option {
	return func(b *Builder) { b.temperature = t }
}

// WithMaxOutputTokens bounds the generated output length.
func WithMaxOutputTokens(n int) Option {
	return func(b *Builder) { b.maxOutputTokens = n }
}

// NewBuilder creates a Builder for the given policy document.
func NewBuilder(doc *policy.Document, opts ...Option) *Builder {
	b := &Builder{
		policy:          doc,
		temperature:     0.0,
		maxOutputTokens: 1024,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build composes the evaluation request for a record. The result carries
// the full prompt and the Decision response schema as the
// structured-output constraint.
func (b *Builder) Build(record *schema.ProcessRecord) *providers.GenerationRequest {
	var sb strings.Builder

	sb.WriteString(instruction)
	sb.WriteString("\n\n# JusCash policy rules (version ")
	sb.WriteString(b.policy.Version)
	sb.WriteString("):\n")
	sb.WriteString(b.policy.Text())
	sb.WriteString("\n# Process data:\n")
	sb.WriteString(renderRecord(record))

	return &providers.GenerationRequest{
		Prompt:          sb.String(),
		ResponseSchema:  schema.ResponseSchema(),
		Temperature:     b.temperature,
		MaxOutputTokens: b.maxOutputTokens,
	}
}

// renderRecord serializes the record field by field, in declaration order.
// Plain key/value lines keep the serialization stable and visible.
func renderRecord(record *schema.ProcessRecord) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "process_number: %s\n", record.ProcessNumber)
	fmt.Fprintf(&sb, "sphere: %s\n", record.Sphere)
	fmt.Fprintf(&sb, "condemnation_value: %.2f\n", record.CondemnationValue)
	fmt.Fprintf(&sb, "missing_documents: %t\n", record.MissingDocuments)
	fmt.Fprintf(&sb, "final_judgment_confirmed: %t\n", record.FinalJudgmentConfirmed)
	fmt.Fprintf(&sb, "transfer_without_reservation: %t\n", record.TransferWithoutReservation)
	fmt.Fprintf(&sb, "claimant_deceased: %t\n", record.ClaimantDeceased)

	return sb.String()
}
