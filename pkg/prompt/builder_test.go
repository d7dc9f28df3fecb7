package prompt

import (
	"strings"
	"testing"

	"juscash/verifier/pkg/policy"
	"juscash/verifier/pkg/schema"
)

func testRecord() *schema.ProcessRecord {
	return &schema.ProcessRecord{
		ProcessNumber:              "0001234-56.2020.5.02.0011",
		Sphere:                     schema.SphereLabor,
		CondemnationValue:          150000.50,
		MissingDocuments:           false,
		FinalJudgmentConfirmed:     true,
		TransferWithoutReservation: false,
		ClaimantDeceased:           false,
	}
}

func TestBuild(t *testing.T) {
	doc := policy.Default()
	builder := NewBuilder(doc)

	req := builder.Build(testRecord())

	// The prompt carries the full policy text and every record field.
	if !strings.Contains(req.Prompt, doc.Text()) {
		t.Error("prompt does not contain the policy text")
	}

	wantLines := []string{
		"process_number: 0001234-56.2020.5.02.0011",
		"sphere: Labor",
		"condemnation_value: 150000.50",
		"missing_documents: false",
		"final_judgment_confirmed: true",
		"transfer_without_reservation: false",
		"claimant_deceased: false",
	}
	for _, line := range wantLines {
		if !strings.Contains(req.Prompt, line) {
			t.Errorf("prompt missing line %q", line)
		}
	}

	if req.ResponseSchema == nil {
		t.Fatal("request has no response schema")
	}
	if req.Temperature != 0.0 {
		t.Errorf("expected temperature 0.0, got %v", req.Temperature)
	}
	if req.MaxOutputTokens != 1024 {
		t.Errorf("expected max output tokens 1024, got %d", req.MaxOutputTokens)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	builder := NewBuilder(policy.Default())
	record := testRecord()

	first := builder.Build(record)
	second := builder.Build(record)

	if first.Prompt != second.Prompt {
		t.Error("identical records must produce identical prompts")
	}
}

func TestBuilderOptions(t *testing.T) {
	builder := NewBuilder(policy.Default(),
		WithTemperature(0.3),
		WithMaxOutputTokens(512),
	)

	req := builder.Build(testRecord())

	if req.Temperature != 0.3 {
		t.Errorf("expected temperature 0.3, got %v", req.Temperature)
	}
	if req.MaxOutputTokens != 512 {
		t.Errorf("expected max output tokens 512, got %d", req.MaxOutputTokens)
	}
}
