package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Sphere is the judicial sphere a process belongs to.
// The set of spheres is fixed by the business policy.
type Sphere string

// Judicial sphere constants
const (
	SphereFederal Sphere = "Federal"
	SphereState   Sphere = "State"
	SphereLabor   Sphere = "Labor"
)

// Spheres lists every sphere accepted by the policy, in declaration order.
var Spheres = []Sphere{SphereFederal, SphereState, SphereLabor}

// ProcessRecord is a judicial-process record submitted for evaluation.
// All seven fields are required; there are no optional or defaulted fields.
// A record is constructed once per request from caller input, treated as
// immutable, and discarded after evaluation.
type ProcessRecord struct {
	// ProcessNumber is the court-assigned process identifier
	ProcessNumber string `json:"process_number"`

	// Sphere is the judicial sphere (Federal, State, Labor)
	Sphere Sphere `json:"sphere"`

	// CondemnationValue is the condemnation amount in Reais (non-negative)
	CondemnationValue float64 `json:"condemnation_value"`

	// MissingDocuments is true when an essential document is missing
	MissingDocuments bool `json:"missing_documents"`

	// FinalJudgmentConfirmed is true when the final judgment
	// (trânsito em julgado) is confirmed
	FinalJudgmentConfirmed bool `json:"final_judgment_confirmed"`

	// TransferWithoutReservation is true when there is a power-of-attorney
	// transfer without reservation of powers
	TransferWithoutReservation bool `json:"transfer_without_reservation"`

	// ClaimantDeceased is true when the claimant is deceased without
	// estate representation
	ClaimantDeceased bool `json:"claimant_deceased"`
}

// rawRecord is the decode envelope for ValidateInput. Pointer fields let
// an absent field be distinguished from a zero value.
type rawRecord struct {
	ProcessNumber              *string  `json:"process_number"`
	Sphere                     *string  `json:"sphere"`
	CondemnationValue          *float64 `json:"condemnation_value"`
	MissingDocuments           *bool    `json:"missing_documents"`
	FinalJudgmentConfirmed     *bool    `json:"final_judgment_confirmed"`
	TransferWithoutReservation *bool    `json:"transfer_without_reservation"`
	ClaimantDeceased           *bool    `json:"claimant_deceased"`
}

// ValidateInput decodes and structurally validates a raw request body.
// It returns a ProcessRecord on success, or a *ValidationError naming the
// offending field. Validation is structural only: presence, type, sphere
// membership, and non-negative value. Business rules are never applied here.
func ValidateInput(raw []byte) (*ProcessRecord, error) {
	var envelope rawRecord
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&envelope); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ValidationError{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}
		}
		return nil, &ValidationError{
			Field:   "(body)",
			Message: fmt.Sprintf("malformed JSON: %v", err),
		}
	}

	// Decode stops at the end of the first JSON value; anything after it
	// means the body is not a single record.
	if _, err := decoder.Token(); err != io.EOF {
		return nil, &ValidationError{
			Field:   "(body)",
			Message: "unexpected data after JSON body",
		}
	}

	if envelope.ProcessNumber == nil {
		return nil, missingField("process_number")
	}
	if *envelope.ProcessNumber == "" {
		return nil, &ValidationError{Field: "process_number", Message: "must not be empty"}
	}

	if envelope.Sphere == nil {
		return nil, missingField("sphere")
	}
	sphere, err := parseSphere(*envelope.Sphere)
	if err != nil {
		return nil, err
	}

	if envelope.CondemnationValue == nil {
		return nil, missingField("condemnation_value")
	}
	if *envelope.CondemnationValue < 0 {
		return nil, &ValidationError{
			Field:   "condemnation_value",
			Message: fmt.Sprintf("must be non-negative, got %v", *envelope.CondemnationValue),
		}
	}

	if envelope.MissingDocuments == nil {
		return nil, missingField("missing_documents")
	}
	if envelope.FinalJudgmentConfirmed == nil {
		return nil, missingField("final_judgment_confirmed")
	}
	if envelope.TransferWithoutReservation == nil {
		return nil, missingField("transfer_without_reservation")
	}
	if envelope.ClaimantDeceased == nil {
		return nil, missingField("claimant_deceased")
	}

	return &ProcessRecord{
		ProcessNumber:              *envelope.ProcessNumber,
		Sphere:                     sphere,
		CondemnationValue:          *envelope.CondemnationValue,
		MissingDocuments:           *envelope.MissingDocuments,
		FinalJudgmentConfirmed:     *envelope.FinalJudgmentConfirmed,
		TransferWithoutReservation: *envelope.TransferWithoutReservation,
		ClaimantDeceased:           *envelope.ClaimantDeceased,
	}, nil
}

// parseSphere validates sphere membership against the fixed set.
func parseSphere(value string) (Sphere, error) {
	for _, s := range Spheres {
		if value == string(s) {
			return s, nil
		}
	}
	return "", &ValidationError{
		Field:   "sphere",
		Message: fmt.Sprintf("must be one of %v, got %q", Spheres, value),
	}
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "required field is missing"}
}
