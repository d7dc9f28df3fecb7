package schema

import "fmt"

// ValidationError represents a structural failure in caller input.
// It occurs before any contact with the reasoning service.
type ValidationError struct {
	// Field is the JSON path of the offending field
	Field string

	// Message describes what is invalid about the field
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field %q: %s", e.Field, e.Message)
}

// SchemaError represents a reasoning-service response that does not
// conform to the Decision contract (malformed JSON, missing field,
// unknown decision kind, empty or unknown citations).
type SchemaError struct {
	// Field is the JSON path of the offending field, if it can be named
	Field string

	// RawResponse is the raw response text that failed validation
	RawResponse string

	// Cause is the underlying decode or validation error (if any)
	Cause error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decision schema error for field %q: %v", e.Field, e.causeOrMessage())
	}
	return fmt.Sprintf("decision schema error: %v", e.causeOrMessage())
}

// Unwrap returns the underlying error for error chain support.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

func (e *SchemaError) causeOrMessage() interface{} {
	if e.Cause != nil {
		return e.Cause
	}
	return "response does not conform to the decision contract"
}
