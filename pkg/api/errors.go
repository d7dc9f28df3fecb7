package api

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the structured error body returned on every failure path.
type ErrorResponse struct {
	// Error contains the error details.
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains detailed error information.
type ErrorDetail struct {
	// Message is a human-readable error message.
	Message string `json:"message"`

	// Type categorizes the error.
	Type string `json:"type"`

	// Param is the field that caused the error (if applicable).
	Param string `json:"param,omitempty"`

	// Code is a machine-readable error code.
	Code string `json:"code,omitempty"`
}

// Error type constants.
const (
	// ErrorTypeValidation indicates the input failed schema validation (422).
	ErrorTypeValidation = "validation_error"

	// ErrorTypeConfiguration indicates a deployment/configuration problem (500).
	ErrorTypeConfiguration = "configuration_error"

	// ErrorTypeReasoningUnavailable indicates the reasoning dependency failed (503).
	ErrorTypeReasoningUnavailable = "reasoning_unavailable"

	// ErrorTypeServerError indicates an unexpected internal failure (500).
	ErrorTypeServerError = "server_error"
)

// Error code constants.
const (
	// CodeSchemaMismatch indicates the input does not match the record schema.
	CodeSchemaMismatch = "schema_mismatch"

	// CodeMissingCredential indicates the reasoning-service credential is absent.
	CodeMissingCredential = "missing_credential"

	// CodeEmptyResponse indicates the reasoning service returned no content.
	CodeEmptyResponse = "empty_response"

	// CodeSafetyBlocked indicates provider-side content filtering declined the request.
	CodeSafetyBlocked = "safety_blocked"

	// CodeSchemaViolation indicates the reasoning output violated the decision contract.
	CodeSchemaViolation = "schema_violation"

	// CodeUpstreamFailure indicates a generic reasoning-service failure.
	CodeUpstreamFailure = "upstream_failure"

	// CodeInternalError indicates an unexpected internal failure.
	CodeInternalError = "internal_error"
)

// NewErrorResponse creates an error response with the given details.
func NewErrorResponse(message, errorType, param, code string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Message: message,
			Type:    errorType,
			Param:   param,
			Code:    code,
		},
	}
}

// NewValidationError creates an error response echoing an input schema mismatch (422).
func NewValidationError(message, param string) *ErrorResponse {
	return NewErrorResponse(message, ErrorTypeValidation, param, CodeSchemaMismatch)
}

// NewServerError creates an error response for unexpected internal failures (500).
func NewServerError(message string) *ErrorResponse {
	return NewErrorResponse(message, ErrorTypeServerError, "", CodeInternalError)
}

// HTTPStatusCode returns the status code for the error type.
func (e *ErrorDetail) HTTPStatusCode() int {
	switch e.Type {
	case ErrorTypeValidation:
		return http.StatusUnprocessableEntity
	case ErrorTypeConfiguration, ErrorTypeServerError:
		return http.StatusInternalServerError
	case ErrorTypeReasoningUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// WriteError writes a structured error response with the status code
// implied by its type.
func WriteError(w http.ResponseWriter, resp *ErrorResponse) error {
	return WriteJSON(w, resp.Error.HTTPStatusCode(), resp)
}
