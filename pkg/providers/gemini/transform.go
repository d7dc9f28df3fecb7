package gemini

import (
	"strings"

	"juscash/verifier/pkg/providers"
)

// Gemini API request/response types

// GenerateRequest represents a Gemini generateContent request.
type GenerateRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content represents a content block in Gemini format.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part represents a single content part.
type Part struct {
	Text string `json:"text,omitempty"`
}

// GenerationConfig carries sampling and structured-output settings.
type GenerationConfig struct {
	Temperature      *float64               `json:"temperature,omitempty"`
	MaxOutputTokens  int                    `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string                 `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]interface{} `json:"responseSchema,omitempty"`
}

// GenerateResponse represents a Gemini generateContent response.
type GenerateResponse struct {
	Candidates     []Candidate     `json:"candidates"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
	UsageMetadata  *UsageMetadata  `json:"usageMetadata,omitempty"`
	ModelVersion   string          `json:"modelVersion,omitempty"`
}

// Candidate is a single generated candidate.
type Candidate struct {
	Content      *Content `json:"content,omitempty"`
	FinishReason string   `json:"finishReason,omitempty"`
}

// PromptFeedback reports provider-side prompt screening.
type PromptFeedback struct {
	// BlockReason is set when the prompt was blocked by content safety
	// filtering (e.g. "SAFETY"). Absent or empty otherwise.
	BlockReason string `json:"blockReason,omitempty"`
}

// UsageMetadata represents token usage in Gemini format.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// Transformation functions

// transformRequest transforms a provider-agnostic request to Gemini format.
func transformRequest(req *providers.GenerationRequest) *GenerateRequest {
	genConfig := &GenerationConfig{
		MaxOutputTokens: req.MaxOutputTokens,
	}

	// Temperature zero is meaningful for decision evaluation, so it is
	// always sent explicitly.
	temp := req.Temperature
	genConfig.Temperature = &temp

	if req.ResponseSchema != nil {
		genConfig.ResponseMimeType = "application/json"
		genConfig.ResponseSchema = transformSchema(req.ResponseSchema)
	}

	return &GenerateRequest{
		Contents: []Content{
			{
				Role:  "user",
				Parts: []Part{{Text: req.Prompt}},
			},
		},
		GenerationConfig: genConfig,
	}
}

// transformSchema translates a JSON Schema document into Gemini's
// OpenAPI-style schema dialect: type names are uppercased and keywords
// Gemini does not understand are dropped.
func transformSchema(schema map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(schema))

	for key, value := range schema {
		switch key {
		case "type":
			if t, ok := value.(string); ok {
				out["type"] = strings.ToUpper(t)
			}

		case "enum", "description", "format", "required":
			out[key] = value

		case "properties":
			props, ok := value.(map[string]interface{})
			if !ok {
				continue
			}
			converted := make(map[string]interface{}, len(props))
			for name, sub := range props {
				if subSchema, ok := sub.(map[string]interface{}); ok {
					converted[name] = transformSchema(subSchema)
				}
			}
			out["properties"] = converted

		case "items":
			if subSchema, ok := value.(map[string]interface{}); ok {
				out["items"] = transformSchema(subSchema)
			}

		default:
			// $schema, additionalProperties, minLength, minItems and other
			// constraints Gemini rejects; the output is re-validated
			// against the full schema locally anyway.
		}
	}

	return out
}

// transformResponse normalizes a Gemini response to the provider-agnostic
// result. It concatenates all text parts of the first candidate.
func transformResponse(resp *GenerateResponse) *providers.GenerationResult {
	result := &providers.GenerationResult{
		Model: resp.ModelVersion,
	}

	if resp.PromptFeedback != nil {
		result.BlockReason = resp.PromptFeedback.BlockReason
	}

	if resp.UsageMetadata != nil {
		result.Usage = providers.TokenUsage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}

	if len(resp.Candidates) == 0 {
		return result
	}

	candidate := resp.Candidates[0]
	result.FinishReason = candidate.FinishReason

	if candidate.Content != nil {
		var b strings.Builder
		for _, part := range candidate.Content.Parts {
			b.WriteString(part.Text)
		}
		result.Text = b.String()
	}

	return result
}
