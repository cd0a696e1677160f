package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// SentimentPayload is the structured two-field response every provider must
// return. user_id echoes the request so callers can verify consistency.
type SentimentPayload struct {
	UserID          uint    `json:"user_id"`
	SentimentRating float64 `json:"sentiment_rating"`
}

// SentimentClientInterface is the outbound gateway to a hosted generative
// model. Implementations are stateless with respect to storage and perform
// exactly one network call per invocation, no retries.
type SentimentClientInterface interface {
	// GenerateSentimentRating sends the prompts to the hosted model and
	// decodes its schema-constrained response. An empty model selects the
	// client's default variant.
	GenerateSentimentRating(ctx context.Context, systemPrompt, userPrompt, model string) (*SentimentPayload, error)

	// IsAvailable reports whether the credential needed to reach the hosted
	// model is configured. Callers are expected to check before invoking.
	IsAvailable() bool

	// SupportedModels lists the provider's model variants, accurate first.
	SupportedModels() []string

	Close() error
}

// NewSentimentClient builds a provider-specific client. Missing credentials
// do not fail construction; the client reports unavailable instead.
func NewSentimentClient(provider, apiKey, model string) (SentimentClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAISentimentClient(apiKey, model), nil
	case "gemini":
		return NewGeminiSentimentClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s (use 'gemini' or 'openai')", provider)
	}
}

// decodeSentimentPayload parses a raw model response into the two-field
// schema. Missing fields or wrong types are schema violations; range and
// user-id consistency checks are the caller's responsibility.
func decodeSentimentPayload(raw string) (*SentimentPayload, error) {
	raw = cleanJSONResponse(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("%w: response is not a JSON object: %v", ErrSchemaViolation, err)
	}
	if _, ok := fields["user_id"]; !ok {
		return nil, fmt.Errorf("%w: missing field user_id", ErrSchemaViolation)
	}
	if _, ok := fields["sentiment_rating"]; !ok {
		return nil, fmt.Errorf("%w: missing field sentiment_rating", ErrSchemaViolation)
	}

	var payload SentimentPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return &payload, nil
}

// cleanJSONResponse strips markdown fences some models wrap around JSON even
// when asked not to.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start != -1 && end > start {
		response = response[start : end+1]
	}
	return strings.TrimSpace(response)
}
