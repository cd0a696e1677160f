package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	// GeminiModelAccurate trades latency for accuracy.
	GeminiModelAccurate = "gemini-1.5-pro"
	// GeminiModelFast is the low-latency variant used for background work.
	GeminiModelFast = "gemini-2.5-flash"

	geminiCallTimeout = 30 * time.Second
)

// GeminiSentimentClient implements SentimentClientInterface against Google's
// hosted Gemini models with a schema-constrained JSON response.
type GeminiSentimentClient struct {
	client *genai.Client
	model  string
}

// NewGeminiSentimentClient creates a Gemini client. An empty apiKey is a
// detectable, non-fatal condition: the client is constructed unavailable and
// a warning is logged once.
func NewGeminiSentimentClient(apiKey, model string) (SentimentClientInterface, error) {
	if model == "" {
		model = GeminiModelAccurate
	}

	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set; sentiment analysis will report unavailable")
		return &GeminiSentimentClient{model: model}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSentimentClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiSentimentClient) IsAvailable() bool {
	return c.client != nil
}

func (c *GeminiSentimentClient) SupportedModels() []string {
	return []string{GeminiModelAccurate, GeminiModelFast}
}

func (c *GeminiSentimentClient) GenerateSentimentRating(ctx context.Context, systemPrompt, userPrompt, model string) (*SentimentPayload, error) {
	if c.client == nil {
		return nil, ErrAIServiceUnavailable
	}
	if model == "" {
		model = c.model
	}

	m := c.client.GenerativeModel(model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	// Force JSON output matching the declared two-field schema.
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"user_id":          {Type: genai.TypeInteger},
			"sentiment_rating": {Type: genai.TypeNumber},
		},
		Required: []string{"user_id", "sentiment_rating"},
	}
	// Low temperature keeps ratings consistent across identical inputs.
	m.SetTemperature(0.3)
	m.SetMaxOutputTokens(2048)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, geminiCallTimeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(userPrompt))
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: %v", ErrAIGateway, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: gemini returned no content", ErrAIGateway)
	}

	raw := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return decodeSentimentPayload(raw)
}

func (c *GeminiSentimentClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
