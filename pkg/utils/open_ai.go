package utils

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"
)

const (
	OpenAIModelAccurate = openai.GPT4o
	OpenAIModelFast     = openai.GPT4oMini
)

// OpenAISentimentClient is the alternate provider behind the same gateway
// interface, selected via the provider factory.
type OpenAISentimentClient struct {
	client *openai.Client
	model  string
}

func NewOpenAISentimentClient(apiKey, model string) SentimentClientInterface {
	if model == "" {
		model = OpenAIModelAccurate
	}

	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set; sentiment analysis will report unavailable")
		return &OpenAISentimentClient{model: model}
	}

	return &OpenAISentimentClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAISentimentClient) IsAvailable() bool {
	return c.client != nil
}

func (c *OpenAISentimentClient) SupportedModels() []string {
	return []string{OpenAIModelAccurate, OpenAIModelFast}
}

func (c *OpenAISentimentClient) GenerateSentimentRating(ctx context.Context, systemPrompt, userPrompt, model string) (*SentimentPayload, error) {
	if c.client == nil {
		return nil, ErrAIServiceUnavailable
	}
	if model == "" {
		model = c.model
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: openai: %v", ErrAIGateway, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: openai returned no choices", ErrAIGateway)
	}

	return decodeSentimentPayload(resp.Choices[0].Message.Content)
}

func (c *OpenAISentimentClient) Close() error {
	return nil
}
