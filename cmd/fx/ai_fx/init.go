package ai_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"vibecheck/pkg/utils"
)

var Module = fx.Provide(
	ProvideSentimentClient)

// AIConfig holds configuration for the sentiment gateway client.
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideSentimentClient creates the gateway client from environment
// variables. A missing API key is not fatal: the client is constructed
// unavailable and analysis endpoints report 503 until the credential is set.
func ProvideSentimentClient() (utils.SentimentClientInterface, error) {
	config := getAIConfig()

	log.Printf("Initializing %s sentiment client with model: %s", config.Provider, config.Model)

	return utils.NewSentimentClient(config.Provider, config.APIKey, config.Model)
}

func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", utils.OpenAIModelAccurate)
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", utils.GeminiModelAccurate)
	}

	return AIConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
