package aifx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"findflow/pkg/utils"
)

var Module = fx.Provide(
	ProvideAIClient)

// AIConfig holds configuration for the AI provider
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAIClient creates the AI client based on environment variables
func ProvideAIClient() (utils.AIClientInterface, error) {
	config := getAIConfig()

	log.Printf("Initializing %s AI client with model: %s", config.Provider, config.Model)

	return utils.NewAIClient(config.Provider, config.APIKey, config.Model)
}

func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini") // Default to free Gemini

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
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
