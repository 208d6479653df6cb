package suggestion_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"surveyforge/internal/api/controllers"
	"surveyforge/internal/repositories"
	"surveyforge/internal/services"
	mem "surveyforge/pkg/memcache"
	"surveyforge/pkg/utils"
)

var Module = fx.Provide(
	ProvideSuggestionClient,
	ProvideSuggestionService,
	controllers.NewSuggestionController)

// SuggestionConfig holds configuration for AI suggestion clients
type SuggestionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideSuggestionClient creates an AI client based on environment variables
func ProvideSuggestionClient() (utils.SuggestionClientInterface, error) {
	config := getSuggestionConfig()

	log.Printf("Initializing %s suggestion client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAISuggestionClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiSuggestionClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported suggestion provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func ProvideSuggestionService(
	aiClient utils.SuggestionClientInterface,
	embeddingRepo repositories.IQuestionEmbeddingRepository,
	handoff mem.DraftHandoffStore,
) services.SuggestionServiceInterface {
	return services.NewSuggestionService(aiClient, embeddingRepo, handoff)
}

// getSuggestionConfig reads configuration from environment variables
func getSuggestionConfig() SuggestionConfig {
	provider := getEnvWithDefault("SUGGESTION_PROVIDER", "gemini") // Default to free Gemini

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

	return SuggestionConfig{
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
