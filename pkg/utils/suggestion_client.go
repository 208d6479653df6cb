package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// SuggestionClientInterface is the model-provider abstraction behind the AI
// question suggestion flow. GenerateJSON must return strict JSON only.
type SuggestionClientInterface interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Close() error
}

// NewSuggestionClient creates either an OpenAI or Gemini client.
func NewSuggestionClient(provider, apiKey, model string) (SuggestionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAISuggestionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiSuggestionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
