package utils

import (
	"context"
	"fmt"
	"strings"

	"findflow/internal/models/db_models"
	"findflow/internal/models/request_models"
	"findflow/internal/models/response_models"

	"github.com/pgvector/pgvector-go"
)

// EmbeddingClientInterface turns text into a vector for similarity lookups.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// CategoryMindInterface covers the two category-level AI calls: pick one of
// the known category names for a free-text query, or draft a whole new
// question schema for a query nothing matches.
type CategoryMindInterface interface {
	RecognizeCategory(ctx context.Context, query string, known []string) (string, error)
	CreateCategory(ctx context.Context, query string) (*db_models.Category, error)
}

// ProductSearchInterface is the live recommendation provider.
type ProductSearchInterface interface {
	SearchProducts(ctx context.Context, query request_models.ProductSearchQuery) (*response_models.ProductSearchResult, error)
}

type AIClientInterface interface {
	EmbeddingClientInterface
	CategoryMindInterface
	ProductSearchInterface
}

// NewAIClient picks the provider from config the same way the rest of the
// app reads env-driven settings.
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
