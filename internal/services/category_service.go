package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"findflow/internal/models/db_models"
	"findflow/internal/models/response_models"
	"findflow/internal/repositories"
	"findflow/pkg/memcache"
	"findflow/pkg/utils"

	"github.com/pgvector/pgvector-go"
)

const resolutionCacheTTL = time.Hour

type CategoryServiceInterface interface {
	ListNames(ctx context.Context) ([]string, error)
	GetByName(ctx context.Context, name string) (*db_models.Category, error)
	Resolve(ctx context.Context, query string) (response_models.CategoryResolution, error)
	EnsureCategory(ctx context.Context, name string) (*db_models.Category, error)
	Save(ctx context.Context, category *db_models.Category) error
	SeedFromFile(ctx context.Context, path string) error
}

func NewCategoryService(
	repo repositories.CategoryRepositoryInterface,
	embeddings repositories.CategoryEmbeddingRepositoryInterface,
	ai utils.AIClientInterface,
	cache memcache.ResolutionStore,
) CategoryServiceInterface {
	return &CategoryService{
		repo:       repo,
		embeddings: embeddings,
		ai:         ai,
		cache:      cache,
	}
}

type CategoryService struct {
	repo       repositories.CategoryRepositoryInterface
	embeddings repositories.CategoryEmbeddingRepositoryInterface
	ai         utils.AIClientInterface
	cache      memcache.ResolutionStore
}

func (s *CategoryService) ListNames(ctx context.Context) ([]string, error) {
	return s.repo.ListNames(ctx)
}

func (s *CategoryService) GetByName(ctx context.Context, name string) (*db_models.Category, error) {
	return s.repo.GetByName(ctx, name)
}

// Resolve maps a free-text query onto a canonical category name. Stages are
// tried cheapest first: cache, exact name, partial name, stored embeddings,
// AI recognition against the known names, and finally AI schema creation.
func (s *CategoryService) Resolve(ctx context.Context, query string) (response_models.CategoryResolution, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return response_models.CategoryResolution{MatchType: response_models.MatchNone},
			fmt.Errorf("%w: empty query", utils.ErrInvalidInput)
	}

	if cached, ok := s.cache.Get(query); ok {
		return cached, nil
	}

	names, err := s.repo.ListNames(ctx)
	if err != nil {
		return response_models.CategoryResolution{MatchType: response_models.MatchNone}, err
	}

	if name := exactNameMatch(query, names); name != "" {
		return s.cacheHit(query, response_models.MatchExact, name), nil
	}
	if name := aliasNameMatch(query, names); name != "" {
		return s.cacheHit(query, response_models.MatchExact, name), nil
	}
	if name := partialNameMatch(query, names); name != "" {
		return s.cacheHit(query, response_models.MatchPartial, name), nil
	}

	if name := s.embeddingMatch(ctx, query); name != "" {
		return s.cacheHit(query, response_models.MatchEmbedding, name), nil
	}

	name, err := s.ai.RecognizeCategory(ctx, query, names)
	if err != nil {
		log.Printf("Category recognition failed for %q: %v", query, err)
	} else if name != "" {
		s.rememberAlias(ctx, name, query)
		return s.cacheHit(query, response_models.MatchAIRecognition, name), nil
	}

	category, err := s.ai.CreateCategory(ctx, query)
	if err != nil {
		log.Printf("Category creation failed for %q: %v", query, err)
		return response_models.CategoryResolution{
				MatchType: response_models.MatchNone,
				Message:   fmt.Sprintf("Category %q could not be created or found", query),
			},
			fmt.Errorf("%w: %q", utils.ErrCategoryUnresolvable, query)
	}

	if err := s.Save(ctx, category); err != nil {
		return response_models.CategoryResolution{MatchType: response_models.MatchNone}, err
	}
	s.rememberAlias(ctx, category.Name, query)
	return s.cacheHit(query, response_models.MatchAICreated, category.Name), nil
}

// EnsureCategory returns the stored category for a name, resolving free text
// through the full pipeline when the name is not an exact hit.
func (s *CategoryService) EnsureCategory(ctx context.Context, name string) (*db_models.Category, error) {
	category, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}

	resolution, err := s.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	category, err = s.repo.GetByName(ctx, resolution.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: %q", utils.ErrCategoryUnresolvable, name)
	}
	return category, nil
}

func (s *CategoryService) Save(ctx context.Context, category *db_models.Category) error {
	if category == nil {
		return fmt.Errorf("%w: nil category", utils.ErrInvalidInput)
	}
	if err := category.Validate(); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSchemaInvalid, err)
	}
	if err := s.repo.Save(ctx, category); err != nil {
		return err
	}
	s.rememberAlias(ctx, category.Name, category.Name)
	s.cache.Invalidate()
	return nil
}

// SeedFromFile loads a JSON document of name -> category definition and
// stores every category not already present.
func (s *CategoryService) SeedFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed map[string]db_models.Category
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}

	for name, category := range seed {
		category.Name = name
		existing, err := s.repo.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.Save(ctx, &category); err != nil {
			return err
		}
		log.Printf("Seeded category %s", name)
	}
	return nil
}

func (s *CategoryService) cacheHit(query, matchType, name string) response_models.CategoryResolution {
	resolution := response_models.CategoryResolution{
		MatchType: matchType,
		Category:  name,
	}
	s.cache.Set(query, resolution, resolutionCacheTTL)
	return resolution
}

func (s *CategoryService) embeddingMatch(ctx context.Context, query string) string {
	vector, err := s.ai.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("Embedding lookup failed for %q: %v", query, err)
		return ""
	}
	nearest, err := s.embeddings.NearestByVector(ctx, vector)
	if err != nil {
		log.Printf("Embedding search failed for %q: %v", query, err)
		return ""
	}
	if nearest == nil {
		return ""
	}
	return nearest.CategoryName
}

// rememberAlias stores the query as an alias on the category's embedding row
// so the next similar query resolves without an AI call.
func (s *CategoryService) rememberAlias(ctx context.Context, name, alias string) {
	vector, err := s.ai.GetEmbedding(ctx, name)
	if err != nil {
		log.Printf("Embedding generation failed for %s: %v", name, err)
		return
	}
	s.upsertEmbedding(ctx, name, alias, vector)
}

func (s *CategoryService) upsertEmbedding(ctx context.Context, name, alias string, vector pgvector.Vector) {
	embedding := db_models.CategoryEmbedding{
		CategoryName: name,
		Aliases:      []string{strings.ToLower(alias)},
		Embedding:    vector,
	}
	if err := s.embeddings.Upsert(ctx, embedding); err != nil {
		log.Printf("Embedding upsert failed for %s: %v", name, err)
	}
}

func exactNameMatch(query string, names []string) string {
	for _, name := range names {
		if strings.EqualFold(name, query) {
			return name
		}
	}
	return ""
}

// localAliases maps common Turkish product words to canonical category
// names, so everyday queries skip the embedding and AI stages.
var localAliases = map[string]string{
	"kulaklık":   "Headphones",
	"kulaklik":   "Headphones",
	"telefon":    "Phone",
	"televizyon": "Television",
	"tv":         "Television",
	"lastik":     "Tire",
	"drone":      "Drone",
	"klima":      "Klima",
}

// aliasNameMatch resolves a query through the alias table, but only to a
// category that actually exists in the store.
func aliasNameMatch(query string, names []string) string {
	canonical, ok := localAliases[strings.ToLower(strings.TrimSpace(query))]
	if !ok {
		return ""
	}
	return exactNameMatch(canonical, names)
}

// partialNameMatch applies the conservative substring rules: the query must
// be a prefix or a substantial part of the name, or the name a prefix/suffix
// of the query, to avoid pairs like "headphones" -> "Phone".
func partialNameMatch(query string, names []string) string {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	for _, name := range names {
		nameLower := strings.ToLower(name)

		if len(queryLower) >= 3 && strings.Contains(nameLower, queryLower) {
			if strings.HasPrefix(nameLower, queryLower) || len(queryLower)*10 >= len(nameLower)*7 {
				return name
			}
		}
		if len(nameLower) >= 4 && strings.Contains(queryLower, nameLower) {
			if strings.HasPrefix(queryLower, nameLower) || strings.HasSuffix(queryLower, nameLower) {
				return name
			}
		}
	}
	return ""
}
