package services

import (
	"context"
	"log"
	"strings"

	"findflow/internal/models/db_models"
	"findflow/internal/models/request_models"
	"findflow/internal/models/response_models"
	"findflow/pkg/utils"
)

// noFeatureValues are answer strings that carry no searchable signal.
var noFeatureValues = map[string]bool{
	"Bilmiyorum": true, "Not sure": true, "Farketmez": true, "No preference": true,
}

type RecommendationServiceInterface interface {
	Generate(ctx context.Context, category *db_models.Category, preferences PreferenceMap, language string) *response_models.RecommendationResult
}

func NewRecommendationService(provider utils.ProductSearchInterface) RecommendationServiceInterface {
	return &RecommendationService{provider: provider}
}

type RecommendationService struct {
	provider utils.ProductSearchInterface
}

// Generate runs the live search and degrades to the static table on any
// provider failure or when budget filtering leaves nothing. It never returns
// an error: a recommendation response always comes back.
func (s *RecommendationService) Generate(ctx context.Context, category *db_models.Category, preferences PreferenceMap, language string) *response_models.RecommendationResult {
	budgetMin, budgetMax := ParseBudgetBand(budgetBand(preferences))
	confidence := ConfidenceScore(preferences, category.Specs)

	query := request_models.ProductSearchQuery{
		Category:  category.Name,
		BudgetMin: budgetMin,
		BudgetMax: budgetMax,
		Features:  featureList(preferences),
		Language:  language,
	}

	result, err := s.provider.SearchProducts(ctx, query)
	if err != nil {
		log.Printf("Product search failed for %s: %v", category.Name, err)
		return &response_models.RecommendationResult{
			Recommendations: FallbackRecommendations(category.Name, budgetMin, budgetMax),
			Category:        category.Name,
			Preferences:     preferences,
			ConfidenceScore: confidence,
			Source:          response_models.SourceFallback,
			Message:         "Arama sistemi geçici olarak kullanılamıyor, güvenilir önerilerimizi sunuyoruz",
			FallbackReason:  err.Error(),
		}
	}

	if result == nil || result.Status != "success" || len(result.Recommendations) == 0 {
		log.Printf("Product search returned no usable results for %s", category.Name)
		return &response_models.RecommendationResult{
			Recommendations: FallbackRecommendations(category.Name, budgetMin, budgetMax),
			Category:        category.Name,
			Preferences:     preferences,
			ConfidenceScore: confidence,
			Source:          response_models.SourceFallback,
			Message:         "Arama sistemi geçici olarak sınırlı, önerilerimizi sunuyoruz",
			FallbackReason:  "empty_result",
		}
	}

	filtered := FilterByBudget(result.Recommendations, budgetMin, budgetMax)
	if len(filtered) == 0 {
		return &response_models.RecommendationResult{
			Recommendations:     FallbackRecommendations(category.Name, budgetMin, budgetMax),
			Category:            category.Name,
			Preferences:         preferences,
			ConfidenceScore:     confidence,
			Source:              response_models.SourceFallback,
			Message:             "Seçtiğiniz bütçe aralığında ürün bulunamadı. Size benzer ürünler öneriyoruz.",
			FallbackReason:      "budget_exhausted",
			BudgetFilterApplied: true,
		}
	}

	return &response_models.RecommendationResult{
		Recommendations:     filtered,
		Category:            category.Name,
		Preferences:         preferences,
		ConfidenceScore:     confidence,
		Source:              response_models.SourceLive,
		BudgetFilterApplied: true,
		OriginalCount:       len(result.Recommendations),
		FilteredCount:       len(filtered),
	}
}

// FilterByBudget keeps products whose price falls inside the bounds; a
// missing bound is unbounded on that side. Products with no usable price are
// dropped.
func FilterByBudget(products []response_models.Product, budgetMin, budgetMax *int) []response_models.Product {
	if budgetMin == nil && budgetMax == nil {
		return products
	}

	filtered := make([]response_models.Product, 0, len(products))
	for _, product := range products {
		price := product.Price.Value
		if price <= 0 {
			continue
		}
		if budgetMin != nil && price < float64(*budgetMin) {
			continue
		}
		if budgetMax != nil && price > float64(*budgetMax) {
			continue
		}
		filtered = append(filtered, product)
	}
	return filtered
}

func budgetBand(preferences PreferenceMap) string {
	if v, ok := preferences[BudgetBandKey].(string); ok {
		return v
	}
	return ""
}

// featureList extracts search terms: true booleans become their spec id with
// spaces, meaningful strings pass through.
func featureList(preferences PreferenceMap) []string {
	features := []string{}
	for id, value := range preferences {
		if id == BudgetBandKey || value == nil {
			continue
		}
		switch v := value.(type) {
		case bool:
			if v {
				features = append(features, strings.ReplaceAll(id, "_", " "))
			}
		case string:
			if v != "" && !noFeatureValues[v] {
				features = append(features, v)
			}
		}
	}
	return features
}
