package response_models

const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

type Price struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	Display  string  `json:"display"`
}

type Product struct {
	Title          string   `json:"title"`
	Price          Price    `json:"price"`
	Features       []string `json:"features,omitempty"`
	Pros           []string `json:"pros,omitempty"`
	Cons           []string `json:"cons,omitempty"`
	MatchScore     int      `json:"match_score"`
	SourceSite     string   `json:"source_site,omitempty"`
	ProductURL     string   `json:"product_url,omitempty"`
	LinkStatus     string   `json:"link_status,omitempty"`
	LinkMessage    string   `json:"link_message,omitempty"`
	WhyRecommended string   `json:"why_recommended,omitempty"`
}

// RecommendationResult is the terminal dialogue response. Source tells the
// caller whether the products came from the live search provider or from the
// static table, and FallbackReason says why when they did not.
type RecommendationResult struct {
	Recommendations     []Product      `json:"recommendations"`
	Category            string         `json:"category"`
	Preferences         map[string]any `json:"preferences"`
	ConfidenceScore     float64        `json:"confidence_score"`
	Source              string         `json:"source"`
	Message             string         `json:"message,omitempty"`
	FallbackReason      string         `json:"fallback_reason,omitempty"`
	BudgetFilterApplied bool           `json:"budget_filter_applied"`
	OriginalCount       int            `json:"original_count,omitempty"`
	FilteredCount       int            `json:"filtered_count,omitempty"`
}

// ProductSearchResult is the discriminated outcome of a provider call.
type ProductSearchResult struct {
	Status          string    `json:"status"` // "success" | "error"
	Recommendations []Product `json:"recommendations"`
	Sources         []string  `json:"sources,omitempty"`
	Message         string    `json:"message,omitempty"`
}
