package response_models

const (
	MatchExact         = "exact"
	MatchPartial       = "partial"
	MatchEmbedding     = "embedding"
	MatchAIRecognition = "ai_recognition"
	MatchAICreated     = "ai_created"
	MatchNone          = "none"
)

// CategoryResolution is the outcome of mapping a free-text query onto a
// canonical category name.
type CategoryResolution struct {
	MatchType string `json:"match_type"`
	Category  string `json:"category,omitempty"`
	Message   string `json:"message,omitempty"`
}
