package request_models

// DialogueTurnRequest drives one turn of the question flow. Answers are
// positional: answers[i] belongs to the i-th spec of the category's schema.
// A nil entry means the question was skipped client-side.
type DialogueTurnRequest struct {
	Step       int       `json:"step"`
	Category   string    `json:"category"`
	Answers    []*string `json:"answers"`
	Language   string    `json:"language"`
	BudgetBand string    `json:"budget_band,omitempty"`
}

type DetectCategoryRequest struct {
	Query string `json:"query" binding:"required"`
}
