package request_models

// ProductSearchQuery is what the dialogue engine hands to the product
// search provider once questioning is complete.
type ProductSearchQuery struct {
	Category  string   `json:"category"`
	BudgetMin *int     `json:"budget_min,omitempty"`
	BudgetMax *int     `json:"budget_max,omitempty"`
	Features  []string `json:"features"`
	Language  string   `json:"language"`
}
