package response_models

// QuestionPrompt is one rendered clarifying question.
type QuestionPrompt struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Emoji       string   `json:"emoji,omitempty"`
	Options     []string `json:"options,omitempty"`
	Min         *int     `json:"min,omitempty"`
	Max         *int     `json:"max,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Tooltip     string   `json:"tooltip,omitempty"`
	Reason      string   `json:"reason,omitempty"`
	Progress    int      `json:"progress"`
}

// CategoryPrompt is the step-0 response: no category chosen yet.
type CategoryPrompt struct {
	Question   string   `json:"question"`
	Categories []string `json:"categories"`
}

// DialogueTurnResponse carries exactly one of the three members.
type DialogueTurnResponse struct {
	CategoryPrompt *CategoryPrompt       `json:"category_prompt,omitempty"`
	Question       *QuestionPrompt       `json:"question,omitempty"`
	Recommendation *RecommendationResult `json:"recommendation,omitempty"`
}
