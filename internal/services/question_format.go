package services

import (
	"fmt"

	"findflow/internal/models/db_models"
	"findflow/internal/models/response_models"
)

const (
	ReasonMandatory      = "mandatory"
	ReasonDependency     = "dependency"
	ReasonImportance     = "importance"
	ReasonQuantification = "quantification"
	ReasonBudget         = "budget"
)

var reasonTooltips = map[string]db_models.LocalizedText{
	ReasonMandatory: {
		"en": "This is essential for good recommendations",
		"tr": "Bu iyi öneriler için gerekli",
	},
	ReasonDependency: {
		"en": "Based on your previous answer",
		"tr": "Önceki cevabınıza göre",
	},
	ReasonImportance: {
		"en": "This significantly affects your options",
		"tr": "Bu seçeneklerinizi önemli ölçüde etkiler",
	},
	ReasonQuantification: {
		"en": "Need specific numbers for precise recommendations",
		"tr": "Kesin öneriler için sayısal değer gerekli",
	},
}

// FormatQuestion renders a spec into a caller-facing prompt. Boolean
// questions get the localized three-way option set; single-choice questions
// get every schema option plus an appended "Not sure" the schema does not
// carry; number questions get bounds and a placeholder.
func FormatQuestion(spec db_models.QuestionSpec, language, reason string) *response_models.QuestionPrompt {
	prompt := &response_models.QuestionPrompt{
		ID:       spec.ID,
		Type:     string(spec.Type),
		Question: spec.Label.In(language),
		Emoji:    spec.Emoji,
		Reason:   reason,
	}

	if tooltip, ok := spec.Tooltip[language]; ok {
		prompt.Tooltip = tooltip
	} else if reason != "" {
		prompt.Tooltip = reasonTooltips[reason].In(language)
	}

	switch spec.Type {
	case db_models.QuestionBoolean:
		if language == "tr" {
			prompt.Options = []string{"Evet", "Hayır", "Farketmez"}
		} else {
			prompt.Options = []string{"Yes", "No", "No preference"}
		}

	case db_models.QuestionSingleChoice:
		if spec.Choice != nil {
			for _, opt := range spec.Choice.Options {
				prompt.Options = append(prompt.Options, opt.Label.In(language))
			}
		}
		if language == "tr" {
			prompt.Options = append(prompt.Options, "Bilmiyorum")
		} else {
			prompt.Options = append(prompt.Options, "Not sure")
		}

	case db_models.QuestionNumber:
		min, max := db_models.DefaultNumberMin, db_models.DefaultNumberMax
		if spec.Number != nil {
			min, max = spec.Number.Min, spec.Number.Max
		}
		prompt.Min = &min
		prompt.Max = &max
		prompt.Placeholder = fmt.Sprintf("Enter a number between %d and %d", min, max)
	}

	return prompt
}
