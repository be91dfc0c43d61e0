package services

import (
	"strconv"
	"strings"

	"findflow/internal/models/db_models"
)

// BudgetBandKey is the reserved preference key for the budget answer.
const BudgetBandKey = "budget_band"

// PreferenceMap maps spec id to an interpreted answer value. A key present
// with a nil value means the user answered but expressed no preference; a
// missing key means the question was never answered.
type PreferenceMap map[string]any

// Synonym sets shared by the interpreter and the dependency resolver. They
// cover both supported languages so the same tables serve en and tr answers.
var (
	affirmativeAnswers = map[string]bool{
		"yes": true, "evet": true, "true": true, "evet önemli": true, "önemli": true,
	}
	negativeAnswers = map[string]bool{
		"no": true, "hayır": true, "false": true, "önemli değil": true, "değil": true,
	}
	noPreferenceAnswers = map[string]bool{
		"no preference": true, "fark etmez": true, "bilmiyorum": true,
		"farketmez": true, "i don't know": true, "unknown": true,
	}
	unknownChoiceAnswers = map[string]bool{
		"bilmiyorum": true, "i don't know": true, "unknown": true, "dont know": true,
	}
	noPreferenceChoiceAnswers = map[string]bool{
		"fark etmez": true, "farketmez": true, "no preference": true, "doesnt matter": true,
	}
)

// InterpretAnswers rebuilds the preference map from the full answer history.
// answers[i] is positionally aligned with specs[i]; nil entries are skipped.
// Pure function, rerun from scratch on every turn.
func InterpretAnswers(answers []*string, specs []db_models.QuestionSpec) PreferenceMap {
	preferences := make(PreferenceMap)

	for i, answer := range answers {
		if answer == nil || i >= len(specs) {
			continue
		}
		spec := specs[i]

		switch spec.Type {
		case db_models.QuestionBoolean:
			normalized := strings.ToLower(strings.TrimSpace(*answer))
			switch {
			case affirmativeAnswers[normalized]:
				preferences[spec.ID] = true
			case negativeAnswers[normalized]:
				preferences[spec.ID] = false
			default:
				// no-preference synonyms and anything unrecognized both
				// count as answered-but-unknown
				preferences[spec.ID] = nil
			}

		case db_models.QuestionSingleChoice:
			interpretChoice(preferences, spec, *answer)

		case db_models.QuestionNumber:
			if n, err := strconv.Atoi(strings.TrimSpace(*answer)); err == nil {
				preferences[spec.ID] = n
			} else {
				preferences[spec.ID] = nil
			}
		}
	}

	// Budget override: an answer carrying a currency symbol is a budget band
	// regardless of which slot the client put it in.
	for i, answer := range answers {
		if answer == nil {
			continue
		}
		if strings.ContainsRune(*answer, '$') || strings.ContainsRune(*answer, '₺') {
			preferences[BudgetBandKey] = *answer
			if i < len(specs) {
				specID := specs[i].ID
				if _, ok := preferences[specID]; ok && specID != BudgetBandKey {
					preferences[specID] = nil
				}
			}
		}
	}

	return preferences
}

func interpretChoice(preferences PreferenceMap, spec db_models.QuestionSpec, answer string) {
	if spec.Choice == nil {
		return
	}

	for _, opt := range spec.Choice.Options {
		if opt.Label["en"] == answer || opt.Label["tr"] == answer {
			preferences[spec.ID] = opt.ID
			return
		}
	}

	normalized := strings.ToLower(strings.TrimSpace(answer))
	if unknownChoiceAnswers[normalized] {
		for _, opt := range spec.Choice.Options {
			if opt.ID == "unknown" || opt.ID == "no_preference" {
				preferences[spec.ID] = opt.ID
				return
			}
		}
		preferences[spec.ID] = nil
		return
	}
	if noPreferenceChoiceAnswers[normalized] {
		for _, opt := range spec.Choice.Options {
			if opt.ID == "no_preference" {
				preferences[spec.ID] = opt.ID
				return
			}
		}
		preferences[spec.ID] = nil
		return
	}
	// unmatched free text is left unset
}
