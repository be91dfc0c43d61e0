package services

import (
	"findflow/internal/models/db_models"
	"findflow/internal/models/response_models"
)

// selection carries everything one selector rule needs to decide.
type selection struct {
	category    *db_models.Category
	preferences PreferenceMap
	confidence  float64
	language    string
	asked       map[string]bool
}

func (s *selection) answered(spec db_models.QuestionSpec) bool {
	_, ok := s.preferences[spec.ID]
	return ok
}

func (s *selection) eligible(spec db_models.QuestionSpec) bool {
	return !s.answered(spec) && !s.asked[spec.ID] && !IsBlocked(spec, s.preferences)
}

func (s *selection) budgetKnown() bool {
	_, ok := s.preferences[BudgetBandKey]
	return ok
}

type selectorRule func(*selection) *response_models.QuestionPrompt

// selectorRules is the fixed priority chain. Order matters: the first rule
// to produce a prompt wins, and a nil result from every rule means the
// dialogue is complete.
var selectorRules = []selectorRule{
	pickConflict,
	pickMandatory,
	pickDependencyTriggered,
	pickHighWeight,
	pickNumeric,
	pickBudget,
}

// NextQuestion evaluates the rule chain and returns the single next prompt,
// or nil when enough information has been gathered.
func NextQuestion(category *db_models.Category, preferences PreferenceMap, confidence float64, language string, asked map[string]bool) *response_models.QuestionPrompt {
	if asked == nil {
		asked = map[string]bool{}
	}
	sel := &selection{
		category:    category,
		preferences: preferences,
		confidence:  confidence,
		language:    language,
		asked:       asked,
	}
	for _, rule := range selectorRules {
		if prompt := rule(sel); prompt != nil {
			return prompt
		}
	}
	return nil
}

// pickConflict is a reserved extension point. It stays in the chain so
// conflict rules can be added without reordering the others.
func pickConflict(*selection) *response_models.QuestionPrompt {
	return nil
}

// pickMandatory asks the first unanswered spec that is mandatory or carries
// weight >= 0.9, provided its dependencies are satisfied.
func pickMandatory(s *selection) *response_models.QuestionPrompt {
	for _, spec := range s.category.Specs {
		if (spec.Weight >= 0.9 || spec.Mandatory) && s.eligible(spec) {
			return FormatQuestion(spec, s.language, ReasonMandatory)
		}
	}
	return nil
}

// pickDependencyTriggered asks the first unanswered dependent spec whose
// prerequisites are all satisfied.
func pickDependencyTriggered(s *selection) *response_models.QuestionPrompt {
	for _, spec := range s.category.Specs {
		if len(spec.DependsOn) == 0 {
			continue
		}
		if s.eligible(spec) {
			return FormatQuestion(spec, s.language, ReasonDependency)
		}
	}
	return nil
}

// pickHighWeight fills in important gaps while confidence is low and no
// budget is set yet. Highest weight wins; schema order breaks ties.
func pickHighWeight(s *selection) *response_models.QuestionPrompt {
	if s.confidence >= 0.7 || s.budgetKnown() {
		return nil
	}

	threshold := 0.6
	if s.budgetKnown() {
		threshold = 0.9
	}

	var best *db_models.QuestionSpec
	for i := range s.category.Specs {
		spec := &s.category.Specs[i]
		if spec.Weight < threshold || !s.eligible(*spec) {
			continue
		}
		if best == nil || spec.Weight > best.Weight {
			best = spec
		}
	}
	if best != nil {
		return FormatQuestion(*best, s.language, ReasonImportance)
	}
	return nil
}

// pickNumeric asks remaining number questions, skipped entirely once a
// budget band is known.
func pickNumeric(s *selection) *response_models.QuestionPrompt {
	if s.budgetKnown() {
		return nil
	}
	for _, spec := range s.category.Specs {
		if spec.Type == db_models.QuestionNumber && s.eligible(spec) {
			return FormatQuestion(spec, s.language, ReasonQuantification)
		}
	}
	return nil
}

func pickBudget(s *selection) *response_models.QuestionPrompt {
	if s.budgetKnown() {
		return nil
	}
	return BudgetQuestion(s.category, s.language)
}
