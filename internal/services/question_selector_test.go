package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findflow/internal/models/db_models"
)

func category(name string, specs ...db_models.QuestionSpec) *db_models.Category {
	return &db_models.Category{Name: name, Specs: specs}
}

func TestSelectorMandatoryBeforeDependency(t *testing.T) {
	trigger := boolSpec("trigger", 0.5)
	dependent := boolSpec("dependent", 0.5)
	dependent.DependsOn = []db_models.Dependency{{ID: "trigger", Eq: true}}
	mandatory := boolSpec("must_have", 0.5)
	mandatory.Mandatory = true

	cat := category("Test", trigger, dependent, mandatory)
	prefs := PreferenceMap{"trigger": true}

	// both the mandatory spec and the dependency-triggered spec are
	// eligible; the mandatory rule must win
	q := NextQuestion(cat, prefs, 0.3, "en", map[string]bool{"trigger": true})
	require.NotNil(t, q)
	assert.Equal(t, "must_have", q.ID)
	assert.Equal(t, ReasonMandatory, q.Reason)
}

func TestSelectorDependencyGating(t *testing.T) {
	trigger := boolSpec("a", 0.5)
	dependent := boolSpec("b", 0.5)
	dependent.DependsOn = []db_models.Dependency{{ID: "a", Eq: true}}
	cat := category("Test", trigger, dependent)

	for name, prefs := range map[string]PreferenceMap{
		"absent": {},
		"nil":    {"a": nil},
		"false":  {"a": false},
	} {
		q := NextQuestion(cat, prefs, 0.0, "en", nil)
		if q != nil {
			assert.NotEqual(t, "b", q.ID, "case %s must not ask the gated spec", name)
		}
	}

	// once the trigger is answered true, the dependent spec is next
	q := NextQuestion(cat, PreferenceMap{"a": true}, 0.5, "en", map[string]bool{"a": true})
	require.NotNil(t, q)
	assert.Equal(t, "b", q.ID)
	assert.Equal(t, ReasonDependency, q.Reason)
}

func TestSelectorDependencyBooleanCoercion(t *testing.T) {
	trigger := boolSpec("a", 0.5)
	dependent := boolSpec("b", 0.5)
	dependent.DependsOn = []db_models.Dependency{{ID: "a", Eq: true}}
	cat := category("Test", trigger, dependent)

	// a string synonym stored for a boolean dependency still satisfies it
	q := NextQuestion(cat, PreferenceMap{"a": "evet"}, 0.5, "en", map[string]bool{"a": true})
	require.NotNil(t, q)
	assert.Equal(t, "b", q.ID)
}

func TestSelectorHighWeightPicksHeaviest(t *testing.T) {
	light := boolSpec("light", 0.3)
	mid := boolSpec("mid", 0.65)
	heavy := boolSpec("heavy", 0.8)
	cat := category("Test", light, mid, heavy)

	q := NextQuestion(cat, PreferenceMap{}, 0.2, "en", nil)
	require.NotNil(t, q)
	assert.Equal(t, "heavy", q.ID)
	assert.Equal(t, ReasonImportance, q.Reason)
}

func TestSelectorHighWeightSkippedOnceBudgetKnown(t *testing.T) {
	heavy := boolSpec("heavy", 0.8)
	cat := category("Test", heavy)
	prefs := PreferenceMap{BudgetBandKey: "3-7k₺"}

	// budget present: high-weight and numeric rules are skipped, and with
	// budget set the selector is done
	q := NextQuestion(cat, prefs, 0.2, "en", nil)
	assert.Nil(t, q)
}

func TestSelectorNumericThenBudget(t *testing.T) {
	count := numberSpec("room_size", 0.4, 10, 100)
	cat := category("Test", count)

	q := NextQuestion(cat, PreferenceMap{}, 0.9, "en", nil)
	require.NotNil(t, q)
	assert.Equal(t, "room_size", q.ID)
	assert.Equal(t, ReasonQuantification, q.Reason)
	require.NotNil(t, q.Min)
	require.NotNil(t, q.Max)
	assert.Equal(t, "Enter a number between 10 and 100", q.Placeholder)

	q = NextQuestion(cat, PreferenceMap{"room_size": 25}, 1.0, "en", map[string]bool{"room_size": true})
	require.NotNil(t, q)
	assert.Equal(t, BudgetBandKey, q.ID)
	assert.Equal(t, ReasonBudget, q.Reason)
}

func TestSelectorTermination(t *testing.T) {
	a := boolSpec("a", 1.0)
	a.Mandatory = true
	b := numberSpec("b", 0.5, 0, 100)
	cat := category("Test", a, b)

	prefs := PreferenceMap{"a": true, "b": 42, BudgetBandKey: "3-7k₺"}
	q := NextQuestion(cat, prefs, 1.0, "en", map[string]bool{"a": true, "b": true})
	assert.Nil(t, q)
}

func TestSelectorEndToEndScenario(t *testing.T) {
	a := boolSpec("a", 1.0)
	a.Mandatory = true
	a.Label = db_models.LocalizedText{"en": "Is it important?"}
	b := choiceSpec("b", 0.5, db_models.QuestionOption{ID: "x", Label: db_models.LocalizedText{"en": "X"}})
	b.Label = db_models.LocalizedText{"en": "Which one?"}
	cat := category("Test", a, b)

	// first turn: nothing answered, the mandatory spec is asked
	prefs := InterpretAnswers(nil, cat.Specs)
	q := NextQuestion(cat, prefs, ConfidenceScore(prefs, cat.Specs), "en", askedSpecs(cat.Specs, 1))
	require.NotNil(t, q)
	assert.Equal(t, "a", q.ID)

	// second turn: a answered yes; confidence 1.0/1.5 is below 0.7 but b's
	// weight 0.5 is under the 0.6 threshold, so the budget question comes
	prefs = InterpretAnswers([]*string{strPtr("Yes")}, cat.Specs)
	assert.Equal(t, true, prefs["a"])
	confidence := ConfidenceScore(prefs, cat.Specs)
	assert.InDelta(t, 0.667, confidence, 0.001)

	q = NextQuestion(cat, prefs, confidence, "en", askedSpecs(cat.Specs, 2))
	require.NotNil(t, q)
	assert.Equal(t, BudgetBandKey, q.ID)
}

func TestFormatQuestionBooleanOptions(t *testing.T) {
	spec := boolSpec("a", 1.0)
	spec.Label = db_models.LocalizedText{"en": "Important?", "tr": "Önemli mi?"}

	q := FormatQuestion(spec, "en", ReasonMandatory)
	assert.Equal(t, []string{"Yes", "No", "No preference"}, q.Options)
	assert.Equal(t, "This is essential for good recommendations", q.Tooltip)

	q = FormatQuestion(spec, "tr", ReasonMandatory)
	assert.Equal(t, []string{"Evet", "Hayır", "Farketmez"}, q.Options)
	assert.Equal(t, "Önemli mi?", q.Question)
}

func TestFormatQuestionAppendsNotSure(t *testing.T) {
	spec := choiceSpec("os", 1.0,
		db_models.QuestionOption{ID: "ios", Label: db_models.LocalizedText{"en": "iOS", "tr": "iOS"}},
	)
	spec.Label = db_models.LocalizedText{"en": "Which OS?"}

	q := FormatQuestion(spec, "en", ReasonImportance)
	assert.Equal(t, []string{"iOS", "Not sure"}, q.Options)

	q = FormatQuestion(spec, "tr", ReasonImportance)
	assert.Equal(t, []string{"iOS", "Bilmiyorum"}, q.Options)
}

func TestFormatQuestionSpecTooltipWins(t *testing.T) {
	spec := boolSpec("a", 1.0)
	spec.Tooltip = db_models.LocalizedText{"en": "Custom hint"}

	q := FormatQuestion(spec, "en", ReasonMandatory)
	assert.Equal(t, "Custom hint", q.Tooltip)
}
