package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findflow/internal/models/db_models"
)

func strPtr(s string) *string {
	return &s
}

func boolSpec(id string, weight float64) db_models.QuestionSpec {
	return db_models.QuestionSpec{ID: id, Type: db_models.QuestionBoolean, Weight: weight}
}

func choiceSpec(id string, weight float64, options ...db_models.QuestionOption) db_models.QuestionSpec {
	return db_models.QuestionSpec{
		ID: id, Type: db_models.QuestionSingleChoice, Weight: weight,
		Choice: &db_models.SingleChoiceSpec{Options: options},
	}
}

func numberSpec(id string, weight float64, min, max int) db_models.QuestionSpec {
	return db_models.QuestionSpec{
		ID: id, Type: db_models.QuestionNumber, Weight: weight,
		Number: &db_models.NumberSpec{Min: min, Max: max},
	}
}

func TestInterpretAnswersBooleanSynonyms(t *testing.T) {
	specs := []db_models.QuestionSpec{boolSpec("a", 1.0)}

	cases := []struct {
		answer string
		want   any
	}{
		{"Evet", true},
		{"yes", true},
		{"TRUE", true},
		{"Hayır", false},
		{"no", false},
		{"false", false},
		{"Farketmez", nil},
		{"i don't know", nil},
		{"complete gibberish", nil},
	}

	for _, tc := range cases {
		prefs := InterpretAnswers([]*string{strPtr(tc.answer)}, specs)
		require.Contains(t, prefs, "a", "answer %q must count as answered", tc.answer)
		assert.Equal(t, tc.want, prefs["a"], "answer %q", tc.answer)
	}
}

func TestInterpretAnswersSingleChoice(t *testing.T) {
	specs := []db_models.QuestionSpec{choiceSpec("os", 1.0,
		db_models.QuestionOption{ID: "ios", Label: db_models.LocalizedText{"en": "iOS", "tr": "iOS"}},
		db_models.QuestionOption{ID: "android", Label: db_models.LocalizedText{"en": "Android", "tr": "Android"}},
	)}

	prefs := InterpretAnswers([]*string{strPtr("Android")}, specs)
	assert.Equal(t, "android", prefs["os"])

	// no-preference answers without a matching option id store nil
	prefs = InterpretAnswers([]*string{strPtr("Bilmiyorum")}, specs)
	require.Contains(t, prefs, "os")
	assert.Nil(t, prefs["os"])

	// unmatched free text leaves the key unset
	prefs = InterpretAnswers([]*string{strPtr("windows phone")}, specs)
	assert.NotContains(t, prefs, "os")
}

func TestInterpretAnswersChoiceNoPreferenceOption(t *testing.T) {
	specs := []db_models.QuestionSpec{choiceSpec("os", 1.0,
		db_models.QuestionOption{ID: "ios", Label: db_models.LocalizedText{"en": "iOS"}},
		db_models.QuestionOption{ID: "no_preference", Label: db_models.LocalizedText{"en": "No preference", "tr": "Farketmez"}},
	)}

	prefs := InterpretAnswers([]*string{strPtr("fark etmez")}, specs)
	assert.Equal(t, "no_preference", prefs["os"])
}

func TestInterpretAnswersNumber(t *testing.T) {
	specs := []db_models.QuestionSpec{numberSpec("size", 1.0, 32, 85)}

	prefs := InterpretAnswers([]*string{strPtr("55")}, specs)
	assert.Equal(t, 55, prefs["size"])

	prefs = InterpretAnswers([]*string{strPtr("fifty five")}, specs)
	require.Contains(t, prefs, "size")
	assert.Nil(t, prefs["size"])
}

func TestInterpretAnswersSkipsNilAndOverflow(t *testing.T) {
	specs := []db_models.QuestionSpec{boolSpec("a", 1.0)}

	prefs := InterpretAnswers([]*string{nil, strPtr("yes")}, specs)
	assert.Empty(t, prefs)
}

func TestInterpretAnswersBudgetOverride(t *testing.T) {
	specs := []db_models.QuestionSpec{boolSpec("a", 1.0), boolSpec("b", 1.0)}

	// a currency answer in an ordinary slot becomes budget_band and the
	// displaced spec value is reset to nil
	prefs := InterpretAnswers([]*string{strPtr("yes"), strPtr("3-7k₺")}, specs)
	assert.Equal(t, true, prefs["a"])
	assert.Equal(t, "3-7k₺", prefs[BudgetBandKey])
	require.Contains(t, prefs, "b")
	assert.Nil(t, prefs["b"])

	prefs = InterpretAnswers([]*string{strPtr("$100-200")}, specs)
	assert.Equal(t, "$100-200", prefs[BudgetBandKey])
}

func TestInterpretAnswersIdempotent(t *testing.T) {
	specs := []db_models.QuestionSpec{
		boolSpec("a", 1.0),
		choiceSpec("b", 0.5, db_models.QuestionOption{ID: "x", Label: db_models.LocalizedText{"en": "X"}}),
		numberSpec("c", 0.4, 0, 100),
	}
	answers := []*string{strPtr("yes"), strPtr("X"), strPtr("42")}

	first := InterpretAnswers(answers, specs)
	second := InterpretAnswers(answers, specs)
	assert.Equal(t, first, second)
}
