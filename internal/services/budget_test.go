package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findflow/internal/models/db_models"
)

func TestParseBudgetBand(t *testing.T) {
	cases := []struct {
		band string
		min  *int
		max  *int
	}{
		{"3-7k₺", intPtr(3000), intPtr(7000)},
		{"40k₺+", intPtr(40000), intPtr(80000)},
		{"30k₺", nil, intPtr(30000)},
		{"500-1000", intPtr(500), intPtr(1000)},
		{"15.000-40.000", intPtr(15000), intPtr(40000)},
		{"$100-200", intPtr(100), intPtr(200)},
		{"$1000+", intPtr(1000), intPtr(2000)},
		{"1500", nil, intPtr(1500)},
		{"", nil, nil},
		{"hiçbir fikrim yok", nil, nil},
	}

	for _, tc := range cases {
		min, max := ParseBudgetBand(tc.band)
		assert.Equal(t, tc.min, min, "min of %q", tc.band)
		assert.Equal(t, tc.max, max, "max of %q", tc.band)
	}
}

func intPtr(n int) *int {
	return &n
}

func TestCategoryBudgetBandsLookup(t *testing.T) {
	cat := &db_models.Category{
		Name: "Phone",
		BudgetBands: map[string][]string{
			"tr": {"5-10k₺", "10-20k₺"},
			"en": {"$150-300", "$300-600"},
		},
	}

	assert.Equal(t, []string{"5-10k₺", "10-20k₺"}, CategoryBudgetBands(cat, "tr"))
	assert.Equal(t, []string{"$150-300", "$300-600"}, CategoryBudgetBands(cat, "en"))

	// missing language falls back to the category's English bands
	assert.Equal(t, []string{"$150-300", "$300-600"}, CategoryBudgetBands(cat, "de"))

	// category without stored bands falls back to the fixed defaults
	bare := &db_models.Category{Name: "Widget"}
	assert.Equal(t, []string{"1-3k₺", "3-7k₺", "7-15k₺", "15-30k₺", "30k₺+"}, CategoryBudgetBands(bare, "tr"))
	assert.Equal(t, []string{"$30-100", "$100-200", "$200-500", "$500-1000", "$1000+"}, CategoryBudgetBands(bare, "en"))
}

func TestBudgetQuestionShape(t *testing.T) {
	q := BudgetQuestion(&db_models.Category{Name: "Phone"}, "tr")
	require.NotNil(t, q)
	assert.Equal(t, BudgetBandKey, q.ID)
	assert.Equal(t, "single_choice", q.Type)
	assert.Equal(t, "Bütçe aralığın nedir?", q.Question)
	assert.Equal(t, ReasonBudget, q.Reason)
	assert.NotEmpty(t, q.Options)
}
