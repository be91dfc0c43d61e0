package services

import (
	"regexp"
	"strconv"
	"strings"

	"findflow/internal/models/db_models"
	"findflow/internal/models/response_models"
)

var defaultBudgetBands = map[string][]string{
	"tr": {"1-3k₺", "3-7k₺", "7-15k₺", "15-30k₺", "30k₺+"},
	"en": {"$30-100", "$100-200", "$200-500", "$500-1000", "$1000+"},
}

// CategoryBudgetBands returns the category's stored bands for the language,
// falling back to the category's English bands and then the fixed defaults.
func CategoryBudgetBands(category *db_models.Category, language string) []string {
	if category != nil && category.BudgetBands != nil {
		if bands, ok := category.BudgetBands[language]; ok {
			return bands
		}
		if bands, ok := category.BudgetBands["en"]; ok {
			return bands
		}
	}
	if bands, ok := defaultBudgetBands[language]; ok {
		return bands
	}
	return defaultBudgetBands["en"]
}

// BudgetQuestion is the fixed budget prompt, always a single_choice with id
// budget_band.
func BudgetQuestion(category *db_models.Category, language string) *response_models.QuestionPrompt {
	question := "What's your budget range?"
	tooltip := "This helps me recommend products in your price range"
	if language == "tr" {
		question = "Bütçe aralığın nedir?"
		tooltip = "Bu, fiyat aralığınıza uygun ürünler önermeme yardımcı olur"
	}
	return &response_models.QuestionPrompt{
		ID:       BudgetBandKey,
		Type:     string(db_models.QuestionSingleChoice),
		Question: question,
		Emoji:    "💰",
		Options:  CategoryBudgetBands(category, language),
		Reason:   ReasonBudget,
		Tooltip:  tooltip,
	}
}

var (
	kRangePattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)k`)
	kSinglePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)k`)
	rangePattern   = regexp.MustCompile(`([\d.]+)\s*-\s*([\d.]+)`)
	singlePattern  = regexp.MustCompile(`([\d.]+)`)
)

// ParseBudgetBand turns a band label into inclusive numeric bounds. A nil
// bound means unbounded on that side. The "+" forms fix the upper bound at
// exactly double the lower, kept for compatibility with the existing bands.
func ParseBudgetBand(band string) (*int, *int) {
	if band == "" {
		return nil, nil
	}

	lower := strings.ToLower(band)

	if strings.Contains(lower, "k") {
		if m := kRangePattern.FindStringSubmatch(lower); m != nil {
			min := kiloValue(m[1])
			max := kiloValue(m[2])
			return &min, &max
		}
		if m := kSinglePattern.FindStringSubmatch(lower); m != nil {
			base := kiloValue(m[1])
			if strings.Contains(band, "+") {
				upper := base * 2
				return &base, &upper
			}
			return nil, &base
		}
	}

	if m := rangePattern.FindStringSubmatch(band); m != nil {
		min := plainValue(m[1])
		max := plainValue(m[2])
		return &min, &max
	}

	if m := singlePattern.FindStringSubmatch(band); m != nil {
		value := plainValue(m[1])
		if strings.Contains(band, "+") {
			upper := value * 2
			return &value, &upper
		}
		return nil, &value
	}

	return nil, nil
}

func kiloValue(s string) int {
	f, _ := strconv.ParseFloat(s, 64)
	return int(f * 1000)
}

// plainValue strips thousands-separator dots ("15.000" -> 15000) unless the
// dot is a trailing decimal point.
func plainValue(s string) int {
	if strings.Count(s, ".") > 0 && !strings.HasSuffix(s, ".") {
		s = strings.ReplaceAll(s, ".", "")
	}
	f, _ := strconv.ParseFloat(s, 64)
	return int(f)
}
