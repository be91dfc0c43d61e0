package services

import (
	"math"

	"findflow/internal/models/db_models"
)

// ConfidenceScore is the weighted fraction of specs present in the
// preference map. A nil value still counts as answered.
func ConfidenceScore(preferences PreferenceMap, specs []db_models.QuestionSpec) float64 {
	totalWeight := 0.0
	answeredWeight := 0.0
	for _, spec := range specs {
		totalWeight += spec.Weight
		if _, ok := preferences[spec.ID]; ok {
			answeredWeight += spec.Weight
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return answeredWeight / totalWeight
}

// ProgressPercent is the unweighted answered fraction, rounded to a whole
// percent.
func ProgressPercent(preferences PreferenceMap, specs []db_models.QuestionSpec) int {
	if len(specs) == 0 {
		return 0
	}
	answered := 0
	for _, spec := range specs {
		if _, ok := preferences[spec.ID]; ok {
			answered++
		}
	}
	return int(math.Round(100 * float64(answered) / float64(len(specs))))
}
