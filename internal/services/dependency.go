package services

import (
	"strings"

	"findflow/internal/models/db_models"
)

// IsBlocked reports whether a spec's prerequisites are unsatisfied. A spec
// with no dependsOn is never blocked. A non-answer (missing, nil, or the
// "no_preference" sentinel) never satisfies a dependency.
func IsBlocked(spec db_models.QuestionSpec, preferences PreferenceMap) bool {
	if len(spec.DependsOn) == 0 {
		return false
	}

	for _, dep := range spec.DependsOn {
		actual, ok := preferences[dep.ID]
		if !ok {
			return true
		}
		if actual == nil || actual == "no_preference" {
			return true
		}
		if !dependencyEqual(dep.Eq, actual) {
			return true
		}
	}
	return false
}

// dependencyEqual compares an expected dependency value with a stored
// preference, coercing boolean-synonym strings when the expectation is a
// bool.
func dependencyEqual(expected, actual any) bool {
	if expectedBool, ok := expected.(bool); ok {
		if s, ok := actual.(string); ok {
			switch strings.ToLower(s) {
			case "true", "yes", "evet":
				return expectedBool == true
			case "false", "no", "hayır":
				return expectedBool == false
			}
		}
		if actualBool, ok := actual.(bool); ok {
			return expectedBool == actualBool
		}
		return false
	}

	// JSON numbers decode as float64; stored numbers are ints
	if expectedNum, ok := expected.(float64); ok {
		if actualInt, ok := actual.(int); ok {
			return expectedNum == float64(actualInt)
		}
	}

	return expected == actual
}
