package analyzer

import (
	"strings"

	"github.com/wahlandcase/autocommit/internal/models"
)

// Classify picks the change type for a set of paths and a diff sample.
// Paths are checked first, in order, and the first path that matches any
// category decides. Only when no path matches is the sample consulted.
// Falls back to Chore.
func Classify(sample string, paths []string) models.ChangeType {
	for _, p := range paths {
		if ct, ok := firstMatch(strings.ToLower(p)); ok {
			return ct
		}
	}

	if ct, ok := firstMatch(strings.ToLower(sample)); ok {
		return ct
	}

	return models.Chore
}

func firstMatch(s string) (models.ChangeType, bool) {
	for _, cat := range changePatterns {
		if cat.matches(s) {
			return cat.changeType, true
		}
	}
	return models.Chore, false
}
