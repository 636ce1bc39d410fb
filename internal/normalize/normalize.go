// Package normalize holds text normalization used for matching user input
// against listing data.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns s case-folded for caseless comparison.
// Casers are stateful, so a fresh one is used per call.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Contains reports whether substr occurs in s, ignoring case.
func Contains(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
