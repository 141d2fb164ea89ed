package textmatch

import (
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// Distance returns the Levenshtein distance between a and b, counted in
// runes, with unit cost for insertion, deletion and substitution.
func Distance(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}

// Similarity returns 1 - Distance(a, b) / max(len(a), len(b)), with lengths
// in runes. Two empty strings are identical and score 1.
func Similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(a, b))/float64(maxLen)
}
