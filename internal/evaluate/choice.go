package evaluate

import (
	"strconv"

	"github.com/abhisek/lexis/internal/textmatch"
)

// EvaluateMultipleChoice checks a multiple-choice answer. Only an exact
// match after normalization is correct; accuracy is 100 or 0.
// A 1-based index into choices is accepted as selecting that choice.
func EvaluateMultipleChoice(answer, correct string, choices []string) Result {
	answer = textmatch.Normalize(answer)
	if answer == "" {
		return newResult(false, 0, 0)
	}

	if idx, err := strconv.Atoi(answer); err == nil && idx >= 1 && idx <= len(choices) {
		answer = textmatch.Normalize(choices[idx-1])
	}

	if answer == textmatch.Normalize(correct) {
		return newResult(true, 100, 1.0)
	}
	return newResult(false, 0, 0)
}
