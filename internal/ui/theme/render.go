package theme

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexis/internal/difficulty"
	"github.com/abhisek/lexis/internal/evaluate"
)

// minBarWidth is the narrowest progress bar drawn.
const minBarWidth = 4

// CategoryStyle returns the style for an answer grade.
func CategoryStyle(c evaluate.Category) lipgloss.Style {
	switch c {
	case evaluate.CategoryPerfect, evaluate.CategoryExcellent:
		return Correct
	case evaluate.CategoryGood:
		return Correct.Bold(false)
	case evaluate.CategoryFair:
		return Almost
	default:
		return Incorrect
	}
}

// Verdict renders an evaluation result as a single line.
func Verdict(r evaluate.Result) string {
	mark := "✗"
	if r.IsCorrect {
		mark = "✓"
	}
	style := CategoryStyle(r.Category)
	return style.Render(fmt.Sprintf("%s %s %d%%", mark, r.Category, r.Accuracy)) +
		"  " + Hint.Render(r.Feedback)
}

// LevelBadge renders a difficulty level.
func LevelBadge(l difficulty.Level) string {
	return Badge.Render(string(l))
}

// Tokens renders a token alignment with one style per status.
func Tokens(a evaluate.Alignment) string {
	parts := make([]string, 0, len(a.Tokens))
	for _, tok := range a.Tokens {
		switch tok.Status {
		case evaluate.TokenCorrect:
			parts = append(parts, Correct.Render(tok.Actual))
		case evaluate.TokenAlmost:
			parts = append(parts, Almost.Render(tok.Actual)+Hint.Render("("+tok.Expected+")"))
		case evaluate.TokenIncorrect:
			parts = append(parts, Incorrect.Render(tok.Actual)+Hint.Render("("+tok.Expected+")"))
		case evaluate.TokenMissing:
			parts = append(parts, Missing.Render(tok.Expected))
		case evaluate.TokenExtra:
			parts = append(parts, Extra.Render("+"+tok.Actual))
		}
	}
	return strings.Join(parts, " ")
}

// ProgressBar renders a horizontal bar of width cells filled to percent
// (0.0-1.0), followed by the percentage.
func ProgressBar(percent float64, width int) string {
	width = max(minBarWidth, width)
	filled := min(width, max(0, int(float64(width)*percent)))
	empty := width - filled

	return ProgressFilled.Render(strings.Repeat(" ", filled)) +
		ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		Label.Render(fmt.Sprintf("  %d%%", int(percent*100)))
}

// KeyValue renders an aligned "key  value" line. Keys are padded to
// keyWidth cells.
func KeyValue(key, value string, keyWidth int) string {
	pad := max(0, keyWidth-lipgloss.Width(key))
	return Label.Render(key+strings.Repeat(" ", pad)) + "  " + Body.Render(value)
}
