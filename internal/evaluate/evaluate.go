package evaluate

import (
	"math"

	"github.com/samber/lo"

	"github.com/abhisek/lexis/internal/textmatch"
)

// Evaluator scores free-text answers against one or more accepted answers.
type Evaluator struct {
	threshold float64
}

// NewEvaluator creates an Evaluator with the given default threshold.
// A threshold outside (0, 1] falls back to DefaultThreshold.
func NewEvaluator(threshold float64) *Evaluator {
	return &Evaluator{threshold: sanitizeThreshold(threshold)}
}

// Threshold returns the evaluator's default threshold.
func (e *Evaluator) Threshold() float64 {
	return e.threshold
}

// Evaluate scores an answer using the evaluator's default threshold.
func (e *Evaluator) Evaluate(userAnswer string, correctAnswers []string, mode Mode) Result {
	return Evaluate(userAnswer, correctAnswers, mode, e.threshold)
}

// Evaluate scores userAnswer against every accepted answer and keeps the
// best. An exact match after normalization always wins with accuracy 100.
// The answer is correct when accuracy reaches threshold*100.
func Evaluate(userAnswer string, correctAnswers []string, mode Mode, threshold float64) Result {
	threshold = sanitizeThreshold(threshold)

	user := textmatch.Normalize(userAnswer)
	if user == "" {
		return newResult(false, 0, 0)
	}

	candidates := lo.Filter(
		lo.Map(correctAnswers, func(s string, _ int) string { return textmatch.Normalize(s) }),
		func(s string, _ int) bool { return s != "" },
	)

	if lo.Contains(candidates, user) {
		return newResult(true, 100, 1.0)
	}

	bestAccuracy, bestSimilarity := 0, 0.0
	for _, candidate := range candidates {
		sim := textmatch.Similarity(user, candidate)
		acc := candidateAccuracy(user, candidate, sim, mode)
		if acc > bestAccuracy || (acc == bestAccuracy && sim > bestSimilarity) {
			bestAccuracy, bestSimilarity = acc, sim
		}
	}

	return newResult(float64(bestAccuracy) >= threshold*100, bestAccuracy, bestSimilarity)
}

func candidateAccuracy(user, candidate string, sim float64, mode Mode) int {
	charAccuracy := int(math.Round(sim * 100))
	switch mode {
	case ModeDictation:
		return AlignTokens(candidate, user).Accuracy
	case ModeSentence:
		return max(charAccuracy, AlignTokens(candidate, user).Accuracy)
	default:
		return charAccuracy
	}
}

func sanitizeThreshold(t float64) float64 {
	if t <= 0 || t > 1 || math.IsNaN(t) {
		return DefaultThreshold
	}
	return t
}
