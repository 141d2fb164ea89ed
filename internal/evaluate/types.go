package evaluate

// Mode selects how a free-text answer is scored.
type Mode string

const (
	// ModeWord scores single words and short phrases by character similarity.
	ModeWord Mode = "word"
	// ModeSentence scores translations and free sentences by the better of
	// character similarity and token alignment.
	ModeSentence Mode = "sentence"
	// ModeDictation scores by positional token alignment only.
	ModeDictation Mode = "dictation"
)

// ParseMode maps a mode name to a Mode, defaulting to ModeWord.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeSentence, ModeDictation:
		return Mode(s)
	default:
		return ModeWord
	}
}

// Category is the coarse grade of an answer.
type Category string

const (
	CategoryPerfect   Category = "perfect"
	CategoryExcellent Category = "excellent"
	CategoryGood      Category = "good"
	CategoryFair      Category = "fair"
	CategoryPoor      Category = "poor"
)

// DefaultThreshold is the fraction of accuracy required for a correct answer.
const DefaultThreshold = 0.7

// Result is the outcome of scoring one answer.
type Result struct {
	IsCorrect       bool
	Accuracy        int     // 0-100
	Feedback        string
	SimilarityScore float64 // 0.0-1.0
	Category        Category
}

// CategoryFor grades an accuracy percentage.
func CategoryFor(accuracy int) Category {
	switch {
	case accuracy >= 95:
		return CategoryPerfect
	case accuracy >= 85:
		return CategoryExcellent
	case accuracy >= 70:
		return CategoryGood
	case accuracy >= 50:
		return CategoryFair
	default:
		return CategoryPoor
	}
}

// Feedback returns the fixed learner-facing message for a category.
func (c Category) Feedback() string {
	switch c {
	case CategoryPerfect:
		return "Perfect!"
	case CategoryExcellent:
		return "Excellent, almost exactly right."
	case CategoryGood:
		return "Good job, just a small slip."
	case CategoryFair:
		return "Close, but check your answer."
	default:
		return "Not quite. Review the correct answer."
	}
}

func newResult(correct bool, accuracy int, similarity float64) Result {
	cat := CategoryFor(accuracy)
	return Result{
		IsCorrect:       correct,
		Accuracy:        accuracy,
		Feedback:        cat.Feedback(),
		SimilarityScore: similarity,
		Category:        cat,
	}
}
