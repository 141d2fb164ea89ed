package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_ExactMatch(t *testing.T) {
	got := Evaluate("Ball", []string{"Ball"}, ModeWord, DefaultThreshold)
	assert.True(t, got.IsCorrect)
	assert.Equal(t, 100, got.Accuracy)
	assert.Equal(t, CategoryPerfect, got.Category)
	assert.Equal(t, 1.0, got.SimilarityScore)
}

func TestEvaluate_CaseInsensitiveExactMatch(t *testing.T) {
	got := Evaluate("ball", []string{"Ball"}, ModeWord, DefaultThreshold)
	assert.True(t, got.IsCorrect)
	assert.Equal(t, 100, got.Accuracy)
}

func TestEvaluate_TypographicQuotesMatch(t *testing.T) {
	got := Evaluate("l’homme", []string{"l'homme"}, ModeWord, DefaultThreshold)
	assert.Equal(t, CategoryPerfect, got.Category)
}

func TestEvaluate_EmptyAnswer(t *testing.T) {
	for _, answer := range []string{"", "   ", "\t\n"} {
		got := Evaluate(answer, []string{"Ball"}, ModeWord, DefaultThreshold)
		assert.False(t, got.IsCorrect, "answer %q", answer)
		assert.Equal(t, 0, got.Accuracy, "answer %q", answer)
		assert.Equal(t, CategoryPoor, got.Category, "answer %q", answer)
	}
}

func TestEvaluate_LowSimilarity(t *testing.T) {
	got := Evaluate("House", []string{"Ball"}, ModeWord, DefaultThreshold)
	assert.False(t, got.IsCorrect)
	assert.Equal(t, CategoryPoor, got.Category)
}

func TestEvaluate_CloseEnough(t *testing.T) {
	got := Evaluate("gatos", []string{"gato"}, ModeWord, DefaultThreshold)
	assert.True(t, got.IsCorrect)
	assert.Equal(t, 80, got.Accuracy)
	assert.Equal(t, CategoryGood, got.Category)
	assert.InDelta(t, 0.8, got.SimilarityScore, 1e-9)
}

func TestEvaluate_ThresholdRespected(t *testing.T) {
	got := Evaluate("gatos", []string{"gato"}, ModeWord, 0.9)
	assert.False(t, got.IsCorrect)
	assert.Equal(t, 80, got.Accuracy)
}

func TestEvaluate_InvalidThresholdUsesDefault(t *testing.T) {
	got := Evaluate("gatos", []string{"gato"}, ModeWord, 0)
	assert.True(t, got.IsCorrect)
	got = Evaluate("gatos", []string{"gato"}, ModeWord, 1.5)
	assert.True(t, got.IsCorrect)
}

func TestEvaluate_MultipleCandidates(t *testing.T) {
	got := Evaluate("colour", []string{"color", "colour"}, ModeWord, DefaultThreshold)
	assert.Equal(t, 100, got.Accuracy)
	assert.Equal(t, CategoryPerfect, got.Category)

	// Best candidate wins even when listed last.
	got = Evaluate("perros", []string{"gato", "perro"}, ModeWord, DefaultThreshold)
	assert.True(t, got.IsCorrect)
	assert.Equal(t, 83, got.Accuracy)
}

func TestEvaluate_NoCandidates(t *testing.T) {
	got := Evaluate("perro", nil, ModeWord, DefaultThreshold)
	assert.False(t, got.IsCorrect)
	assert.Equal(t, CategoryPoor, got.Category)
}

func TestEvaluate_DictationUsesTokenAlignment(t *testing.T) {
	got := Evaluate("the cat sit", []string{"The cat sat."}, ModeDictation, DefaultThreshold)
	assert.Equal(t, 83, got.Accuracy)
	assert.Equal(t, CategoryExcellent, got.Category)
	assert.True(t, got.IsCorrect)
}

func TestEvaluate_SentenceTakesBetterScore(t *testing.T) {
	got := Evaluate("the cat sit", []string{"the cat sat"}, ModeSentence, DefaultThreshold)
	// Character similarity 1 - 1/11 beats the token score of 83.
	assert.Equal(t, 91, got.Accuracy)
	assert.Equal(t, CategoryExcellent, got.Category)
}

func TestEvaluate_DictationIgnoresPunctuation(t *testing.T) {
	got := Evaluate("hola como estas", []string{"¡Hola! ¿Cómo estás?"}, ModeDictation, DefaultThreshold)
	// "como"/"cómo" and "estas"/"estás" differ by one rune each.
	assert.Equal(t, 67, got.Accuracy)
	assert.Equal(t, CategoryFair, got.Category)
	assert.False(t, got.IsCorrect)
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		accuracy int
		want     Category
	}{
		{100, CategoryPerfect},
		{95, CategoryPerfect},
		{94, CategoryExcellent},
		{85, CategoryExcellent},
		{84, CategoryGood},
		{70, CategoryGood},
		{69, CategoryFair},
		{50, CategoryFair},
		{49, CategoryPoor},
		{0, CategoryPoor},
	}
	for _, tc := range tests {
		if got := CategoryFor(tc.accuracy); got != tc.want {
			t.Errorf("CategoryFor(%d) = %q, want %q", tc.accuracy, got, tc.want)
		}
	}
}

func TestFeedbackIsFixedPerCategory(t *testing.T) {
	a := Evaluate("gatos", []string{"gato"}, ModeWord, DefaultThreshold)
	b := Evaluate("perrr", []string{"perro"}, ModeWord, DefaultThreshold)
	assert.Equal(t, a.Category, b.Category)
	assert.Equal(t, a.Feedback, b.Feedback)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeSentence, ParseMode("sentence"))
	assert.Equal(t, ModeDictation, ParseMode("dictation"))
	assert.Equal(t, ModeWord, ParseMode("word"))
	assert.Equal(t, ModeWord, ParseMode("bogus"))
}

func TestNewEvaluator(t *testing.T) {
	e := NewEvaluator(0)
	assert.Equal(t, DefaultThreshold, e.Threshold())

	e = NewEvaluator(0.9)
	got := e.Evaluate("gatos", []string{"gato"}, ModeWord)
	assert.False(t, got.IsCorrect)
}
