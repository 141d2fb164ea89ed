package vocab

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/lexis/internal/mastery"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func TestClassify_Empty(t *testing.T) {
	assert.Equal(t, Classification{}, Classify(nil))
}

func TestClassify(t *testing.T) {
	records := []WordRecord{
		{Word: "casa", MasteryLevel: 6, ReviewCount: 10, CorrectCount: 9}, // mastered, active, passive
		{Word: "perro", MasteryLevel: 4, ReviewCount: 5, CorrectCount: 4}, // active, passive
		{Word: "gato", MasteryLevel: 1, ReviewCount: 5, CorrectCount: 2},  // struggling
		{Word: "libro", MasteryLevel: 2, ReviewCount: 2, CorrectCount: 0}, // passive, too few reviews to struggle
		{Word: "mesa", MasteryLevel: 0},                                   // new
		{Word: "sol", MasteryLevel: 5, ReviewCount: 6, CorrectCount: 5},   // mastered, active, passive
		{Word: "agua", MasteryLevel: 3, ReviewCount: 10, CorrectCount: 6}, // passive, not struggling at exactly 0.6
	}

	got := Classify(records)
	assert.Equal(t, 7, got.TotalWords)
	assert.Equal(t, 5, got.PassiveVocabulary)
	assert.Equal(t, 3, got.ActiveVocabulary)
	assert.Equal(t, 1, got.StrugglingWords)
	assert.Equal(t, 2, got.MasteredWords)
	assert.Equal(t, Distribution{Beginner: 2, Intermediate: 2, Advanced: 2, Mastered: 1}, got.Distribution)
	assert.Equal(t, got.TotalWords, got.Distribution.Total())
	assert.Equal(t, 1, got.Distribution.Count(mastery.BucketMastered))
}

func TestClassify_StrugglingProperty(t *testing.T) {
	for reviews := 3; reviews <= 12; reviews++ {
		for correct := 0; correct <= reviews; correct++ {
			r := WordRecord{Word: "w", ReviewCount: reviews, CorrectCount: correct}
			c := Classify([]WordRecord{r})
			want := float64(correct)/float64(reviews) < 0.6
			assert.Equal(t, want, c.StrugglingWords == 1, "reviews=%d correct=%d", reviews, correct)
		}
	}
}

func TestClassify_MasteredCountsAsActiveProperty(t *testing.T) {
	for reviews := 5; reviews <= 12; reviews++ {
		for correct := 5; correct <= reviews; correct++ {
			if float64(correct)/float64(reviews) < 0.8 {
				continue
			}
			// Mastered words have climbed at least to level 4 by the time
			// they have five correct answers.
			r := WordRecord{Word: "w", MasteryLevel: 4, ReviewCount: reviews, CorrectCount: correct}
			c := Classify([]WordRecord{r})
			assert.Equal(t, 1, c.MasteredWords, "reviews=%d correct=%d", reviews, correct)
			assert.Equal(t, 1, c.ActiveVocabulary, "reviews=%d correct=%d", reviews, correct)
		}
	}
}

func TestWordRecord_AccuracyClamped(t *testing.T) {
	r := WordRecord{ReviewCount: 2, CorrectCount: 5}
	assert.Equal(t, 1.0, r.Accuracy())
	assert.Equal(t, 0.0, WordRecord{}.Accuracy())
}

func TestStrugglingWords_Order(t *testing.T) {
	v := New([]WordRecord{
		{Word: "b", ReviewCount: 4, CorrectCount: 2},  // 0.5
		{Word: "a", ReviewCount: 10, CorrectCount: 1}, // 0.1
		{Word: "c", ReviewCount: 8, CorrectCount: 4},  // 0.5, more reviews
		{Word: "ok", ReviewCount: 10, CorrectCount: 9},
	})
	assert.Equal(t, []string{"a", "c", "b"}, v.StrugglingWords(0))
	assert.Equal(t, []string{"a", "c"}, v.StrugglingWords(2))
}

func TestDueForReview(t *testing.T) {
	v := New([]WordRecord{
		{Word: "later", NextReviewDueAt: at(time.Hour), ReviewCount: 1, MasteryLevel: 1},
		{Word: "yesterday", NextReviewDueAt: at(-24 * time.Hour), ReviewCount: 1, MasteryLevel: 1},
		{Word: "now", NextReviewDueAt: at(0), ReviewCount: 1, MasteryLevel: 1},
		{Word: "lastweek", NextReviewDueAt: at(-7 * 24 * time.Hour), ReviewCount: 1, MasteryLevel: 1},
		{Word: "never", ReviewCount: 1, MasteryLevel: 1},
	})
	assert.Equal(t, []string{"lastweek", "yesterday", "now"}, v.DueForReview(now, 0))
	assert.Equal(t, []string{"lastweek"}, v.DueForReview(now, 1))
}

func TestMasteredAndKnownWords(t *testing.T) {
	v := New([]WordRecord{
		{Word: "Casa", MasteryLevel: 6, ReviewCount: 6, CorrectCount: 6},
		{Word: "perro", MasteryLevel: 1, ReviewCount: 1, CorrectCount: 1},
		{Word: "nuevo"},
	})
	assert.Equal(t, []string{"Casa"}, v.MasteredWords())
	assert.Equal(t, map[string]bool{"casa": true, "perro": true}, v.KnownWords())
	assert.Equal(t, 3, v.Len())
}

func TestCategorize(t *testing.T) {
	v := New([]WordRecord{
		{Word: "nuevo"},
		{Word: "difícil", MasteryLevel: 0, ReviewCount: 5, CorrectCount: 1, NextReviewDueAt: at(-time.Hour)},
		{Word: "repaso", MasteryLevel: 2, ReviewCount: 3, CorrectCount: 3, NextReviewDueAt: at(-time.Hour)},
		{Word: "sabido", MasteryLevel: 6, ReviewCount: 6, CorrectCount: 6, NextReviewDueAt: at(48 * time.Hour)},
		{Word: "medio", MasteryLevel: 2, ReviewCount: 2, CorrectCount: 2, NextReviewDueAt: at(48 * time.Hour)},
	})
	assert.Equal(t, map[string]Category{
		"nuevo":   CategoryNew,
		"difícil": CategoryStruggling,
		"repaso":  CategoryReviewDue,
		"sabido":  CategoryMastered,
		"medio":   CategoryLearning,
	}, v.Categorize(now))
}

func TestNew_CopiesInput(t *testing.T) {
	records := []WordRecord{{Word: "casa"}}
	v := New(records)
	records[0].Word = "changed"
	assert.Equal(t, "casa", v.Records()[0].Word)
}
