package vocab

import (
	"strings"
	"time"
)

// Thresholds used by the classifier.
const (
	PassiveMinLevel = 2

	ActiveMinLevel = 4
	ActiveAccuracy = 0.8

	StrugglingMinReviews = 3
	StrugglingAccuracy   = 0.6

	MasteredMinCorrect = 5
	MasteredAccuracy   = 0.8
)

// WordRecord is the performance snapshot of one word for one learner and
// language, as supplied by the vocabulary store.
type WordRecord struct {
	Word            string
	MasteryLevel    int
	ReviewCount     int
	CorrectCount    int
	NextReviewDueAt *time.Time
}

// Key is the case-insensitive identity of the word.
func (r WordRecord) Key() string {
	return strings.ToLower(strings.TrimSpace(r.Word))
}

// Accuracy returns CorrectCount/ReviewCount, capped at 1. Zero reviews is 0.
func (r WordRecord) Accuracy() float64 {
	if r.ReviewCount <= 0 {
		return 0
	}
	return min(1.0, float64(max(0, r.CorrectCount))/float64(r.ReviewCount))
}

// IsPassive reports whether the word is recognised (mastery >= 2).
func (r WordRecord) IsPassive() bool {
	return r.MasteryLevel >= PassiveMinLevel
}

// IsActive reports whether the word can be produced reliably.
func (r WordRecord) IsActive() bool {
	return r.MasteryLevel >= ActiveMinLevel && r.Accuracy() >= ActiveAccuracy
}

// IsStruggling reports whether the word has enough reviews and low accuracy.
func (r WordRecord) IsStruggling() bool {
	return r.ReviewCount >= StrugglingMinReviews && r.Accuracy() < StrugglingAccuracy
}

// IsMastered reports whether the word has been answered correctly often
// enough with high accuracy.
func (r WordRecord) IsMastered() bool {
	return r.CorrectCount >= MasteredMinCorrect && r.Accuracy() >= MasteredAccuracy
}

// IsNew reports whether the learner has never practised the word.
func (r WordRecord) IsNew() bool {
	return r.ReviewCount <= 0 && r.MasteryLevel <= 0
}
