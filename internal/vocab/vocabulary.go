package vocab

import (
	"cmp"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/abhisek/lexis/internal/spacedrep"
)

// Category is a word's state at a point in time.
type Category string

const (
	CategoryNew        Category = "new"
	CategoryStruggling Category = "struggling"
	CategoryReviewDue  Category = "review-due"
	CategoryMastered   Category = "mastered"
	CategoryLearning   Category = "learning"
)

// Vocabulary answers the narrower queries the word selector needs over
// a snapshot of records. It never modifies the records.
type Vocabulary struct {
	records []WordRecord
}

// New wraps a snapshot. The slice is copied.
func New(records []WordRecord) *Vocabulary {
	return &Vocabulary{records: slices.Clone(records)}
}

// Len returns the number of records.
func (v *Vocabulary) Len() int {
	return len(v.records)
}

// Records returns a copy of the snapshot.
func (v *Vocabulary) Records() []WordRecord {
	return slices.Clone(v.records)
}

// Classify classifies the whole snapshot.
func (v *Vocabulary) Classify() Classification {
	return Classify(v.records)
}

// StrugglingWords returns struggling words, lowest accuracy first, then
// most reviewed. A limit <= 0 returns all of them.
func (v *Vocabulary) StrugglingWords(limit int) []string {
	struggling := lo.Filter(v.records, func(r WordRecord, _ int) bool {
		return r.IsStruggling()
	})
	slices.SortStableFunc(struggling, func(a, b WordRecord) int {
		if c := cmp.Compare(a.Accuracy(), b.Accuracy()); c != 0 {
			return c
		}
		if c := cmp.Compare(b.ReviewCount, a.ReviewCount); c != 0 {
			return c
		}
		return cmp.Compare(a.Key(), b.Key())
	})
	return words(truncate(struggling, limit))
}

// DueForReview returns words whose review date is at or before now, the
// longest overdue first. A limit <= 0 returns all of them.
func (v *Vocabulary) DueForReview(now time.Time, limit int) []string {
	due := lo.Filter(v.records, func(r WordRecord, _ int) bool {
		return spacedrep.IsDue(r.NextReviewDueAt, now)
	})
	slices.SortStableFunc(due, func(a, b WordRecord) int {
		if c := a.NextReviewDueAt.Compare(*b.NextReviewDueAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Key(), b.Key())
	})
	return words(truncate(due, limit))
}

// MasteredWords returns every mastered word in snapshot order.
func (v *Vocabulary) MasteredWords() []string {
	return words(lo.Filter(v.records, func(r WordRecord, _ int) bool {
		return r.IsMastered()
	}))
}

// KnownWords returns the lower-cased set of words the learner has met.
func (v *Vocabulary) KnownWords() map[string]bool {
	known := make(map[string]bool, len(v.records))
	for _, r := range v.records {
		if !r.IsNew() {
			known[r.Key()] = true
		}
	}
	return known
}

// Categorize assigns each word a single category at now. Struggling wins
// over review-due, which wins over mastered.
func (v *Vocabulary) Categorize(now time.Time) map[string]Category {
	out := make(map[string]Category, len(v.records))
	for _, r := range v.records {
		out[r.Word] = CategoryOf(r, now)
	}
	return out
}

// CategoryOf returns the category of a single record at now.
func CategoryOf(r WordRecord, now time.Time) Category {
	switch {
	case r.IsNew():
		return CategoryNew
	case r.IsStruggling():
		return CategoryStruggling
	case spacedrep.IsDue(r.NextReviewDueAt, now):
		return CategoryReviewDue
	case r.IsMastered():
		return CategoryMastered
	default:
		return CategoryLearning
	}
}

func words(records []WordRecord) []string {
	return lo.Map(records, func(r WordRecord, _ int) string {
		return r.Word
	})
}

func truncate(records []WordRecord, limit int) []WordRecord {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}
