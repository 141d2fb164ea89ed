package mastery

import (
	"testing"
	"time"
)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		level int
		want  Bucket
	}{
		{0, BucketBeginner},
		{1, BucketBeginner},
		{2, BucketIntermediate},
		{3, BucketIntermediate},
		{4, BucketAdvanced},
		{5, BucketAdvanced},
		{6, BucketMastered},
		{9, BucketMastered},
	}
	for _, tc := range tests {
		if got := BucketFor(tc.level); got != tc.want {
			t.Errorf("BucketFor(%d) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestProgress_RecordCorrect(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	p := &Progress{Level: 1}
	p.Record(true, now)

	if p.Level != 2 || p.ReviewCount != 1 || p.CorrectCount != 1 {
		t.Fatalf("got %+v", p)
	}
	if p.NextReviewDueAt == nil || !p.NextReviewDueAt.Equal(now.AddDate(0, 0, 7)) {
		t.Errorf("NextReviewDueAt = %v, want now+7d", p.NextReviewDueAt)
	}
}

func TestProgress_RecordIncorrect(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	p := &Progress{Level: 0, ReviewCount: 2, CorrectCount: 2}
	p.Record(false, now)

	if p.Level != 0 {
		t.Errorf("Level = %d, want floor 0", p.Level)
	}
	if p.ReviewCount != 3 || p.CorrectCount != 2 {
		t.Errorf("counts = %d/%d, want 2/3", p.CorrectCount, p.ReviewCount)
	}
	if !p.NextReviewDueAt.Equal(now) {
		t.Errorf("NextReviewDueAt = %v, want now", p.NextReviewDueAt)
	}
}

func TestProgress_LevelCapped(t *testing.T) {
	p := &Progress{Level: MaxLevel}
	p.Record(true, time.Now())
	if p.Level != MaxLevel {
		t.Errorf("Level = %d, want %d", p.Level, MaxLevel)
	}
}

func TestProgress_Accuracy(t *testing.T) {
	if got := (&Progress{}).Accuracy(); got != 0 {
		t.Errorf("Accuracy() with no reviews = %f, want 0", got)
	}
	if got := (&Progress{ReviewCount: 4, CorrectCount: 3}).Accuracy(); got != 0.75 {
		t.Errorf("Accuracy() = %f, want 0.75", got)
	}
	// Malformed counters never exceed 1.
	if got := (&Progress{ReviewCount: 2, CorrectCount: 5}).Accuracy(); got != 1 {
		t.Errorf("Accuracy() = %f, want 1", got)
	}
}
