package mastery

import (
	"time"

	"github.com/abhisek/lexis/internal/spacedrep"
)

// Progress holds the per-word counters a vocabulary store persists.
type Progress struct {
	Level           int
	ReviewCount     int
	CorrectCount    int
	NextReviewDueAt *time.Time
}

// Accuracy returns the correct ratio, or 0 before the first review.
func (p *Progress) Accuracy() float64 {
	if p.ReviewCount == 0 {
		return 0.0
	}
	return min(1.0, float64(p.CorrectCount)/float64(p.ReviewCount))
}

// Record applies one answered exercise. A correct answer raises the
// level by one (capped at MaxLevel) and schedules the next review; a miss
// lowers it by one (floored at 0) and makes the word due again.
func (p *Progress) Record(correct bool, now time.Time) {
	p.ReviewCount++
	if correct {
		p.CorrectCount++
		p.Level = min(MaxLevel, p.Level+1)
	} else {
		p.Level = max(0, p.Level-1)
	}
	due := spacedrep.NextDue(p.Level, correct, now)
	p.NextReviewDueAt = &due
}
