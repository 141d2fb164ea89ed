package spacedrep

import "time"

// IsDue returns true if a word with the given due date should be reviewed
// at now. A word that was never scheduled is not due.
func IsDue(due *time.Time, now time.Time) bool {
	if due == nil {
		return false
	}
	return !now.Before(*due)
}

// OverdueDays returns how many days past due a word is. Returns 0 if not yet due.
func OverdueDays(due *time.Time, now time.Time) float64 {
	if !IsDue(due, now) {
		return 0
	}
	return now.Sub(*due).Hours() / 24.0
}

// NextDue computes the next review date after an answer. A correct answer
// schedules the interval for the new mastery level; a miss is due again
// immediately.
func NextDue(level int, correct bool, now time.Time) time.Time {
	if !correct {
		return now
	}
	return now.AddDate(0, 0, IntervalDays(level))
}

// ReviewStatus describes a word's review status for display.
type ReviewStatus string

const (
	ReviewUnscheduled ReviewStatus = "unscheduled"
	ReviewNotDue      ReviewStatus = "not_due"
	ReviewDue         ReviewStatus = "due"
	ReviewOverdue     ReviewStatus = "overdue"
)

// Status returns the review status for a word at the given mastery level.
// A word is overdue once it is past due by more than half its interval.
func Status(due *time.Time, level int, now time.Time) ReviewStatus {
	if due == nil {
		return ReviewUnscheduled
	}
	if !IsDue(due, now) {
		return ReviewNotDue
	}
	graceHours := float64(IntervalDays(level)) * 0.5 * 24.0
	threshold := due.Add(time.Duration(graceHours * float64(time.Hour)))
	if now.After(threshold) {
		return ReviewOverdue
	}
	return ReviewDue
}
