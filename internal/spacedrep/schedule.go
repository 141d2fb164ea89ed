package spacedrep

// BaseIntervals defines the expanding review interval schedule in days,
// indexed by a word's mastery level.
var BaseIntervals = []int{1, 3, 7, 14, 30, 60}

// MaxStage is the highest stage index in BaseIntervals.
const MaxStage = 5

// GraduationStage is the mastery level at which a word graduates to the
// long review interval.
const GraduationStage = 6

// GraduatedIntervalDays is the review interval for graduated words.
const GraduatedIntervalDays = 90

// IntervalDays returns the review interval for a mastery level.
func IntervalDays(level int) int {
	switch {
	case level < 0:
		return BaseIntervals[0]
	case level >= GraduationStage:
		return GraduatedIntervalDays
	case level > MaxStage:
		return BaseIntervals[MaxStage]
	default:
		return BaseIntervals[level]
	}
}
