package difficulty

import "fmt"

// Direction is the way a signal pushes the difficulty.
type Direction int

const (
	Down Direction = -1
	Hold Direction = 0
	Up   Direction = 1
)

// Vote is a single signal's contribution. A zero Vote means the signal
// did not fire.
type Vote struct {
	Direction  Direction
	Confidence float64
	Reason     string
}

// Signal is a rule that inspects performance stats and may vote for a
// difficulty change.
type Signal interface {
	Name() string
	Evaluate(stats Stats) Vote
}

// DefaultSignals returns the standard signals in reporting order.
func DefaultSignals(th Thresholds) []Signal {
	return []Signal{
		&AccuracySignal{th: th},
		&StreakSignal{th: th},
		&ErrorStreakSignal{th: th},
	}
}

// AccuracySignal votes on overall accuracy once enough exercises exist.
type AccuracySignal struct {
	th Thresholds
}

func (s *AccuracySignal) Name() string { return "accuracy" }

func (s *AccuracySignal) Evaluate(stats Stats) Vote {
	if stats.Exercises < s.th.MidSessionMinExercises {
		return Vote{}
	}
	acc := stats.Accuracy()
	pct := acc * 100
	switch {
	case acc >= s.th.VeryHighAccuracy:
		return Vote{Up, s.th.StrongAccuracyConf, fmt.Sprintf("very high accuracy (%.0f%%)", pct)}
	case acc >= s.th.HighAccuracy:
		return Vote{Up, s.th.AccuracyConfidence, fmt.Sprintf("high accuracy (%.0f%%)", pct)}
	case acc <= s.th.VeryLowAccuracy:
		return Vote{Down, s.th.StrongAccuracyConf, fmt.Sprintf("very low accuracy (%.0f%%)", pct)}
	case acc <= s.th.LowAccuracy:
		return Vote{Down, s.th.AccuracyConfidence, fmt.Sprintf("low accuracy (%.0f%%)", pct)}
	}
	return Vote{}
}

// StreakSignal adds a small upward push for a long correct streak.
type StreakSignal struct {
	th Thresholds
}

func (s *StreakSignal) Name() string { return "streak" }

func (s *StreakSignal) Evaluate(stats Stats) Vote {
	if s.th.StreakLength <= 0 || stats.CorrectStreak < s.th.StreakLength {
		return Vote{}
	}
	return Vote{Up, s.th.StreakConfidence, fmt.Sprintf("%d correct answers in a row", stats.CorrectStreak)}
}

// ErrorStreakSignal adds a small downward push for consecutive misses.
type ErrorStreakSignal struct {
	th Thresholds
}

func (s *ErrorStreakSignal) Name() string { return "error-streak" }

func (s *ErrorStreakSignal) Evaluate(stats Stats) Vote {
	if s.th.ErrorStreakLength <= 0 || stats.ErrorStreak < s.th.ErrorStreakLength {
		return Vote{}
	}
	return Vote{Down, s.th.StreakConfidence, fmt.Sprintf("%d wrong answers in a row", stats.ErrorStreak)}
}
