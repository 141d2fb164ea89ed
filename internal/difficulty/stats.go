package difficulty

// Stats are the rolling performance counters analysed by Analyze.
type Stats struct {
	Exercises     int
	Correct       int
	CorrectStreak int // trailing run of correct answers
	ErrorStreak   int // trailing run of wrong answers
}

// Accuracy returns the correct ratio, or 0 with no exercises.
func (s Stats) Accuracy() float64 {
	if s.Exercises <= 0 {
		return 0
	}
	return min(1.0, float64(s.Correct)/float64(s.Exercises))
}

// StatsFromExercises summarizes exercises given in chronological order.
func StatsFromExercises(exercises []Exercise) Stats {
	var s Stats
	for _, e := range exercises {
		s.Exercises++
		if e.Correct {
			s.Correct++
			s.CorrectStreak++
			s.ErrorStreak = 0
		} else {
			s.ErrorStreak++
			s.CorrectStreak = 0
		}
	}
	return s
}
