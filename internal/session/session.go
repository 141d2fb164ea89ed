package session

import (
	"fmt"
	"time"

	"github.com/abhisek/lexis/internal/difficulty"
)

// MaxRecentErrors is the maximum number of recent errors tracked per word.
const MaxRecentErrors = 5

// HandleAnswer records an answered exercise for word and marks the word
// as used. answer is the learner's raw response, kept for wrong answers.
func HandleAnswer(state *State, word, answer string, correct bool, now time.Time) {
	state.TotalQuestions++
	if correct {
		state.TotalCorrect++
		state.ConsecutiveCorrect++
	} else {
		state.ConsecutiveCorrect = 0
	}

	state.Exercises = append(state.Exercises, difficulty.Exercise{
		Word:    word,
		Correct: correct,
		At:      now,
	})

	k := key(word)
	wr := state.PerWordResults[k]
	if wr == nil {
		wr = &WordResult{Word: word}
		state.PerWordResults[k] = wr
	}
	wr.Attempted++
	if correct {
		wr.Correct++
	} else {
		errs := append(state.RecentErrors[k], fmt.Sprintf("answered %q for %q", answer, word))
		if len(errs) > MaxRecentErrors {
			errs = errs[len(errs)-MaxRecentErrors:]
		}
		state.RecentErrors[k] = errs
	}

	state.Memory.Use(word)
}

// CheckDrift asks advisor whether the session level should change and
// applies the change when it advises one. Returns the applied analysis,
// or nil when the level is unchanged.
func CheckDrift(state *State, advisor difficulty.Advisor) *difficulty.Analysis {
	a := advisor.EvaluateMidSession(state.Exercises, state.Level)
	if a == nil || !a.ShouldAdjust || a.SuggestedLevel == state.Level {
		return nil
	}
	state.Level = a.SuggestedLevel
	state.Adjustments = append(state.Adjustments, *a)
	return a
}

// Stats returns the running performance counters for the session.
func Stats(state *State) difficulty.Stats {
	return difficulty.StatsFromExercises(state.Exercises)
}
