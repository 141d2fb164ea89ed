package session

import (
	"sort"
	"time"

	"github.com/abhisek/lexis/internal/difficulty"
)

// Summary describes a finished session.
type Summary struct {
	ID             string
	Language       string
	StartLevel     difficulty.Level
	EndLevel       difficulty.Level
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	WordResults    []WordResult
	Adjustments    int
	StartedAt      time.Time
}

// BuildSummary creates a Summary from the session state at now.
// Word results are ordered by attempts, most first, then by word.
func BuildSummary(state *State, now time.Time) *Summary {
	results := make([]WordResult, 0, len(state.PerWordResults))
	for _, wr := range state.PerWordResults {
		results = append(results, *wr)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Attempted != results[j].Attempted {
			return results[i].Attempted > results[j].Attempted
		}
		return results[i].Word < results[j].Word
	})

	return &Summary{
		ID:             state.ID,
		Language:       state.Language,
		StartLevel:     state.StartLevel,
		EndLevel:       state.Level,
		Duration:       now.Sub(state.StartedAt),
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       state.Accuracy(),
		WordResults:    results,
		Adjustments:    len(state.Adjustments),
		StartedAt:      state.StartedAt,
	}
}

// History converts the summary into the record the difficulty advisor
// reads back from the session history source. The level stored is the
// level the session ended at.
func (s *Summary) History() difficulty.SessionSummary {
	return difficulty.SessionSummary{
		Level:            s.EndLevel,
		TotalExercises:   s.TotalQuestions,
		CorrectExercises: s.TotalCorrect,
		CreatedAt:        s.StartedAt,
	}
}
