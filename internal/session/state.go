package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexis/internal/difficulty"
)

// State holds the mutable state of an active practice session.
type State struct {
	ID         string
	Language   string
	StartLevel difficulty.Level
	Level      difficulty.Level
	StartedAt  time.Time

	// Answer tracking, in chronological order.
	Exercises          []difficulty.Exercise
	TotalQuestions     int
	TotalCorrect       int
	ConsecutiveCorrect int
	PerWordResults     map[string]*WordResult

	// RecentErrors holds the last MaxRecentErrors wrong answers per word.
	RecentErrors map[string][]string

	// Adjustments records every mid-session level change applied.
	Adjustments []difficulty.Analysis

	// Memory is the cooldown bookkeeping shared with word selection.
	Memory *Memory
}

// WordResult tracks per-word results within a session.
type WordResult struct {
	Word      string
	Attempted int
	Correct   int
}

// NewState creates a session at level. An empty id gets a fresh UUID and
// a nil memory gets an empty one with the default window.
func NewState(id, language string, level difficulty.Level, memory *Memory, now time.Time) *State {
	if id == "" {
		id = uuid.NewString()
	}
	if memory == nil {
		memory = NewMemory(nil, DefaultRecentWindow)
	}
	level = difficulty.SanitizeLevel(level, nil)
	return &State{
		ID:             id,
		Language:       language,
		StartLevel:     level,
		Level:          level,
		StartedAt:      now,
		PerWordResults: make(map[string]*WordResult),
		RecentErrors:   make(map[string][]string),
		Memory:         memory,
	}
}

// Accuracy returns the session's correct ratio so far.
func (s *State) Accuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalQuestions)
}
