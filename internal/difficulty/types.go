package difficulty

import "time"

// SessionSummary is one finished practice session as reported by the
// session history source.
type SessionSummary struct {
	Level            Level
	TotalExercises   int
	CorrectExercises int
	CreatedAt        time.Time
}

// Accuracy returns the session's correct ratio, or 0 for an empty session.
func (s SessionSummary) Accuracy() float64 {
	if s.TotalExercises <= 0 {
		return 0
	}
	return min(1.0, float64(s.CorrectExercises)/float64(s.TotalExercises))
}

// History is the input to a session-start recommendation.
type History struct {
	// Sessions are the learner's past sessions for one language, in any order.
	Sessions []SessionSummary
	// StrugglingWords is the learner's current struggling-word count.
	StrugglingWords int
}

// Exercise is one answered exercise within the current session.
type Exercise struct {
	Word    string
	Correct bool
	At      time.Time
}

// Analysis is a difficulty opinion with its justification.
type Analysis struct {
	CurrentLevel   Level
	SuggestedLevel Level
	ShouldAdjust   bool
	Confidence     float64 // 0.0-1.0
	Reasons        []string
}

// Recommendation is the difficulty to start a session at.
type Recommendation struct {
	SuggestedLevel Level
	Confidence     float64 // 0.0-1.0
	Reasoning      []string
	// FallbackLevel is the safer level to use if content at SuggestedLevel
	// cannot be produced.
	FallbackLevel Level
}

// Advisor recommends difficulty levels from performance history.
type Advisor interface {
	// RecommendStart picks the level for a new session.
	RecommendStart(history History) Recommendation

	// EvaluateMidSession checks the running session for drift. Returns nil
	// when it has no opinion.
	EvaluateMidSession(exercises []Exercise, current Level) *Analysis
}
