package difficulty

import (
	"github.com/sirupsen/logrus"

	"github.com/abhisek/lexis/internal/logging"
)

// BasicAdvisor runs the signal analysis for both entry points without
// distinguishing new from experienced learners.
type BasicAdvisor struct {
	th      Thresholds
	signals []Signal
	log     logrus.FieldLogger
}

// NewBasicAdvisor creates a BasicAdvisor using DefaultSignals.
func NewBasicAdvisor(th Thresholds, log logrus.FieldLogger) *BasicAdvisor {
	return &BasicAdvisor{th: th, signals: DefaultSignals(th), log: logging.OrDiscard(log)}
}

// RecommendStart implements Advisor using totals over the recent history
// window. Without history it starts at beginner.
func (a *BasicAdvisor) RecommendStart(history History) Recommendation {
	recent := recentSessions(history.Sessions, a.th.HistoryWindow)
	if len(recent) == 0 {
		return Recommendation{
			SuggestedLevel: Beginner,
			Confidence:     a.th.ColdStartConfidence,
			Reasoning:      []string{"no previous sessions"},
			FallbackLevel:  Beginner,
		}
	}

	current := SanitizeLevel(recent[0].Level, a.log)
	var stats Stats
	for _, s := range recent {
		stats.Exercises += max(0, s.TotalExercises)
		stats.Correct += max(0, s.CorrectExercises)
	}

	analysis := Analyze(stats, current, a.signals, a.th)
	rec := Recommendation{
		SuggestedLevel: current,
		Confidence:     a.th.HoldConfidence,
		Reasoning:      analysis.Reasons,
	}
	if analysis.ShouldAdjust {
		rec.SuggestedLevel = analysis.SuggestedLevel
		rec.Confidence = analysis.Confidence
	}
	rec.FallbackLevel = rec.SuggestedLevel.Prev()
	return rec
}

// EvaluateMidSession implements Advisor. Returns nil unless the analysis
// advises a change.
func (a *BasicAdvisor) EvaluateMidSession(exercises []Exercise, current Level) *Analysis {
	current = SanitizeLevel(current, a.log)
	analysis := Analyze(StatsFromExercises(exercises), current, a.signals, a.th)
	if !analysis.ShouldAdjust {
		return nil
	}
	return &analysis
}
