package difficulty

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/lexis/internal/logging"
)

var (
	_ Advisor = (*EnhancedAdvisor)(nil)
	_ Advisor = (*BasicAdvisor)(nil)
)

// EnhancedAdvisor separates new learners from experienced ones at session
// start and only corrects mid-session on strong, well-sampled signals.
type EnhancedAdvisor struct {
	th  Thresholds
	log logrus.FieldLogger
}

// NewEnhancedAdvisor creates an EnhancedAdvisor. A nil logger discards output.
func NewEnhancedAdvisor(th Thresholds, log logrus.FieldLogger) *EnhancedAdvisor {
	return &EnhancedAdvisor{th: th, log: logging.OrDiscard(log)}
}

// RecommendStart implements Advisor.
//
// Learners with fewer than ColdStartSessions sessions always start at
// beginner. Otherwise the last HistoryWindow sessions are averaged with
// weights RecencyDecay^i (i=0 most recent) and the last used level is
// promoted, demoted or kept. A large struggling-word backlog steps the
// result down one more level.
func (a *EnhancedAdvisor) RecommendStart(history History) Recommendation {
	if len(history.Sessions) == 0 || len(history.Sessions) < a.th.ColdStartSessions {
		return Recommendation{
			SuggestedLevel: Beginner,
			Confidence:     a.th.ColdStartConfidence,
			Reasoning: []string{
				fmt.Sprintf("only %d previous sessions, starting new learners at beginner", len(history.Sessions)),
			},
			FallbackLevel: Beginner,
		}
	}

	recent := recentSessions(history.Sessions, a.th.HistoryWindow)
	last := SanitizeLevel(recent[0].Level, a.log)

	var rec Recommendation
	acc, scored := weightedAccuracy(recent, a.th.RecencyDecay)
	switch {
	case scored == 0:
		rec = Recommendation{
			SuggestedLevel: last,
			Confidence:     a.th.HoldConfidence,
			Reasoning:      []string{"recent sessions have no scored exercises, keeping last level"},
		}
	case acc >= a.th.PromoteAccuracy:
		rec = Recommendation{
			SuggestedLevel: last.Next(),
			Confidence:     a.th.PromoteConfidence,
			Reasoning: []string{
				fmt.Sprintf("weighted accuracy %.0f%% over last %d sessions is high, moving up from %s", acc*100, scored, last),
			},
		}
	case acc <= a.th.DemoteAccuracy:
		rec = Recommendation{
			SuggestedLevel: last.Prev(),
			Confidence:     a.th.DemoteConfidence,
			Reasoning: []string{
				fmt.Sprintf("weighted accuracy %.0f%% over last %d sessions is low, moving down from %s", acc*100, scored, last),
			},
		}
	default:
		rec = Recommendation{
			SuggestedLevel: last,
			Confidence:     a.th.HoldConfidence,
			Reasoning: []string{
				fmt.Sprintf("weighted accuracy %.0f%% over last %d sessions, keeping %s", acc*100, scored, last),
			},
		}
	}

	if history.StrugglingWords > a.th.StrugglingWordLimit {
		rec.SuggestedLevel = rec.SuggestedLevel.Prev()
		rec.Confidence = math.Min(1, math.Round((rec.Confidence+a.th.StrugglingConfidenceBoost)*100)/100)
		rec.Reasoning = append(rec.Reasoning,
			fmt.Sprintf("%d struggling words need reinforcement, stepping down", history.StrugglingWords))
	}

	rec.FallbackLevel = rec.SuggestedLevel.Prev()
	return rec
}

// EvaluateMidSession implements Advisor. It needs MidSessionMinExercises
// exercises and looks at the last MidSessionWindow of them; it only fires
// when that window holds at least MidSessionMinWindow exercises and its
// accuracy is outside the promote/demote band.
func (a *EnhancedAdvisor) EvaluateMidSession(exercises []Exercise, current Level) *Analysis {
	if len(exercises) < a.th.MidSessionMinExercises {
		return nil
	}
	current = SanitizeLevel(current, a.log)

	window := exercises
	if a.th.MidSessionWindow > 0 && len(window) > a.th.MidSessionWindow {
		window = window[len(window)-a.th.MidSessionWindow:]
	}
	if len(window) < a.th.MidSessionMinWindow {
		return nil
	}

	stats := StatsFromExercises(window)
	acc := stats.Accuracy()

	var target Level
	var confidence float64
	var reason string
	switch {
	case acc >= a.th.MidSessionPromoteAccuracy:
		target = current.Next()
		confidence = a.th.MidSessionPromoteConfidence
		reason = fmt.Sprintf("%d of last %d exercises correct (%.0f%%)", stats.Correct, stats.Exercises, acc*100)
	case acc <= a.th.MidSessionDemoteAccuracy:
		target = current.Prev()
		confidence = a.th.MidSessionDemoteConfidence
		reason = fmt.Sprintf("only %d of last %d exercises correct (%.0f%%)", stats.Correct, stats.Exercises, acc*100)
	default:
		return nil
	}

	// Already at the floor or ceiling.
	if target == current {
		return nil
	}

	return &Analysis{
		CurrentLevel:   current,
		SuggestedLevel: target,
		ShouldAdjust:   true,
		Confidence:     confidence,
		Reasons:        []string{reason},
	}
}

// recentSessions returns up to n sessions, most recent first.
func recentSessions(sessions []SessionSummary, n int) []SessionSummary {
	sorted := make([]SessionSummary, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// weightedAccuracy averages session accuracy with weight decay^i, skipping
// sessions without exercises. Returns the accuracy and the number of
// sessions that contributed.
func weightedAccuracy(recent []SessionSummary, decay float64) (float64, int) {
	var sum, weights float64
	var scored int
	for i, s := range recent {
		if s.TotalExercises <= 0 {
			continue
		}
		w := math.Pow(decay, float64(i))
		sum += w * s.Accuracy()
		weights += w
		scored++
	}
	if weights == 0 {
		return 0, 0
	}
	return sum / weights, scored
}
