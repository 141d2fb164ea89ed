package difficulty

import "math"

// Analyze combines every signal's vote into a difficulty opinion.
// Votes in the same direction add up; the heavier direction wins. A change
// is only advised when the winning confidence exceeds the adjust floor, so
// weak signals must agree before the level moves.
func Analyze(stats Stats, current Level, signals []Signal, th Thresholds) Analysis {
	var up, down float64
	var reasons []string

	for _, sig := range signals {
		v := sig.Evaluate(stats)
		switch v.Direction {
		case Up:
			up += v.Confidence
		case Down:
			down += v.Confidence
		default:
			continue
		}
		reasons = append(reasons, v.Reason)
	}

	a := Analysis{
		CurrentLevel:   current,
		SuggestedLevel: current,
		Reasons:        reasons,
	}

	switch {
	case up > down:
		a.SuggestedLevel = current.Next()
		a.Confidence = roundConfidence(up)
	case down > up:
		a.SuggestedLevel = current.Prev()
		a.Confidence = roundConfidence(down)
	}

	a.ShouldAdjust = a.Confidence > th.AdjustConfidenceFloor && a.SuggestedLevel != current
	if len(a.Reasons) == 0 {
		a.Reasons = []string{"performance is within the target range"}
	}
	return a
}

// roundConfidence caps c at 1 and strips float noise from summed increments.
func roundConfidence(c float64) float64 {
	return math.Min(1, math.Round(c*100)/100)
}
