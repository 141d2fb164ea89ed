package evaluate

import (
	"math"

	"github.com/samber/lo"

	"github.com/abhisek/lexis/internal/textmatch"
)

// markingPassAccuracy is the accuracy a partial-credit marking needs to pass.
const markingPassAccuracy = 60

// extraSelectionPenalty is subtracted for every selected word outside the target set.
const extraSelectionPenalty = 10

// EvaluateMarking scores a learner's selection of "words to learn" against
// the target words. Accuracy is 100*hits/len(target) minus 10 per extra
// selection, floored at 0. With allowPartial the selection passes at 60,
// otherwise it must equal the target set exactly.
func EvaluateMarking(selected, target []string, allowPartial bool) Result {
	sel := normalizedSet(selected)
	tgt := normalizedSet(target)

	hits := len(lo.Intersect(tgt, sel))
	extra := len(sel) - hits

	var accuracy int
	if len(tgt) == 0 {
		if len(sel) == 0 {
			accuracy = 100
		}
	} else {
		raw := 100*float64(hits)/float64(len(tgt)) - float64(extraSelectionPenalty*extra)
		accuracy = int(math.Round(math.Max(0, raw)))
	}

	exact := extra == 0 && hits == len(tgt)
	correct := exact
	if allowPartial {
		correct = accuracy >= markingPassAccuracy
	}

	similarity := 1.0
	if union := len(tgt) + extra; union > 0 {
		similarity = float64(hits) / float64(union)
	}
	return newResult(correct, accuracy, similarity)
}

func normalizedSet(words []string) []string {
	return lo.Uniq(lo.FilterMap(words, func(w string, _ int) (string, bool) {
		n := textmatch.Normalize(w)
		return n, n != ""
	}))
}
