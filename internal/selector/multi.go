package selector

import (
	"math"

	"github.com/abhisek/lexis/internal/difficulty"
)

// Plan is the number of words wanted from each source.
type Plan struct {
	Struggling int `json:"struggling"`
	Review     int `json:"review"`
	Mastered   int `json:"mastered"`
	New        int `json:"new"`
}

// Total returns the planned word count.
func (p Plan) Total() int {
	return p.Struggling + p.Review + p.Mastered + p.New
}

// Distribute splits count into per-source targets. Struggling and
// mastered shares come from their base shares scaled by the boost and
// penalty, review from ReviewWordRatio; when these overshoot count, review
// is trimmed first, then mastered, then struggling. New words take the
// remainder up to their cap (one in N+1 mode, else NewWordRatio) and
// anything above the cap goes to review.
func Distribute(count int, cfg Config) Plan {
	if count <= 0 {
		return Plan{}
	}
	n := float64(count)
	p := Plan{
		Struggling: clampCount(n*baseStrugglingShare*cfg.StrugglingWordBoost, count),
		Mastered:   clampCount(n*baseMasteredShare*cfg.MasteredWordPenalty, count),
		Review:     clampCount(n*cfg.ReviewWordRatio, count),
	}

	over := p.Struggling + p.Mastered + p.Review - count
	for _, bucket := range []*int{&p.Review, &p.Mastered, &p.Struggling} {
		if over <= 0 {
			break
		}
		d := min(over, *bucket)
		*bucket -= d
		over -= d
	}

	p.New = count - p.Struggling - p.Mastered - p.Review
	newCap := 1
	if !cfg.NPlusOneMode {
		newCap = clampCount(n*cfg.NewWordRatio, count)
	}
	if p.New > newCap {
		p.Review += p.New - newCap
		p.New = newCap
	}
	return p
}

func clampCount(f float64, count int) int {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	return min(count, int(math.Round(f)))
}

// SelectWords picks count distinct words following Distribute. Each
// bucket is filled at random from its pool, skipping cooldown and words
// already chosen; any shortfall is filled with new words and then
// emergency words. The result has count entries whenever enough distinct
// words exist.
func (s *Selector) SelectWords(ctx Context, count int, cfg Config) []Selection {
	if count <= 0 {
		return nil
	}
	ctx.Difficulty = difficulty.SanitizeLevel(ctx.Difficulty, s.log)
	plan := Distribute(count, cfg)
	cooldown := ctx.cooldown()
	chosen := make(map[string]bool, count)
	out := make([]Selection, 0, count)

	take := func(pool []string, n int, stage Stage) {
		for _, w := range s.shuffled(available(pool, cooldown)) {
			if n <= 0 {
				return
			}
			if chosen[key(w)] {
				continue
			}
			chosen[key(w)] = true
			out = append(out, Selection{Word: w, Stage: stage})
			n--
		}
	}
	takeNew := func(n int) {
		if n <= 0 {
			return
		}
		exclude := lowerSet(ctx.SessionUsed, ctx.RecentlyUsed, ctx.Known, chosen)
		for _, w := range s.newWords(ctx, exclude, n) {
			chosen[key(w)] = true
			out = append(out, Selection{Word: w, Stage: StageNew})
		}
	}

	take(ctx.Struggling, plan.Struggling, StageStruggling)
	take(ctx.DueForReview, plan.Review, StageReview)
	take(ctx.Mastered, plan.Mastered, StageMastered)
	takeNew(plan.New)

	if short := count - len(out); short > 0 {
		takeNew(short)
	}
	if short := count - len(out); short > 0 {
		for _, w := range available(s.catalog.Emergency(ctx.Language), cooldown) {
			if short == 0 {
				break
			}
			if chosen[key(w)] {
				continue
			}
			chosen[key(w)] = true
			out = append(out, Selection{Word: w, Stage: StageEmergency})
			short--
		}
	}
	if len(out) == 0 {
		out = append(out, Selection{Word: s.emergency(ctx.Language, cooldown), Stage: StageEmergency})
	}

	s.log.WithField("plan", plan).Debugf("selected %d of %d words", len(out), count)
	return out
}

// shuffled returns a copy of words in random order.
func (s *Selector) shuffled(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	for i := len(out) - 1; i > 0; i-- {
		j := s.rnd.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
