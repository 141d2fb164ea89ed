package selector

import (
	"math/rand/v2"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/lexis/internal/difficulty"
	"github.com/abhisek/lexis/internal/logging"
	"github.com/abhisek/lexis/internal/wordlist"
)

// Stage names the source a selected word came from.
type Stage string

const (
	StageStruggling Stage = "struggling"
	StageReview     Stage = "review"
	StageMastered   Stage = "mastered"
	StageNew        Stage = "new"
	StageEmergency  Stage = "emergency"
)

// lastResort is returned only if every emergency list is empty.
const lastResort = "hola"

// Rand is the random source used for stage rolls and pool picks.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// Probabilities are the chances of trying the reinforcement stages.
type Probabilities struct {
	Struggling float64 `mapstructure:"struggling_probability"`
	Review     float64 `mapstructure:"review_probability"`
}

// DefaultProbabilities returns the standard stage probabilities.
func DefaultProbabilities() Probabilities {
	return Probabilities{Struggling: 0.3, Review: 0.4}
}

// Selection is a chosen word and the stage that produced it.
type Selection struct {
	Word  string `json:"word"`
	Stage Stage  `json:"stage"`
}

// Selector picks target words. It holds no state between calls; cooldown
// sets travel in the Context.
type Selector struct {
	probs   Probabilities
	catalog wordlist.Catalog
	rnd     Rand
	log     logrus.FieldLogger
}

// Option configures a Selector.
type Option func(*Selector)

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(s *Selector) { s.rnd = r }
}

// WithProbabilities sets the stage probabilities.
func WithProbabilities(p Probabilities) Option {
	return func(s *Selector) { s.probs = p }
}

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Selector) { s.log = log }
}

// New creates a Selector over catalog. A nil catalog uses the built-in
// word lists.
func New(catalog wordlist.Catalog, opts ...Option) *Selector {
	s := &Selector{
		probs:   DefaultProbabilities(),
		catalog: catalog,
		rnd:     globalRand{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.catalog == nil {
		s.catalog = wordlist.Builtin()
	}
	if s.rnd == nil {
		s.rnd = globalRand{}
	}
	s.log = logging.OrDiscard(s.log)
	return s
}

// SelectNextWord returns the next target word. It never returns an
// empty string.
func (s *Selector) SelectNextWord(ctx Context) string {
	return s.Select(ctx).Word
}

// Select runs the selection cascade:
//  1. with the struggling probability, a random struggling word;
//  2. else with the review probability, a random due word;
//  3. the most frequent unknown word of the difficulty tier;
//  4. an emergency word.
//
// Every stage skips words in cooldown; only the emergency stage may
// ignore cooldown, and only when nothing else is left.
func (s *Selector) Select(ctx Context) Selection {
	ctx.Difficulty = difficulty.SanitizeLevel(ctx.Difficulty, s.log)
	cooldown := ctx.cooldown()

	if s.rnd.Float64() < s.probs.Struggling {
		if w, ok := s.pick(available(ctx.Struggling, cooldown)); ok {
			return s.selected(w, StageStruggling)
		}
	}
	if s.rnd.Float64() < s.probs.Review {
		if w, ok := s.pick(available(ctx.DueForReview, cooldown)); ok {
			return s.selected(w, StageReview)
		}
	}
	if words := s.NewWords(ctx, 1); len(words) > 0 {
		return s.selected(words[0], StageNew)
	}

	w := s.emergency(ctx.Language, cooldown)
	s.log.WithFields(logrus.Fields{
		"language":   ctx.Language,
		"difficulty": ctx.Difficulty,
	}).Warnf("no candidate words left, using emergency word %q", w)
	return Selection{Word: w, Stage: StageEmergency}
}

// NewWords returns up to count unknown words from the difficulty tier, in
// frequency order, skipping cooldown and known words.
func (s *Selector) NewWords(ctx Context, count int) []string {
	if count <= 0 {
		return nil
	}
	return s.newWords(ctx, ctx.excluded(), count)
}

func (s *Selector) newWords(ctx Context, exclude map[string]bool, count int) []string {
	level := difficulty.SanitizeLevel(ctx.Difficulty, s.log)
	tiers := ctx.Fallback
	if tiers == nil {
		tiers = s.catalog.Tiers(ctx.Language)
	}

	words := lo.UniqBy(available(tiers[level], exclude), key)
	if len(words) > count {
		words = words[:count]
	}
	return words
}

// emergency returns the first emergency word not in cooldown, or the
// first emergency word if all are in cooldown.
func (s *Selector) emergency(lang string, cooldown map[string]bool) string {
	list := available(s.catalog.Emergency(lang), nil)
	if len(list) == 0 {
		list = available(wordlist.Builtin().Emergency(wordlist.DefaultLanguage), nil)
	}
	if len(list) == 0 {
		return lastResort
	}
	if free := available(list, cooldown); len(free) > 0 {
		return free[0]
	}
	return list[0]
}

func (s *Selector) pick(pool []string) (string, bool) {
	if len(pool) == 0 {
		return "", false
	}
	return pool[s.rnd.IntN(len(pool))], true
}

func (s *Selector) selected(word string, stage Stage) Selection {
	s.log.WithField("stage", stage).Debugf("selected %q", word)
	return Selection{Word: word, Stage: stage}
}

// available drops blank words and words whose key is in exclude.
func available(words []string, exclude map[string]bool) []string {
	return lo.Filter(words, func(w string, _ int) bool {
		k := key(w)
		return k != "" && !exclude[k]
	})
}
