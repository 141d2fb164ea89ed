// Package practice runs practice sessions end to end: it recommends a
// starting level, picks target words, scores answers, persists progress
// and adjusts the level when the learner drifts.
package practice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/lexis/internal/difficulty"
	"github.com/abhisek/lexis/internal/evaluate"
	"github.com/abhisek/lexis/internal/logging"
	"github.com/abhisek/lexis/internal/selector"
	"github.com/abhisek/lexis/internal/session"
	"github.com/abhisek/lexis/internal/store"
	"github.com/abhisek/lexis/internal/vocab"
	"github.com/abhisek/lexis/internal/wordlist"
)

// historySessions is how many past sessions feed a start recommendation.
const historySessions = 20

// ErrNoSession is returned when an operation needs an active session.
var ErrNoSession = errors.New("no active session")

// Settings identify the learner and tune selection.
type Settings struct {
	UserID   string
	Language string

	// RecentWindow is the cross-session cooldown size.
	RecentWindow int
	// Multi is used by Plan unless Adaptive is set.
	Multi    selector.Config
	Adaptive bool
}

// Service coordinates selection, evaluation and persistence for one
// learner and language.
type Service struct {
	repos    store.Repos
	settings Settings
	selector *selector.Selector
	advisor  difficulty.Advisor
	eval     *evaluate.Evaluator
	log      logrus.FieldLogger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithSelector replaces the default selector.
func WithSelector(s *selector.Selector) Option {
	return func(svc *Service) { svc.selector = s }
}

// WithAdvisor replaces the default difficulty advisor.
func WithAdvisor(a difficulty.Advisor) Option {
	return func(svc *Service) { svc.advisor = a }
}

// WithEvaluator replaces the default answer evaluator.
func WithEvaluator(e *evaluate.Evaluator) Option {
	return func(svc *Service) { svc.eval = e }
}

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(svc *Service) { svc.log = log }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(svc *Service) { svc.now = now }
}

// NewService creates a Service. Missing dependencies get defaults: the
// built-in word lists, the enhanced advisor and the default threshold.
func NewService(repos store.Repos, settings Settings, opts ...Option) *Service {
	svc := &Service{repos: repos, settings: settings, now: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	svc.log = logging.OrDiscard(svc.log)
	if svc.settings.Language == "" {
		svc.settings.Language = wordlist.DefaultLanguage
	}
	if svc.settings.RecentWindow <= 0 {
		svc.settings.RecentWindow = session.DefaultRecentWindow
	}
	if svc.selector == nil {
		svc.selector = selector.New(wordlist.Builtin(), selector.WithLogger(svc.log))
	}
	if svc.advisor == nil {
		svc.advisor = difficulty.NewEnhancedAdvisor(difficulty.DefaultThresholds(), svc.log)
	}
	if svc.eval == nil {
		svc.eval = evaluate.NewEvaluator(evaluate.DefaultThreshold)
	}
	return svc
}

// Session is an active practice session.
type Session struct {
	State          *session.State
	Recommendation difficulty.Recommendation
}

// Level returns the session's current level.
func (s *Session) Level() difficulty.Level {
	return s.State.Level
}

// Outcome is the result of one answered exercise.
type Outcome struct {
	Word   string
	Result evaluate.Result
	// Record is the word's stored record after the answer was applied.
	Record vocab.WordRecord
	// Adjustment is set when the answer moved the session level.
	Adjustment *difficulty.Analysis
}

// Vocabulary loads the learner's word records.
func (svc *Service) Vocabulary(ctx context.Context) (*vocab.Vocabulary, error) {
	records, err := svc.repos.Words.WordRecords(ctx, svc.settings.UserID, svc.settings.Language)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	return vocab.New(records), nil
}

// Recommend picks the level to start a session at.
func (svc *Service) Recommend(ctx context.Context) (difficulty.Recommendation, error) {
	v, err := svc.Vocabulary(ctx)
	if err != nil {
		return difficulty.Recommendation{}, err
	}
	sessions, err := svc.repos.Sessions.RecentSessions(ctx, svc.settings.UserID, svc.settings.Language, historySessions)
	if err != nil {
		return difficulty.Recommendation{}, fmt.Errorf("load session history: %w", err)
	}
	return svc.advisor.RecommendStart(difficulty.History{
		Sessions:        sessions,
		StrugglingWords: len(v.StrugglingWords(0)),
	}), nil
}

// Start begins a session at the recommended level, seeding the cooldown
// window from recently used words.
func (svc *Service) Start(ctx context.Context) (*Session, error) {
	rec, err := svc.Recommend(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := svc.repos.Recent.RecentWords(ctx, svc.settings.UserID, svc.settings.Language, svc.settings.RecentWindow)
	if err != nil {
		return nil, fmt.Errorf("load recent words: %w", err)
	}

	memory := session.NewMemory(recent, svc.settings.RecentWindow)
	state := session.NewState("", svc.settings.Language, rec.SuggestedLevel, memory, svc.now())

	svc.log.WithFields(logrus.Fields{
		"session":    state.ID,
		"language":   state.Language,
		"level":      state.Level,
		"confidence": rec.Confidence,
	}).Info("session started")
	return &Session{State: state, Recommendation: rec}, nil
}

// SelectionContext builds the selector input from the current vocabulary
// and the session's cooldown memory. A nil session selects at the
// recommended level with only the persisted cooldown window.
func (svc *Service) SelectionContext(ctx context.Context, s *Session) (selector.Context, error) {
	v, err := svc.Vocabulary(ctx)
	if err != nil {
		return selector.Context{}, err
	}

	var (
		level  difficulty.Level
		memory *session.Memory
	)
	if s != nil {
		level = s.State.Level
		memory = s.State.Memory
	} else {
		rec, err := svc.Recommend(ctx)
		if err != nil {
			return selector.Context{}, err
		}
		recent, err := svc.repos.Recent.RecentWords(ctx, svc.settings.UserID, svc.settings.Language, svc.settings.RecentWindow)
		if err != nil {
			return selector.Context{}, fmt.Errorf("load recent words: %w", err)
		}
		level = rec.SuggestedLevel
		memory = session.NewMemory(recent, svc.settings.RecentWindow)
	}

	return selector.Context{
		Struggling:   v.StrugglingWords(0),
		DueForReview: v.DueForReview(svc.now(), 0),
		Mastered:     v.MasteredWords(),
		SessionUsed:  memory.SessionUsed(),
		RecentlyUsed: memory.RecentlyUsed(),
		Known:        v.KnownWords(),
		Difficulty:   level,
		Language:     svc.settings.Language,
	}, nil
}

// Next picks the next target word for the session.
func (svc *Service) Next(ctx context.Context, s *Session) (selector.Selection, error) {
	sctx, err := svc.SelectionContext(ctx, s)
	if err != nil {
		return selector.Selection{}, err
	}
	return svc.selector.Select(sctx), nil
}

// Plan picks count target words at once. With adaptive settings the mix
// is derived from the vocabulary; the configuration used is returned.
func (svc *Service) Plan(ctx context.Context, s *Session, count int) ([]selector.Selection, selector.Config, error) {
	sctx, err := svc.SelectionContext(ctx, s)
	if err != nil {
		return nil, selector.Config{}, err
	}

	cfg := svc.settings.Multi
	if svc.settings.Adaptive {
		v, err := svc.Vocabulary(ctx)
		if err != nil {
			return nil, selector.Config{}, err
		}
		cfg = selector.RecommendConfig(v.Len(), len(sctx.Struggling))
	}
	return svc.selector.SelectWords(sctx, count, cfg), cfg, nil
}

// Submit scores a free-text answer for word and records it.
func (svc *Service) Submit(ctx context.Context, s *Session, word, answer string, accepted []string, mode evaluate.Mode) (Outcome, error) {
	if len(accepted) == 0 {
		accepted = []string{word}
	}
	return svc.record(ctx, s, word, answer, svc.eval.Evaluate(answer, accepted, mode))
}

// SubmitResult records an answer that was scored elsewhere, such as a
// multiple-choice pick.
func (svc *Service) SubmitResult(ctx context.Context, s *Session, word, answer string, result evaluate.Result) (Outcome, error) {
	return svc.record(ctx, s, word, answer, result)
}

func (svc *Service) record(ctx context.Context, s *Session, word, answer string, result evaluate.Result) (Outcome, error) {
	if s == nil || s.State == nil {
		return Outcome{}, ErrNoSession
	}
	now := svc.now()

	rec, err := svc.repos.Words.RecordObservation(ctx, store.Observation{
		UserID:   svc.settings.UserID,
		Language: svc.settings.Language,
		Word:     word,
		Correct:  result.IsCorrect,
		At:       now,
	})
	if err != nil {
		return Outcome{}, err
	}

	session.HandleAnswer(s.State, word, answer, result.IsCorrect, now)
	adj := session.CheckDrift(s.State, svc.advisor)
	if adj != nil {
		svc.log.WithFields(logrus.Fields{
			"session":    s.State.ID,
			"from":       adj.CurrentLevel,
			"to":         adj.SuggestedLevel,
			"confidence": adj.Confidence,
		}).Info("session level adjusted")
	}

	return Outcome{Word: word, Result: result, Record: rec, Adjustment: adj}, nil
}

// Finish persists the session summary and the cooldown window.
func (svc *Service) Finish(ctx context.Context, s *Session) (*session.Summary, error) {
	if s == nil || s.State == nil {
		return nil, ErrNoSession
	}
	now := svc.now()
	summary := session.BuildSummary(s.State, now)

	if _, err := svc.repos.Sessions.SaveSession(ctx, store.SessionRecord{
		ID:               summary.ID,
		UserID:           svc.settings.UserID,
		Language:         summary.Language,
		Level:            summary.EndLevel,
		TotalExercises:   summary.TotalQuestions,
		CorrectExercises: summary.TotalCorrect,
		Duration:         summary.Duration,
		CreatedAt:        summary.StartedAt,
	}); err != nil {
		return nil, err
	}

	if err := svc.repos.Recent.MarkUsed(ctx, svc.settings.UserID, svc.settings.Language, s.State.Memory.Recent(), now); err != nil {
		return nil, err
	}
	if err := svc.repos.Recent.Prune(ctx, svc.settings.UserID, svc.settings.Language, svc.settings.RecentWindow); err != nil {
		return nil, err
	}

	svc.log.WithFields(logrus.Fields{
		"session":   summary.ID,
		"questions": summary.TotalQuestions,
		"accuracy":  summary.Accuracy,
		"level":     summary.EndLevel,
	}).Info("session finished")
	return summary, nil
}

// Stats summarizes the learner's vocabulary and history.
type Stats struct {
	Classification vocab.Classification
	Categories     map[vocab.Category]int
	Sessions       int
}

// Stats loads the vocabulary classification and session count.
func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	v, err := svc.Vocabulary(ctx)
	if err != nil {
		return Stats{}, err
	}
	n, err := svc.repos.Sessions.SessionCount(ctx, svc.settings.UserID, svc.settings.Language)
	if err != nil {
		return Stats{}, fmt.Errorf("count sessions: %w", err)
	}

	categories := make(map[vocab.Category]int)
	for _, c := range v.Categorize(svc.now()) {
		categories[c]++
	}
	return Stats{Classification: v.Classify(), Categories: categories, Sessions: n}, nil
}
