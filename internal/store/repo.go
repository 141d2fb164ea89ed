package store

import (
	"context"
	"time"

	"github.com/abhisek/lexis/internal/difficulty"
	"github.com/abhisek/lexis/internal/vocab"
)

// Observation is one answered exercise reported back to the store.
type Observation struct {
	UserID   string
	Language string
	Word     string
	Correct  bool
	At       time.Time
}

// SessionRecord is a finished session as persisted.
type SessionRecord struct {
	ID               string // generated when empty
	UserID           string
	Language         string
	Level            difficulty.Level
	TotalExercises   int
	CorrectExercises int
	Duration         time.Duration
	CreatedAt        time.Time
}

// Repos groups the repositories a learner's data lives in.
type Repos struct {
	Words    WordRepo
	Sessions SessionRepo
	Recent   RecentRepo
}

// WordRepo manages per-word performance records.
type WordRepo interface {
	// WordRecords returns every record for a learner and language,
	// ordered by word.
	WordRecords(ctx context.Context, userID, language string) ([]vocab.WordRecord, error)

	// PutWord inserts or replaces a record.
	PutWord(ctx context.Context, userID, language string, rec vocab.WordRecord) error

	// RecordObservation applies an answered exercise to the word's record,
	// creating it if needed, and returns the updated record.
	RecordObservation(ctx context.Context, obs Observation) (vocab.WordRecord, error)
}

// SessionRepo manages finished session summaries.
type SessionRepo interface {
	// SaveSession stores a session and returns its ID.
	SaveSession(ctx context.Context, rec SessionRecord) (string, error)

	// RecentSessions returns up to n sessions, most recent first.
	// Stored difficulty values are sanitized on the way out.
	RecentSessions(ctx context.Context, userID, language string, n int) ([]difficulty.SessionSummary, error)

	// SessionCount returns the number of stored sessions.
	SessionCount(ctx context.Context, userID, language string) (int, error)
}

// RecentRepo manages the cross-session recently used word window.
type RecentRepo interface {
	// RecentWords returns up to n most recently used words, oldest first.
	RecentWords(ctx context.Context, userID, language string, n int) ([]string, error)

	// MarkUsed records words as used at the given time.
	MarkUsed(ctx context.Context, userID, language string, words []string, at time.Time) error

	// Prune deletes all but the keep most recently used words.
	Prune(ctx context.Context, userID, language string, keep int) error
}
