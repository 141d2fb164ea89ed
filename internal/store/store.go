package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/lexis/internal/logging"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db  *sql.DB
	log logrus.FieldLogger
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema.
func Open(dsn string, log logrus.FieldLogger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows a single writer; one connection also keeps pragmas and
	// in-memory databases consistent across calls.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, log: logging.OrDiscard(log)}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Words returns a WordRepo backed by this store.
func (s *Store) Words() WordRepo {
	return &wordRepo{db: s.db}
}

// Sessions returns a SessionRepo backed by this store.
func (s *Store) Sessions() SessionRepo {
	return &sessionRepo{db: s.db, log: s.log}
}

// Recent returns a RecentRepo backed by this store.
func (s *Store) Recent() RecentRepo {
	return &recentRepo{db: s.db}
}

// Repos returns all repositories backed by this store.
func (s *Store) Repos() Repos {
	return Repos{Words: s.Words(), Sessions: s.Sessions(), Recent: s.Recent()}
}

// Reset deletes everything stored for a learner and language.
func (s *Store) Reset(ctx context.Context, userID, language string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"word_performance", "sessions", "recent_words"} {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM `+table+` WHERE user_id = ? AND language = ?`, userID, language,
		); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS word_performance (
		user_id TEXT NOT NULL,
		language TEXT NOT NULL,
		word_key TEXT NOT NULL,
		word TEXT NOT NULL,
		mastery_level INTEGER NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		correct_count INTEGER NOT NULL DEFAULT 0,
		next_review_due_at DATETIME,
		updated_at DATETIME NOT NULL,
		PRIMARY KEY (user_id, language, word_key),
		CHECK (correct_count <= review_count)
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		language TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		total_exercises INTEGER NOT NULL DEFAULT 0,
		correct_exercises INTEGER NOT NULL DEFAULT 0,
		duration_secs INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_user_language_created
		ON sessions (user_id, language, created_at);

	CREATE TABLE IF NOT EXISTS recent_words (
		user_id TEXT NOT NULL,
		language TEXT NOT NULL,
		word_key TEXT NOT NULL,
		used_at DATETIME NOT NULL,
		PRIMARY KEY (user_id, language, word_key)
	);
	`
	_, err := db.Exec(schema)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LEXIS_DB environment variable
// 2. $XDG_DATA_HOME/lexis/lexis.db
// 3. ~/.local/share/lexis/lexis.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LEXIS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lexis", "lexis.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
