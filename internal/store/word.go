package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/lexis/internal/mastery"
	"github.com/abhisek/lexis/internal/vocab"
)

// ErrEmptyWord is returned when a word is blank.
var ErrEmptyWord = errors.New("empty word")

type wordRepo struct {
	db *sql.DB
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func wordKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

func (r *wordRepo) WordRecords(ctx context.Context, userID, language string) ([]vocab.WordRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT word, mastery_level, review_count, correct_count, next_review_due_at
		 FROM word_performance WHERE user_id = ? AND language = ? ORDER BY word_key`,
		userID, language,
	)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var records []vocab.WordRecord
	for rows.Next() {
		var rec vocab.WordRecord
		var due sql.NullTime
		if err := rows.Scan(&rec.Word, &rec.MasteryLevel, &rec.ReviewCount, &rec.CorrectCount, &due); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		if due.Valid {
			t := due.Time
			rec.NextReviewDueAt = &t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *wordRepo) PutWord(ctx context.Context, userID, language string, rec vocab.WordRecord) error {
	return putWord(ctx, r.db, userID, language, rec, time.Now())
}

func (r *wordRepo) RecordObservation(ctx context.Context, obs Observation) (vocab.WordRecord, error) {
	if wordKey(obs.Word) == "" {
		return vocab.WordRecord{}, ErrEmptyWord
	}
	at := obs.At
	if at.IsZero() {
		at = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return vocab.WordRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rec, err := getWord(ctx, tx, obs.UserID, obs.Language, obs.Word)
	if err != nil {
		return vocab.WordRecord{}, err
	}

	p := mastery.Progress{
		Level:           rec.MasteryLevel,
		ReviewCount:     rec.ReviewCount,
		CorrectCount:    rec.CorrectCount,
		NextReviewDueAt: rec.NextReviewDueAt,
	}
	p.Record(obs.Correct, at.UTC())
	rec.MasteryLevel = p.Level
	rec.ReviewCount = p.ReviewCount
	rec.CorrectCount = p.CorrectCount
	rec.NextReviewDueAt = p.NextReviewDueAt

	if err := putWord(ctx, tx, obs.UserID, obs.Language, rec, at); err != nil {
		return vocab.WordRecord{}, err
	}
	if err := tx.Commit(); err != nil {
		return vocab.WordRecord{}, fmt.Errorf("commit: %w", err)
	}
	return rec, nil
}

// getWord loads a record, returning a fresh one for unknown words.
func getWord(ctx context.Context, q queryer, userID, language, word string) (vocab.WordRecord, error) {
	rec := vocab.WordRecord{Word: strings.TrimSpace(word)}
	var due sql.NullTime
	err := q.QueryRowContext(ctx,
		`SELECT word, mastery_level, review_count, correct_count, next_review_due_at
		 FROM word_performance WHERE user_id = ? AND language = ? AND word_key = ?`,
		userID, language, wordKey(word),
	).Scan(&rec.Word, &rec.MasteryLevel, &rec.ReviewCount, &rec.CorrectCount, &due)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, nil
	}
	if err != nil {
		return vocab.WordRecord{}, fmt.Errorf("get word %q: %w", word, err)
	}
	if due.Valid {
		t := due.Time
		rec.NextReviewDueAt = &t
	}
	return rec, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func putWord(ctx context.Context, db execer, userID, language string, rec vocab.WordRecord, now time.Time) error {
	key := wordKey(rec.Word)
	if key == "" {
		return ErrEmptyWord
	}
	// Keep the stored counters consistent with the table check.
	reviews := max(0, rec.ReviewCount)
	correct := min(max(0, rec.CorrectCount), reviews)

	var due any
	if rec.NextReviewDueAt != nil {
		due = rec.NextReviewDueAt.UTC()
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO word_performance
		 (user_id, language, word_key, word, mastery_level, review_count, correct_count, next_review_due_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, language, word_key) DO UPDATE SET
		   word = excluded.word,
		   mastery_level = excluded.mastery_level,
		   review_count = excluded.review_count,
		   correct_count = excluded.correct_count,
		   next_review_due_at = excluded.next_review_due_at,
		   updated_at = excluded.updated_at`,
		userID, language, key, strings.TrimSpace(rec.Word), max(0, rec.MasteryLevel), reviews, correct, due, now.UTC(),
	)
	if err != nil {
		return fmt.Errorf("put word %q: %w", rec.Word, err)
	}
	return nil
}
