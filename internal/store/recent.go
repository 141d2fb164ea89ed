package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"
)

type recentRepo struct {
	db *sql.DB
}

func (r *recentRepo) RecentWords(ctx context.Context, userID, language string, n int) ([]string, error) {
	query := `SELECT word_key FROM recent_words WHERE user_id = ? AND language = ?
		 ORDER BY used_at DESC, word_key`
	args := []any{userID, language}
	if n > 0 {
		query += ` LIMIT ?`
		args = append(args, n)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan recent word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Oldest first.
	slices.Reverse(words)
	return words, nil
}

func (r *recentRepo) MarkUsed(ctx context.Context, userID, language string, words []string, at time.Time) error {
	if len(words) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for i, w := range words {
		k := wordKey(w)
		if k == "" {
			continue
		}
		// Later words in the slice count as used later.
		usedAt := at.UTC().Add(time.Duration(i) * time.Millisecond)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recent_words (user_id, language, word_key, used_at) VALUES (?, ?, ?, ?)
			 ON CONFLICT (user_id, language, word_key) DO UPDATE SET used_at = excluded.used_at`,
			userID, language, k, usedAt,
		); err != nil {
			return fmt.Errorf("mark %q used: %w", w, err)
		}
	}
	return tx.Commit()
}

func (r *recentRepo) Prune(ctx context.Context, userID, language string, keep int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM recent_words WHERE user_id = ? AND language = ? AND word_key NOT IN (
			SELECT word_key FROM recent_words WHERE user_id = ? AND language = ?
			ORDER BY used_at DESC, word_key LIMIT ?
		)`,
		userID, language, userID, language, max(0, keep),
	)
	if err != nil {
		return fmt.Errorf("prune recent words: %w", err)
	}
	return nil
}
