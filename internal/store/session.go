package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/lexis/internal/difficulty"
)

type sessionRepo struct {
	db  *sql.DB
	log logrus.FieldLogger
}

func (r *sessionRepo) SaveSession(ctx context.Context, rec SessionRecord) (string, error) {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions
		 (id, user_id, language, difficulty, total_exercises, correct_exercises, duration_secs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, rec.UserID, rec.Language, string(rec.Level),
		max(0, rec.TotalExercises), max(0, rec.CorrectExercises),
		int64(rec.Duration/time.Second), created.UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return id, nil
}

func (r *sessionRepo) RecentSessions(ctx context.Context, userID, language string, n int) ([]difficulty.SessionSummary, error) {
	query := `SELECT difficulty, total_exercises, correct_exercises, created_at
		 FROM sessions WHERE user_id = ? AND language = ?
		 ORDER BY created_at DESC, id`
	args := []any{userID, language}
	if n > 0 {
		query += ` LIMIT ?`
		args = append(args, n)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []difficulty.SessionSummary
	for rows.Next() {
		var raw string
		var s difficulty.SessionSummary
		if err := rows.Scan(&raw, &s.TotalExercises, &s.CorrectExercises, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.Level = difficulty.Sanitize(raw, r.log)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *sessionRepo) SessionCount(ctx context.Context, userID, language string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sessions WHERE user_id = ? AND language = ?`,
		userID, language,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
