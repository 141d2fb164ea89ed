package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lexis/internal/store"
)

// Import writes s into repos. Word records replace existing ones,
// sessions are appended and recent words are marked used at now in
// snapshot order.
func Import(ctx context.Context, repos store.Repos, s *Snapshot, now time.Time) error {
	for _, w := range s.Words {
		if err := repos.Words.PutWord(ctx, s.UserID, s.Language, w); err != nil {
			return fmt.Errorf("import word %q: %w", w.Word, err)
		}
	}
	for _, sess := range s.Sessions {
		if _, err := repos.Sessions.SaveSession(ctx, store.SessionRecord{
			UserID:           s.UserID,
			Language:         s.Language,
			Level:            sess.Level,
			TotalExercises:   sess.TotalExercises,
			CorrectExercises: sess.CorrectExercises,
			CreatedAt:        sess.CreatedAt,
		}); err != nil {
			return fmt.Errorf("import session: %w", err)
		}
	}
	return repos.Recent.MarkUsed(ctx, s.UserID, s.Language, s.RecentWords, now)
}

// Export reads everything stored for a learner and language.
func Export(ctx context.Context, repos store.Repos, userID, language string) (*Snapshot, error) {
	words, err := repos.Words.WordRecords(ctx, userID, language)
	if err != nil {
		return nil, err
	}
	sessions, err := repos.Sessions.RecentSessions(ctx, userID, language, 0)
	if err != nil {
		return nil, err
	}
	recent, err := repos.Recent.RecentWords(ctx, userID, language, 0)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		UserID:      userID,
		Language:    language,
		Words:       words,
		Sessions:    sessions,
		RecentWords: recent,
	}, nil
}
