package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/lexis/internal/difficulty"
	"github.com/abhisek/lexis/internal/logging"
	"github.com/abhisek/lexis/internal/vocab"
)

// CurrentVersion is the snapshot format version.
const CurrentVersion = 1

// Snapshot is a learner's vocabulary and session history for one
// language, as exchanged with other systems.
type Snapshot struct {
	UserID      string
	Language    string
	Words       []vocab.WordRecord
	Sessions    []difficulty.SessionSummary
	RecentWords []string
}

type document struct {
	Version     int          `json:"version"`
	UserID      string       `json:"user_id"`
	Language    string       `json:"language"`
	Words       []wordDoc    `json:"words,omitempty"`
	Sessions    []sessionDoc `json:"sessions,omitempty"`
	RecentWords []string     `json:"recent_words,omitempty"`
}

type wordDoc struct {
	Word            string     `json:"word"`
	MasteryLevel    int        `json:"mastery_level"`
	ReviewCount     int        `json:"review_count"`
	CorrectCount    int        `json:"correct_count"`
	NextReviewDueAt *time.Time `json:"next_review_due_at,omitempty"`
}

type sessionDoc struct {
	Difficulty       json.RawMessage `json:"difficulty"`
	TotalExercises   int             `json:"total_exercises"`
	CorrectExercises int             `json:"correct_exercises"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Decode validates raw and converts it to a Snapshot. Difficulty values
// in any accepted shape are sanitized to a Level, and counters where
// correct exceeds total are clamped; both are logged as warnings.
func Decode(raw []byte, log logrus.FieldLogger) (*Snapshot, error) {
	log = logging.OrDiscard(log)
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ValidationError{Content: raw, Err: fmt.Errorf("decode: %w", err)}
	}

	snap := &Snapshot{
		UserID:      doc.UserID,
		Language:    doc.Language,
		RecentWords: doc.RecentWords,
	}

	for _, w := range doc.Words {
		rec := vocab.WordRecord{
			Word:            w.Word,
			MasteryLevel:    w.MasteryLevel,
			ReviewCount:     w.ReviewCount,
			CorrectCount:    w.CorrectCount,
			NextReviewDueAt: w.NextReviewDueAt,
		}
		if rec.CorrectCount > rec.ReviewCount {
			log.WithField("word", rec.Word).Warnf("correct count %d exceeds review count %d, clamping",
				rec.CorrectCount, rec.ReviewCount)
			rec.CorrectCount = rec.ReviewCount
		}
		snap.Words = append(snap.Words, rec)
	}

	for i, s := range doc.Sessions {
		sum := difficulty.SessionSummary{
			Level:            difficulty.Sanitize(s.Difficulty, log.WithField("session", i)),
			TotalExercises:   s.TotalExercises,
			CorrectExercises: s.CorrectExercises,
			CreatedAt:        s.CreatedAt,
		}
		if sum.CorrectExercises > sum.TotalExercises {
			log.WithField("session", i).Warnf("correct exercises %d exceed total %d, clamping",
				sum.CorrectExercises, sum.TotalExercises)
			sum.CorrectExercises = sum.TotalExercises
		}
		snap.Sessions = append(snap.Sessions, sum)
	}

	return snap, nil
}

// Encode renders s in the current format.
func Encode(s *Snapshot) ([]byte, error) {
	doc := document{
		Version:     CurrentVersion,
		UserID:      s.UserID,
		Language:    s.Language,
		RecentWords: s.RecentWords,
	}
	for _, w := range s.Words {
		doc.Words = append(doc.Words, wordDoc{
			Word:            w.Word,
			MasteryLevel:    w.MasteryLevel,
			ReviewCount:     w.ReviewCount,
			CorrectCount:    w.CorrectCount,
			NextReviewDueAt: w.NextReviewDueAt,
		})
	}
	for _, sess := range s.Sessions {
		lvl, err := json.Marshal(string(sess.Level))
		if err != nil {
			return nil, fmt.Errorf("encode difficulty: %w", err)
		}
		doc.Sessions = append(doc.Sessions, sessionDoc{
			Difficulty:       lvl,
			TotalExercises:   sess.TotalExercises,
			CorrectExercises: sess.CorrectExercises,
			CreatedAt:        sess.CreatedAt,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}
