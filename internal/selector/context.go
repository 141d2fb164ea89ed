package selector

import (
	"strings"

	"github.com/abhisek/lexis/internal/difficulty"
)

// Context is the per-call input to the selector. It is built fresh from
// store snapshots for every exercise and discarded afterwards.
type Context struct {
	// Candidate pools from the vocabulary classifier.
	Struggling   []string
	DueForReview []string
	Mastered     []string

	// SessionUsed holds words already used in this session.
	SessionUsed map[string]bool
	// RecentlyUsed holds words used in recent sessions.
	RecentlyUsed map[string]bool
	// Known holds every word the learner has already met. New-word
	// selection skips these.
	Known map[string]bool

	Difficulty difficulty.Level
	Language   string

	// Fallback overrides the catalog's frequency tiers when set.
	Fallback map[difficulty.Level][]string
}

// key is the case-insensitive identity used for every set lookup.
func key(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// lowerSet merges sets into one keyed by key().
func lowerSet(sets ...map[string]bool) map[string]bool {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make(map[string]bool, n)
	for _, s := range sets {
		for w, ok := range s {
			if ok {
				out[key(w)] = true
			}
		}
	}
	return out
}

// cooldown returns the words excluded from every stage.
func (c Context) cooldown() map[string]bool {
	return lowerSet(c.SessionUsed, c.RecentlyUsed)
}

// excluded returns cooldown plus known words, the exclusion for new words.
func (c Context) excluded() map[string]bool {
	return lowerSet(c.SessionUsed, c.RecentlyUsed, c.Known)
}
