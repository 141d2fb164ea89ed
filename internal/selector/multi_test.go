package selector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/lexis/internal/difficulty"
	"github.com/abhisek/lexis/internal/wordlist"
)

func TestDistribute(t *testing.T) {
	partial := Config{NewWordRatio: 0.8, ReviewWordRatio: 0.2, StrugglingWordBoost: 2, MasteredWordPenalty: 0.2}

	tests := []struct {
		name  string
		count int
		cfg   Config
		want  Plan
	}{
		{"default n+1", 10, DefaultConfig(), Plan{Struggling: 1, Review: 7, Mastered: 1, New: 1}},
		{"new-word heavy", 10, partial, Plan{Struggling: 1, Review: 2, Mastered: 1, New: 6}},
		{"single word", 1, DefaultConfig(), Plan{New: 1}},
		{"zero", 0, DefaultConfig(), Plan{}},
		{
			"overshoot trims review first",
			4,
			Config{NewWordRatio: 0.6, ReviewWordRatio: 0.9, StrugglingWordBoost: 10, MasteredWordPenalty: 1},
			Plan{Struggling: 2, Mastered: 2},
		},
		{
			"new capped by ratio",
			10,
			Config{NewWordRatio: 0.3, ReviewWordRatio: 0.1},
			Plan{Review: 7, New: 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Distribute(tc.count, tc.cfg))
		})
	}
}

func TestDistribute_SumsToCount(t *testing.T) {
	configs := []Config{DefaultConfig(), RecommendConfig(10, 0), RecommendConfig(500, 30), {}}
	for i, cfg := range configs {
		for count := 1; count <= 50; count++ {
			p := Distribute(count, cfg)
			assert.Equal(t, count, p.Total(), "config %d count %d", i, count)
			assert.GreaterOrEqual(t, p.New, 0)
			assert.GreaterOrEqual(t, p.Review, 0)
			if cfg.NPlusOneMode {
				assert.LessOrEqual(t, p.New, 1, "config %d count %d", i, count)
			}
		}
	}
}

func pool(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return out
}

func stages(sel []Selection) map[Stage]int {
	out := make(map[Stage]int)
	for _, s := range sel {
		out[s.Stage]++
	}
	return out
}

func assertDistinct(t *testing.T, sel []Selection) {
	t.Helper()
	seen := make(map[string]bool)
	for _, s := range sel {
		assert.False(t, seen[key(s.Word)], "duplicate %q", s.Word)
		seen[key(s.Word)] = true
	}
}

func TestSelectWords_FollowsPlan(t *testing.T) {
	s := newScripted(nil)
	got := s.SelectWords(Context{
		Struggling:   pool("s", 3),
		DueForReview: pool("r", 10),
		Mastered:     pool("m", 3),
		Difficulty:   difficulty.Beginner,
		Language:     "es",
	}, 10, DefaultConfig())

	assert.Len(t, got, 10)
	assertDistinct(t, got)
	assert.Equal(t, map[Stage]int{StageStruggling: 1, StageReview: 7, StageMastered: 1, StageNew: 1}, stages(got))
}

func TestSelectWords_BackfillsWithNewWords(t *testing.T) {
	s := newScripted(nil)
	got := s.SelectWords(Context{
		Struggling:   pool("s", 1),
		DueForReview: pool("r", 1),
		Difficulty:   difficulty.Beginner,
		Language:     "es",
	}, 10, DefaultConfig())

	assert.Len(t, got, 10)
	assertDistinct(t, got)
	assert.Equal(t, map[Stage]int{StageStruggling: 1, StageReview: 1, StageNew: 8}, stages(got))
}

func TestSelectWords_NoDuplicatesAcrossPools(t *testing.T) {
	s := newScripted(nil)
	got := s.SelectWords(Context{
		Struggling:   []string{"casa"},
		DueForReview: []string{"Casa", "perro"},
		Mastered:     []string{"perro"},
		Difficulty:   difficulty.Beginner,
		Language:     "es",
	}, 6, Config{StrugglingWordBoost: 4, ReviewWordRatio: 0.5, MasteredWordPenalty: 0.4, NewWordRatio: 1})

	assert.Len(t, got, 6)
	assertDistinct(t, got)
}

func TestSelectWords_RespectsCooldownAndKnown(t *testing.T) {
	s := newScripted(nil)
	got := s.SelectWords(Context{
		DueForReview: []string{"mesa", "silla"},
		SessionUsed:  set("mesa"),
		RecentlyUsed: set("hola"),
		Known:        set("casa"),
		Difficulty:   difficulty.Beginner,
		Language:     "es",
	}, 5, DefaultConfig())

	assert.Len(t, got, 5)
	for _, sel := range got {
		assert.NotContains(t, []string{"mesa", "hola", "casa"}, sel.Word)
	}
}

func TestSelectWords_ExhaustedSources(t *testing.T) {
	catalog := wordlist.NewStaticCatalog(map[string]wordlist.Lists{
		"es": {
			Tiers:     map[difficulty.Level][]string{difficulty.Beginner: {"uno"}},
			Emergency: []string{"hola", "uno", "gracias"},
		},
	})
	s := New(catalog, WithRand(&scriptedRand{}))

	got := s.SelectWords(Context{Difficulty: difficulty.Beginner, Language: "es"}, 5, DefaultConfig())
	assert.Equal(t, []Selection{
		{Word: "uno", Stage: StageNew},
		{Word: "hola", Stage: StageEmergency},
		{Word: "gracias", Stage: StageEmergency},
	}, got)
}

func TestSelectWords_EverythingInCooldownStillReturnsOne(t *testing.T) {
	catalog := wordlist.NewStaticCatalog(map[string]wordlist.Lists{
		"es": {Emergency: []string{"hola"}},
	})
	s := New(catalog, WithRand(&scriptedRand{}))

	got := s.SelectWords(Context{Language: "es", SessionUsed: set("hola")}, 3, DefaultConfig())
	assert.Equal(t, []Selection{{Word: "hola", Stage: StageEmergency}}, got)
	assert.Nil(t, s.SelectWords(Context{}, 0, DefaultConfig()))
}

func TestRecommendConfig(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		struggling int
		want       Config
	}{
		{"small vocabulary", 20, 0, Config{0.8, 0.2, 2.0, 0.2, false}},
		{"medium vocabulary", 100, 0, DefaultConfig()},
		{"large vocabulary", 500, 5, Config{0.4, 0.5, 2.0, 0.3, true}},
		{"medium with backlog", 100, 11, Config{0.5, 0.4, 3.0, 0.2, true}},
		{"large with backlog", 500, 40, Config{0.3, 0.6, 3.0, 0.3, true}},
		{"boundary at 50", 50, 10, DefaultConfig()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RecommendConfig(tc.size, tc.struggling)
			assert.InDelta(t, tc.want.NewWordRatio, got.NewWordRatio, 1e-9)
			assert.InDelta(t, tc.want.ReviewWordRatio, got.ReviewWordRatio, 1e-9)
			assert.Equal(t, tc.want.StrugglingWordBoost, got.StrugglingWordBoost)
			assert.Equal(t, tc.want.MasteredWordPenalty, got.MasteredWordPenalty)
			assert.Equal(t, tc.want.NPlusOneMode, got.NPlusOneMode)
		})
	}
}
