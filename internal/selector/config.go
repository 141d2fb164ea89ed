package selector

// Config tunes multi-word selection.
type Config struct {
	// NewWordRatio caps the share of new words when NPlusOneMode is off.
	NewWordRatio float64 `mapstructure:"new_word_ratio" json:"new_word_ratio"`
	// ReviewWordRatio is the share of due-for-review words.
	ReviewWordRatio float64 `mapstructure:"review_word_ratio" json:"review_word_ratio"`
	// StrugglingWordBoost scales the 5% base share of struggling words.
	StrugglingWordBoost float64 `mapstructure:"struggling_word_boost" json:"struggling_word_boost"`
	// MasteredWordPenalty scales the 50% base share of mastered words.
	MasteredWordPenalty float64 `mapstructure:"mastered_word_penalty" json:"mastered_word_penalty"`
	// NPlusOneMode allows at most one new word per selection.
	NPlusOneMode bool `mapstructure:"n_plus_one_mode" json:"n_plus_one_mode"`
}

const (
	baseStrugglingShare = 0.05
	baseMasteredShare   = 0.5
)

// DefaultConfig returns the standard multi-word configuration.
func DefaultConfig() Config {
	return Config{
		NewWordRatio:        0.6,
		ReviewWordRatio:     0.3,
		StrugglingWordBoost: 2.0,
		MasteredWordPenalty: 0.2,
		NPlusOneMode:        true,
	}
}

// RecommendConfig derives a configuration from the learner's vocabulary
// size and struggling-word count. Small vocabularies lean toward new
// words; large ones and big struggling backlogs lean toward review.
func RecommendConfig(vocabularySize, strugglingWords int) Config {
	cfg := DefaultConfig()
	switch {
	case vocabularySize < 50:
		cfg.NewWordRatio = 0.8
		cfg.ReviewWordRatio = 0.2
		cfg.NPlusOneMode = false
	case vocabularySize >= 200:
		cfg.NewWordRatio = 0.4
		cfg.ReviewWordRatio = 0.5
		cfg.MasteredWordPenalty = 0.3
	}

	if strugglingWords > 10 {
		cfg.ReviewWordRatio = min(1.0, round2(cfg.ReviewWordRatio+0.1))
		cfg.NewWordRatio = max(0.1, round2(cfg.NewWordRatio-0.1))
		cfg.StrugglingWordBoost = 3.0
	}
	return cfg
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
