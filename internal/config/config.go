package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/abhisek/lexis/internal/difficulty"
	"github.com/abhisek/lexis/internal/evaluate"
	"github.com/abhisek/lexis/internal/logging"
	"github.com/abhisek/lexis/internal/selector"
	"github.com/abhisek/lexis/internal/session"
)

// EnvPrefix prefixes every environment override, e.g. LEXIS_LOG_LEVEL.
const EnvPrefix = "LEXIS"

// Config holds all configuration for lexis.
type Config struct {
	DB         DBConfig             `mapstructure:"db"`
	Log        logging.Config       `mapstructure:"log"`
	Learner    LearnerConfig        `mapstructure:"learner"`
	Selection  SelectionConfig      `mapstructure:"selection"`
	Evaluation EvaluationConfig     `mapstructure:"evaluation"`
	Difficulty difficulty.Thresholds `mapstructure:"difficulty"`
}

// DBConfig holds database configuration. An empty path resolves to the
// default data directory.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

// LearnerConfig identifies whose data commands operate on.
type LearnerConfig struct {
	UserID   string `mapstructure:"user_id"`
	Language string `mapstructure:"language"`
}

// SelectionConfig holds word selection configuration.
type SelectionConfig struct {
	selector.Probabilities `mapstructure:",squash"`

	// RecentWindow is the size of the cross-session cooldown window.
	RecentWindow int `mapstructure:"recent_window"`
	// Words is how many target words a plan asks for.
	Words int `mapstructure:"words"`
	// Multi tunes multi-word selection. When Adaptive is set, it is
	// replaced by a recommendation derived from the learner's vocabulary.
	Multi    selector.Config `mapstructure:"multi"`
	Adaptive bool            `mapstructure:"adaptive"`
}

// EvaluationConfig holds answer evaluation configuration.
type EvaluationConfig struct {
	Threshold float64 `mapstructure:"threshold"`
	Mode      string  `mapstructure:"mode"`
}

// Load reads configuration from the file at path (optional), then
// environment variables, over built-in defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	if err := setDefaults(v); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lexis")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lexis")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Log:     logging.Config{Level: "info", Format: "text"},
		Learner: LearnerConfig{UserID: "default", Language: "es"},
		Selection: SelectionConfig{
			Probabilities: selector.DefaultProbabilities(),
			RecentWindow:  session.DefaultRecentWindow,
			Words:         10,
			Multi:         selector.DefaultConfig(),
			Adaptive:      true,
		},
		Evaluation: EvaluationConfig{
			Threshold: evaluate.DefaultThreshold,
			Mode:      string(evaluate.ModeWord),
		},
		Difficulty: difficulty.DefaultThresholds(),
	}
}

// Validate checks values that have no safe fallback.
func (c *Config) Validate() error {
	if c.Evaluation.Threshold <= 0 || c.Evaluation.Threshold > 1 {
		return fmt.Errorf("evaluation.threshold must be in (0, 1], got %v", c.Evaluation.Threshold)
	}
	for name, p := range map[string]float64{
		"selection.struggling_probability": c.Selection.Struggling,
		"selection.review_probability":     c.Selection.Review,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", name, p)
		}
	}
	if c.Selection.RecentWindow < 0 {
		return fmt.Errorf("selection.recent_window must not be negative, got %d", c.Selection.RecentWindow)
	}
	if c.Learner.UserID == "" {
		return errors.New("learner.user_id must not be empty")
	}
	return nil
}

// setDefaults registers every key with its default so environment
// overrides apply to all of them.
func setDefaults(v *viper.Viper) error {
	var defaults map[string]any
	if err := mapstructure.Decode(*Default(), &defaults); err != nil {
		return fmt.Errorf("flatten defaults: %w", err)
	}
	for key, val := range flatten("", defaults) {
		v.SetDefault(key, val)
	}
	return nil
}

// flatten turns nested maps into dotted keys.
func flatten(prefix string, m map[string]any) map[string]any {
	out := make(map[string]any)
	for k, val := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := val.(map[string]any); ok {
			for nk, nv := range flatten(key, nested) {
				out[nk] = nv
			}
			continue
		}
		out[key] = val
	}
	return out
}
