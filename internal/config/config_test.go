package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexis/internal/difficulty"
	"github.com/abhisek/lexis/internal/selector"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, difficulty.DefaultThresholds(), cfg.Difficulty)
	assert.Equal(t, selector.DefaultConfig(), cfg.Selection.Multi)
	assert.Equal(t, 0.7, cfg.Evaluation.Threshold)
	assert.Equal(t, "es", cfg.Learner.Language)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
learner:
  user_id: ana
  language: fr
selection:
  struggling_probability: 0.5
  recent_window: 30
  multi:
    n_plus_one_mode: false
difficulty:
  promote_accuracy: 0.9
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "ana", cfg.Learner.UserID)
	assert.Equal(t, "fr", cfg.Learner.Language)
	assert.Equal(t, 0.5, cfg.Selection.Struggling)
	assert.Equal(t, 0.4, cfg.Selection.Review)
	assert.Equal(t, 30, cfg.Selection.RecentWindow)
	assert.False(t, cfg.Selection.Multi.NPlusOneMode)
	assert.Equal(t, 0.6, cfg.Selection.Multi.NewWordRatio)
	assert.Equal(t, 0.9, cfg.Difficulty.PromoteAccuracy)
	assert.Equal(t, 0.6, cfg.Difficulty.DemoteAccuracy)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LEXIS_LOG_LEVEL", "warn")
	t.Setenv("LEXIS_EVALUATION_THRESHOLD", "0.8")
	t.Setenv("LEXIS_DIFFICULTY_COLD_START_SESSIONS", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 0.8, cfg.Evaluation.Threshold)
	assert.Equal(t, 3, cfg.Difficulty.ColdStartSessions)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"threshold zero", "evaluation:\n  threshold: 0\n"},
		{"threshold above one", "evaluation:\n  threshold: 1.5\n"},
		{"probability", "selection:\n  review_probability: 2\n"},
		{"window", "selection:\n  recent_window: -1\n"},
		{"user", "learner:\n  user_id: \"\"\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestFlatten(t *testing.T) {
	got := flatten("", map[string]any{
		"a": 1,
		"b": map[string]any{"c": 2, "d": map[string]any{"e": 3}},
	})
	assert.Equal(t, map[string]any{"a": 1, "b.c": 2, "b.d.e": 3}, got)
}
