package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hola", "h__a"},
		{"sol", "s__"},
		{"no", "n_"},
		{"sí", "s_"},
		{"niño", "n__o"},
		{"sin embargo", "s__ e_____o"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, maskWord(tc.in), "maskWord(%q)", tc.in)
	}
}

// run executes the root command with a fresh database and config.
func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--db", filepath.Join(t.TempDir(), "lexis.db")}, args...))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCheckCommand(t *testing.T) {
	out := run(t, "", "check", "gatos", "--expect", "gato", "--mode", "word")
	assert.Contains(t, out, "✓ good 80%")
}

func TestPracticeCommand(t *testing.T) {
	out := run(t, "hola\ncasa\n", "practice", "--count", "3")
	assert.Contains(t, out, "Exercise 1/3")
	assert.Contains(t, out, "(input closed)")
	assert.Contains(t, out, "Summary: 2/2 correct")
}
