package difficulty

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestLevel_NextPrevSaturate(t *testing.T) {
	tests := []struct {
		level      Level
		next, prev Level
	}{
		{Beginner, Intermediate, Beginner},
		{Intermediate, Advanced, Beginner},
		{Advanced, Advanced, Intermediate},
	}
	for _, tc := range tests {
		if got := tc.level.Next(); got != tc.next {
			t.Errorf("%s.Next() = %s, want %s", tc.level, got, tc.next)
		}
		if got := tc.level.Prev(); got != tc.prev {
			t.Errorf("%s.Prev() = %s, want %s", tc.level, got, tc.prev)
		}
	}
}

func TestLevel_Order(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		if levels[i-1].Index() >= levels[i].Index() {
			t.Errorf("%s should order before %s", levels[i-1], levels[i])
		}
	}
	if Level("expert").Index() != -1 {
		t.Error("invalid level should have index -1")
	}
}

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

func TestParse(t *testing.T) {
	adv := "Advanced"
	tests := []struct {
		name    string
		input   any
		want    Level
		wantErr bool
	}{
		{"plain", "beginner", Beginner, false},
		{"case and space", "  ADVANCED ", Advanced, false},
		{"quoted", `"intermediate"`, Intermediate, false},
		{"level type", Advanced, Advanced, false},
		{"pointer", &adv, Advanced, false},
		{"bytes", []byte("beginner"), Beginner, false},
		{"stringer", stringer{"Beginner"}, Beginner, false},
		{"wrapped difficulty", map[string]any{"difficulty": "advanced"}, Advanced, false},
		{"wrapped value", map[string]string{"value": "beginner"}, Beginner, false},
		{"nested wrappers", map[string]any{"difficulty": map[string]any{"level": "Advanced"}}, Advanced, false},
		{"raw json object", json.RawMessage(`{"value":"beginner"}`), Beginner, false},
		{"raw json string", json.RawMessage(`"advanced"`), Advanced, false},
		{"unknown string", "expert", Intermediate, true},
		{"empty", "", Intermediate, true},
		{"nil", nil, Intermediate, true},
		{"nil pointer", (*string)(nil), Intermediate, true},
		{"number", 3, Intermediate, true},
		{"object without key", map[string]any{"name": "advanced"}, Intermediate, true},
		{"bad raw json", json.RawMessage(`{`), Intermediate, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			assert.Equal(t, tc.want, got)
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidLevel), "err = %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse_DepthLimit(t *testing.T) {
	var v any = "advanced"
	for i := 0; i < maxUnwrapDepth+2; i++ {
		v = map[string]any{"difficulty": v}
	}
	got, err := Parse(v)
	assert.Equal(t, Intermediate, got)
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestSanitize_LogsWarning(t *testing.T) {
	logger, hook := logtest.NewNullLogger()

	got := Sanitize("legendary", logger)
	assert.Equal(t, Intermediate, got)
	if assert.Len(t, hook.Entries, 1) {
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		assert.Equal(t, "legendary", hook.LastEntry().Data["value"])
	}

	hook.Reset()
	assert.Equal(t, Advanced, Sanitize("advanced", logger))
	assert.Empty(t, hook.Entries)
}

func TestSanitize_NilLogger(t *testing.T) {
	assert.Equal(t, Intermediate, Sanitize(42, nil))
}
