package difficulty

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/lexis/internal/logging"
)

// ErrInvalidLevel is returned when a value cannot be read as a Level.
var ErrInvalidLevel = errors.New("invalid difficulty level")

// DefaultLevel is used whenever an input cannot be read as a Level.
const DefaultLevel = Intermediate

// maxUnwrapDepth bounds how many nested wrapper objects Parse will open.
const maxUnwrapDepth = 4

// wrapperKeys are the object keys a wrapped difficulty may live under.
var wrapperKeys = []string{"difficulty", "value", "level"}

// Parse coerces a loosely typed value into a Level. It accepts strings,
// string pointers, byte slices, raw JSON, fmt.Stringers and objects that
// wrap the value under "difficulty", "value" or "level". Matching is
// case-insensitive and ignores surrounding whitespace and quotes.
// On failure it returns DefaultLevel and an error wrapping ErrInvalidLevel.
func Parse(v any) (Level, error) {
	return parse(v, 0)
}

func parse(v any, depth int) (Level, error) {
	if depth > maxUnwrapDepth {
		return DefaultLevel, fmt.Errorf("%w: nested too deeply", ErrInvalidLevel)
	}

	var s string
	switch x := v.(type) {
	case nil:
		return DefaultLevel, fmt.Errorf("%w: missing value", ErrInvalidLevel)
	case Level:
		s = string(x)
	case string:
		s = x
	case *string:
		if x == nil {
			return DefaultLevel, fmt.Errorf("%w: missing value", ErrInvalidLevel)
		}
		s = *x
	case json.RawMessage:
		var decoded any
		if err := json.Unmarshal(x, &decoded); err != nil {
			return DefaultLevel, fmt.Errorf("%w: %v", ErrInvalidLevel, err)
		}
		return parse(decoded, depth+1)
	case []byte:
		s = string(x)
	case map[string]any:
		for _, key := range wrapperKeys {
			if inner, ok := x[key]; ok {
				return parse(inner, depth+1)
			}
		}
		return DefaultLevel, fmt.Errorf("%w: object without difficulty field", ErrInvalidLevel)
	case map[string]string:
		for _, key := range wrapperKeys {
			if inner, ok := x[key]; ok {
				return parse(inner, depth+1)
			}
		}
		return DefaultLevel, fmt.Errorf("%w: object without difficulty field", ErrInvalidLevel)
	case fmt.Stringer:
		s = x.String()
	default:
		return DefaultLevel, fmt.Errorf("%w: unsupported type %T", ErrInvalidLevel, v)
	}

	lvl := Level(strings.ToLower(strings.Trim(strings.TrimSpace(s), `"'`)))
	if !lvl.Valid() {
		return DefaultLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return lvl, nil
}

// Sanitize is Parse for boundaries that must not fail: invalid input is
// logged as a warning and replaced with DefaultLevel.
func Sanitize(v any, log logrus.FieldLogger) Level {
	lvl, err := Parse(v)
	if err != nil {
		logging.OrDiscard(log).
			WithError(err).
			WithField("value", fmt.Sprintf("%v", v)).
			Warnf("unrecognized difficulty, using %s", DefaultLevel)
	}
	return lvl
}

// SanitizeLevel re-validates a Level that may have been built
// from an unchecked string, such as a value read from storage.
func SanitizeLevel(l Level, log logrus.FieldLogger) Level {
	if l.Valid() {
		return l
	}
	return Sanitize(string(l), log)
}
