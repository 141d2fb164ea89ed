package snapshot

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaURL identifies the snapshot schema inside the compiler.
const schemaURL = "schema://lexis-snapshot.json"

// definition is the JSON Schema of the snapshot document. Difficulty is
// deliberately loose; it is sanitized after validation.
var definition = map[string]any{
	"$schema":  "https://json-schema.org/draft/2020-12/schema",
	"type":     "object",
	"required": []any{"version", "user_id", "language"},
	"properties": map[string]any{
		"version":  map[string]any{"type": "integer", "const": CurrentVersion},
		"user_id":  map[string]any{"type": "string", "minLength": 1},
		"language": map[string]any{"type": "string", "minLength": 2},
		"words": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"word"},
				"properties": map[string]any{
					"word":               map[string]any{"type": "string", "minLength": 1},
					"mastery_level":      map[string]any{"type": "integer", "minimum": 0},
					"review_count":       map[string]any{"type": "integer", "minimum": 0},
					"correct_count":      map[string]any{"type": "integer", "minimum": 0},
					"next_review_due_at": map[string]any{"type": []any{"string", "null"}},
				},
			},
		},
		"sessions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"difficulty", "total_exercises", "correct_exercises", "created_at"},
				"properties": map[string]any{
					"difficulty":        map[string]any{"type": []any{"string", "object", "null"}},
					"total_exercises":   map[string]any{"type": "integer", "minimum": 0},
					"correct_exercises": map[string]any{"type": "integer", "minimum": 0},
					"created_at":        map[string]any{"type": "string"},
				},
			},
		},
		"recent_words": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
}

var (
	compiledOnce sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
)

// schema returns the compiled snapshot schema.
func schema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any).
		// Round-trip through JSON to normalize number types.
		defBytes, err := json.Marshal(definition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Validate checks raw against the snapshot schema.
// Returns *ValidationError on failure.
func Validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ValidationError{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	s, err := schema()
	if err != nil {
		return &ValidationError{Content: raw, Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := s.Validate(parsed); err != nil {
		return &ValidationError{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// ValidationError indicates a snapshot that does not conform to the schema.
type ValidationError struct {
	Content []byte
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid snapshot: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
