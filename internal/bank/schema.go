package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://question-bank.json"

// questionSchema describes a single bank entry.
var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{"type": "string", "minLength": 1},
		"text":     map[string]any{"type": "string", "minLength": 1},
		"options": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items":    map[string]any{"type": "string"},
		},
		"type": map[string]any{
			"type": "string",
			"enum": []any{string(TypeSingle), string(TypeMultiple)},
		},
		"answer": map[string]any{
			"oneOf": []any{
				map[string]any{"type": "integer", "minimum": 0},
				map[string]any{
					"type":        "array",
					"minItems":    1,
					"uniqueItems": true,
					"items":       map[string]any{"type": "integer", "minimum": 0},
				},
			},
		},
	},
	"required": []any{"options", "type", "answer"},
	"anyOf": []any{
		map[string]any{"required": []any{"question"}},
		map[string]any{"required": []any{"text"}},
	},
	"if": map[string]any{
		"properties": map[string]any{"type": map[string]any{"const": string(TypeSingle)}},
	},
	"then": map[string]any{
		"properties": map[string]any{"answer": map[string]any{"type": "integer"}},
	},
	"else": map[string]any{
		"properties": map[string]any{"answer": map[string]any{"type": "array"}},
	},
}

// bankSchema accepts either a bare array of questions or an object that
// wraps the array with a title and format version.
var bankSchema = map[string]any{
	"$defs": map[string]any{"question": questionSchema},
	"oneOf": []any{
		map[string]any{
			"type":  "array",
			"items": map[string]any{"$ref": "#/$defs/question"},
		},
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"format": map[string]any{"type": "string"},
				"title":  map[string]any{"type": "string"},
				"questions": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/question"},
				},
			},
			"required": []any{"questions"},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles bankSchema on first use.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants plain JSON values, not Go ints.
		raw, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateSchema checks a decoded document (plain JSON values) against
// the bank schema.
func validateSchema(doc any) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
