package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the shape every normalized question must satisfy before it
// reaches the engine.
const bankSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "stem", "options", "answer"],
		"properties": {
			"id":          {"type": "string", "minLength": 1},
			"stem":        {"type": "string"},
			"options":     {"type": "array", "items": {"type": "string"}},
			"answer":      {"type": "string", "pattern": "^[A-Za-z]?$"},
			"explanation": {"type": "string"},
			"category":    {"type": "string"}
		}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidateBank checks a normalized bank against the question schema.
func ValidateBank(b Bank) error {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(bankSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://bank.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://bank.json")
	})
	if compileErr != nil {
		return compileErr
	}

	// The validator wants a parsed JSON value, not Go structs.
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal bank: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("reparse bank: %w", err)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
