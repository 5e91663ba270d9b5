package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// CompileSchema compiles a JSON Schema document for output validation.
func CompileSchema(raw []byte) (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// MustCompileSchema compiles a schema or panics. For package-level
// schema constants that are known valid.
func MustCompileSchema(raw string) *jsonschema.Schema {
	schema, err := CompileSchema([]byte(raw))
	if err != nil {
		panic(err)
	}
	return schema
}

// ValidateJSON validates a raw JSON document against a compiled schema.
func ValidateJSON(schema *jsonschema.Schema, raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal output: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return err
	}
	return nil
}

// ExtractJSON pulls the JSON document out of a completion. Models wrap
// output in markdown fences or prose despite instructions; take the
// outermost {...} or [...] span and require it to parse.
func ExtractJSON(text string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(text)

	start := strings.IndexAny(trimmed, "{[")
	if start < 0 {
		return nil, fmt.Errorf("no JSON document in completion")
	}
	var end int
	if trimmed[start] == '{' {
		end = strings.LastIndex(trimmed, "}")
	} else {
		end = strings.LastIndex(trimmed, "]")
	}
	if end <= start {
		return nil, fmt.Errorf("unterminated JSON document in completion")
	}

	candidate := trimmed[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return nil, fmt.Errorf("completion is not valid JSON")
	}
	return json.RawMessage(candidate), nil
}
