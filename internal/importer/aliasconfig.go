package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// aliasOverrideSchema constrains a user-supplied alias override file: an
// object keyed by semantic field id, each value a non-empty list of headers.
var aliasOverrideSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"name":      aliasListProp(),
		"address":   aliasListProp(),
		"phone":     aliasListProp(),
		"services":  aliasListProp(),
		"price":     aliasListProp(),
		"nextDue":   aliasListProp(),
		"frequency": aliasListProp(),
		"notes":     aliasListProp(),
		"balance":   aliasListProp(),
	},
}

func aliasListProp() map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    map[string]any{"type": "string", "minLength": 1},
	}
}

// LoadAliasOverrides reads a JSON alias override file, validates it against
// the schema, and returns the per-field header lists. Overrides are matched
// ahead of the built-in table, so operators can teach the importer a new
// spreadsheet layout without a rebuild.
func LoadAliasOverrides(path string) (map[Field][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias overrides: %w", err)
	}
	if err := validateAliasOverrides(data); err != nil {
		return nil, err
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal alias overrides: %w", err)
	}

	out := make(map[Field][]string, len(raw))
	for k, v := range raw {
		out[Field(k)] = v
	}
	return out, nil
}

// validateAliasOverrides validates data against aliasOverrideSchema.
func validateAliasOverrides(data []byte) error {
	b, err := json.Marshal(aliasOverrideSchema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("aliases.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("aliases.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal overrides: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("overrides do not match schema: %w", err)
	}
	return nil
}

// WithOverrides returns a resolver whose override headers are tried before
// the built-in aliases for each field.
func (r *ColumnResolver) WithOverrides(overrides map[Field][]string) *ColumnResolver {
	if len(overrides) == 0 {
		return r
	}
	merged := make(map[Field][]string, len(r.aliases))
	for field, names := range r.aliases {
		merged[field] = append(append([]string{}, overrides[field]...), names...)
	}
	return &ColumnResolver{aliases: merged}
}
