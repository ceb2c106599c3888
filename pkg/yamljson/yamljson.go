// Package yamljson converts YAML documents into JSON-compatible values.
package yamljson

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Normalize rewrites maps with non-string keys (which YAML allows and JSON
// does not) into map[string]any, recursively.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for key, value := range t {
			t[key] = Normalize(value)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for key, value := range t {
			out[fmt.Sprint(key)] = Normalize(value)
		}
		return out
	case []any:
		for i, value := range t {
			t[i] = Normalize(value)
		}
		return t
	default:
		return v
	}
}

// Unmarshal decodes a YAML document into a JSON-compatible value.
func Unmarshal(raw []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return Normalize(doc), nil
}

// ToJSON re-encodes a YAML document as indented JSON.
func ToJSON(raw []byte) ([]byte, error) {
	doc, err := Unmarshal(raw)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(out, '\n'), nil
}
