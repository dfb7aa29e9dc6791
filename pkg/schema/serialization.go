package schema

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// flatten merges the id and the arguments into one map.
func (r Rule) flatten() map[string]any {
	out := make(map[string]any, len(r.Args)+1)
	for k, v := range r.Args {
		out[k] = v
	}
	out["id"] = r.ID
	return out
}

func (r *Rule) fromMap(raw map[string]any) error {
	var decoded Rule
	if err := mapstructure.Decode(raw, &decoded); err != nil {
		return fmt.Errorf("rule: %w", err)
	}
	if decoded.ID == "" {
		return fmt.Errorf("rule: missing id")
	}
	*r = decoded
	return nil
}

// MarshalJSON serializes the rule flat, with its arguments next to the id.
func (r Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.flatten())
}

// UnmarshalJSON deserializes a flat rule.
func (r *Rule) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return r.fromMap(raw)
}

// MarshalYAML serializes the rule flat, with its arguments next to the id.
func (r Rule) MarshalYAML() (any, error) {
	return r.flatten(), nil
}

// UnmarshalYAML deserializes a flat rule.
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return r.fromMap(raw)
}

// Decode builds a Schema from a generic map, such as one produced by a JSON
// or YAML decoder into map[string]any. Rule arguments are collected from the
// keys left over next to "id".
func Decode(raw map[string]any) (*Schema, error) {
	var s Schema
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &s,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	return &s, nil
}

// ParseJSON parses a JSON encoded schema.
func ParseJSON(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return &s, nil
}

// ParseYAML parses a YAML encoded schema.
func ParseYAML(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return &s, nil
}

// MarshalYAMLBytes encodes s as YAML.
func MarshalYAMLBytes(s *Schema) ([]byte, error) {
	return yaml.Marshal(s)
}
