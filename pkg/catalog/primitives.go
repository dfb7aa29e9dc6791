package catalog

import (
	"strings"

	"github.com/aretw0/objects/pkg/schema"
)

type nullType struct{}

func (nullType) Name() string        { return TypeNull }
func (nullType) Description() string { return "A non-existent value, used as a placeholder." }

// Normalize discards raw. It never fails.
func (nullType) Normalize(any) (any, error) { return nil, nil }

type booleanType struct{}

func (booleanType) Name() string           { return TypeBoolean }
func (booleanType) Description() string    { return "A boolean value." }
func (booleanType) Schema() *schema.Schema { return schema.Bool().WithDescription("A boolean value.") }

// Normalize treats nil, blank strings and "false" as false, and "true" as
// true (case-insensitive, surrounding whitespace ignored). Any other string
// and every number is rejected.
func (booleanType) Normalize(raw any) (any, error) {
	if raw == nil {
		return false, nil
	}
	if s, ok := raw.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "false":
			return false, nil
		case "true":
			return true, nil
		}
		return nil, schema.Failf(raw, "expected bool, got token %q", s)
	}
	return schema.CoerceBool(raw)
}
