package schema

import (
	"errors"
	"sort"

	"github.com/aretw0/objects/pkg/sanitize"
)

// Resolver gives the custom kind access to other named object types.
type Resolver interface {
	// Normalize normalizes raw as the named object type.
	Normalize(objType string, raw any) (any, error)
	// Has reports whether the named object type exists.
	Has(objType string) bool
}

var errNoResolver = errors.New("no resolver configured for custom kind")

// Normalize validates raw against s and returns its canonical form.
//
// Every failure wraps ErrNormalization and is all-or-nothing: a failure
// anywhere inside a nested value rejects the whole value. r is only needed
// when s (or a nested schema) has the custom kind.
func Normalize(s *Schema, raw any, r Resolver) (any, error) {
	if s == nil {
		return nil, Failf(raw, "nil schema")
	}

	v, err := normalizeKind(s, raw, r)
	if err != nil {
		return nil, err
	}

	if len(s.Choices) > 0 {
		if err := checkChoices(s, v); err != nil {
			return nil, err
		}
	}

	for _, rule := range s.PostNormalizers {
		if v, err = applyPostNormalizer(rule, v); err != nil {
			return nil, err
		}
	}

	for _, rule := range s.Validators {
		if err := applyValidator(rule, v); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func normalizeKind(s *Schema, raw any, r Resolver) (any, error) {
	switch s.Type {
	case KindBool:
		return CoerceBool(raw)
	case KindInt:
		return CoerceInt(raw)
	case KindFloat:
		return CoerceFloat(raw)
	case KindUnicode:
		return CoerceUnicode(raw)
	case KindHTML:
		str, err := CoerceUnicode(raw)
		if err != nil {
			return nil, err
		}
		return sanitize.HTML(str), nil
	case KindDict:
		return normalizeDict(s, raw, r)
	case KindList:
		return normalizeList(s, raw, r)
	case KindCustom:
		if r == nil {
			return nil, &ValidationError{Reason: errNoResolver.Error(), Value: raw, Err: errNoResolver}
		}
		v, err := r.Normalize(s.ObjType, raw)
		if err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				return nil, err
			}
			return nil, &ValidationError{Reason: err.Error(), Value: raw, Err: err}
		}
		return v, nil
	default:
		return nil, Failf(raw, "unsupported schema type %q", s.Type)
	}
}

func normalizeDict(s *Schema, raw any, r Resolver) (any, error) {
	m, ok := asDict(raw)
	if !ok {
		return nil, Failf(raw, "expected dict")
	}

	declared := make(map[string]struct{}, len(s.Properties))
	for _, p := range s.Properties {
		declared[p.Name] = struct{}{}
		if _, present := m[p.Name]; !present {
			return nil, &ValidationError{Path: p.Name, Reason: "missing required property"}
		}
	}

	var unknown []string
	for key := range m {
		if _, ok := declared[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &ValidationError{Path: unknown[0], Reason: "unexpected property"}
	}

	out := make(map[string]any, len(s.Properties))
	for _, p := range s.Properties {
		v, err := Normalize(p.Schema, m[p.Name], r)
		if err != nil {
			return nil, AtPath(err, p.Name)
		}
		out[p.Name] = v
	}
	return out, nil
}

func normalizeList(s *Schema, raw any, r Resolver) (any, error) {
	items, ok := asList(raw)
	if !ok {
		return nil, Failf(raw, "expected list")
	}
	if s.Len != nil && len(items) != *s.Len {
		return nil, Failf(nil, "expected %d items, got %d", *s.Len, len(items))
	}

	out := make([]any, len(items))
	for i, item := range items {
		v, err := Normalize(s.Items, item, r)
		if err != nil {
			return nil, AtPath(err, indexSegment(i))
		}
		out[i] = v
	}
	return out, nil
}

// checkChoices compares v with each choice coerced to the same kind, so a
// choice of 1 declared in YAML (int) matches 1.0 decoded from JSON.
func checkChoices(s *Schema, v any) error {
	want, err := canonicalKey(v)
	if err != nil {
		return err
	}
	for _, c := range s.Choices {
		cv, err := normalizeKind(&Schema{Type: s.Type}, c, nil)
		if err != nil {
			continue
		}
		if got, err := canonicalKey(cv); err == nil && got == want {
			return nil
		}
	}
	return Failf(v, "value %v is not one of the allowed choices", v)
}
