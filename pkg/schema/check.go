package schema

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var structValidator = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// Check reports every problem in the definition of s as an *AggregateError.
// Struct-level rules (known kinds, required names) come from the validate
// tags on Schema, Property and Rule; cross-field rules are checked by walking
// the tree. r, when non-nil, must know every obj_type referenced.
func Check(s *Schema, r Resolver) error {
	if s == nil {
		return &AggregateError{Errors: []error{&DefinitionError{Reason: "nil schema"}}}
	}

	var errs []error
	if err := structValidator().Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return &AggregateError{Errors: []error{err}}
		}
		for _, fe := range fieldErrs {
			errs = append(errs, &DefinitionError{
				Path:   fe.Namespace(),
				Reason: fmt.Sprintf("failed %q rule%s", fe.Tag(), paramSuffix(fe.Param())),
			})
		}
	}

	errs = append(errs, walkCheck(s, "Schema", r)...)
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}
	return " (" + p + ")"
}

func walkCheck(s *Schema, path string, r Resolver) []error {
	if s == nil {
		return nil
	}
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, &DefinitionError{Path: path, Reason: fmt.Sprintf(format, args...)})
	}

	if s.Type != KindDict && len(s.Properties) > 0 {
		fail("properties are only allowed on dict")
	}
	if s.Type != KindList && (s.Items != nil || s.Len != nil) {
		fail("items and len are only allowed on list")
	}
	if s.Type != KindCustom && s.ObjType != "" {
		fail("obj_type is only allowed on custom")
	}
	if len(s.Choices) > 0 {
		if !s.Type.IsPrimitive() {
			fail("choices are only allowed on primitive kinds")
		} else {
			for i, c := range s.Choices {
				if _, err := normalizeKind(&Schema{Type: s.Type}, c, nil); err != nil {
					fail("choice %d is not a valid %s", i, s.Type)
				}
			}
		}
	}

	switch s.Type {
	case KindDict:
		seen := make(map[string]bool, len(s.Properties))
		for i, p := range s.Properties {
			if p.Name != "" && seen[p.Name] {
				fail("duplicate property %q", p.Name)
			}
			seen[p.Name] = true
			errs = append(errs, walkCheck(p.Schema, fmt.Sprintf("%s.Properties[%d]", path, i), r)...)
		}
	case KindList:
		errs = append(errs, walkCheck(s.Items, path+".Items", r)...)
	case KindCustom:
		if r != nil && s.ObjType != "" && !r.Has(s.ObjType) {
			fail("unknown obj_type %q", s.ObjType)
		}
	}

	for _, rule := range s.PostNormalizers {
		def, ok := postNormalizers[rule.ID]
		if !ok {
			fail("unknown post-normalizer %q", rule.ID)
			continue
		}
		for _, arg := range def.args {
			if _, ok := rule.Args[arg]; !ok {
				fail("post-normalizer %s requires argument %s", rule.ID, arg)
			}
		}
	}
	for _, rule := range s.Validators {
		def, ok := validators[rule.ID]
		if !ok {
			fail("unknown validator %q", rule.ID)
			continue
		}
		for _, arg := range def.args {
			if _, ok := rule.Args[arg]; !ok {
				fail("validator %s requires argument %s", rule.ID, arg)
			}
		}
	}
	return errs
}
