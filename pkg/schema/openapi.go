package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// ComponentRef is the OpenAPI reference used for a named object type.
func ComponentRef(objType string) string {
	return "#/components/schemas/" + objType
}

// ToOpenAPI converts s into an OpenAPI 3 schema object. Custom kinds refer
// to ComponentRef(obj_type); validators map onto the closest OpenAPI
// keywords and post-normalizers are listed under x-post-normalizers.
func ToOpenAPI(s *Schema) *openapi3.Schema {
	if s == nil {
		return nil
	}

	var out *openapi3.Schema
	switch s.Type {
	case KindBool:
		out = openapi3.NewBoolSchema()
	case KindInt:
		out = openapi3.NewIntegerSchema()
	case KindFloat:
		out = openapi3.NewFloat64Schema()
	case KindUnicode:
		out = openapi3.NewStringSchema()
	case KindHTML:
		out = openapi3.NewStringSchema().WithFormat("html")
	case KindList:
		out = openapi3.NewArraySchema()
		out.Items = toRef(s.Items)
		if s.Len != nil {
			out.WithMinItems(int64(*s.Len)).WithMaxItems(int64(*s.Len))
		}
	case KindDict:
		out = openapi3.NewObjectSchema().WithoutAdditionalProperties()
		if out.Properties == nil {
			out.Properties = make(openapi3.Schemas, len(s.Properties))
		}
		for _, p := range s.Properties {
			ref := toRef(p.Schema)
			if p.Description != "" && ref.Value != nil {
				ref.Value.Description = p.Description
			}
			out.Properties[p.Name] = ref
			out.Required = append(out.Required, p.Name)
		}
	case KindCustom:
		out = &openapi3.Schema{AllOf: openapi3.SchemaRefs{openapi3.NewSchemaRef(ComponentRef(s.ObjType), nil)}}
	default:
		out = &openapi3.Schema{}
	}

	out.Description = s.Description

	if len(s.Choices) > 0 {
		for _, c := range s.Choices {
			if v, err := normalizeKind(&Schema{Type: s.Type}, c, nil); err == nil {
				out.Enum = append(out.Enum, v)
			}
		}
	}

	for _, rule := range s.Validators {
		applyOpenAPIRule(out, s.Type, rule)
	}

	if len(s.PostNormalizers) > 0 {
		ids := make([]string, len(s.PostNormalizers))
		for i, rule := range s.PostNormalizers {
			ids[i] = rule.ID
		}
		if out.Extensions == nil {
			out.Extensions = make(map[string]any)
		}
		out.Extensions["x-post-normalizers"] = ids
	}
	return out
}

func toRef(s *Schema) *openapi3.SchemaRef {
	if s == nil {
		return nil
	}
	if s.Type == KindCustom && s.Description == "" && len(s.Validators) == 0 {
		return openapi3.NewSchemaRef(ComponentRef(s.ObjType), nil)
	}
	return ToOpenAPI(s).NewRef()
}

func applyOpenAPIRule(out *openapi3.Schema, kind Kind, rule Rule) {
	num := func(key string) (float64, bool) {
		f, err := numberArg(rule.Args, key)
		return f, err == nil
	}
	switch rule.ID {
	case "is_at_least":
		if f, ok := num("min_value"); ok {
			out.WithMin(f)
		}
	case "is_at_most":
		if f, ok := num("max_value"); ok {
			out.WithMax(f)
		}
	case "is_nonempty":
		setMinLength(out, kind, 1)
	case "has_length_at_least":
		if f, ok := num("min_value"); ok {
			setMinLength(out, kind, int64(f))
		}
	case "has_length_at_most":
		if f, ok := num("max_value"); ok {
			if kind == KindList {
				out.WithMaxItems(int64(f))
			} else {
				out.WithMaxLength(int64(f))
			}
		}
	case "is_uniquified":
		out.WithUniqueItems(true)
	case "is_regex_matched":
		if p, ok := rule.Args["regex"].(string); ok {
			out.WithPattern(p)
		}
	}
}

func setMinLength(out *openapi3.Schema, kind Kind, n int64) {
	if kind == KindList {
		out.WithMinItems(n)
		return
	}
	out.WithMinLength(n)
}
