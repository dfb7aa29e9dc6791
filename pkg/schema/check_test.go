package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestCheck_Valid(t *testing.T) {
	r := mapResolver{"Expression": Unicode()}
	schemas := []*Schema{
		Bool(),
		Int().WithValidators(NewRule("is_at_least", "min_value", 0)),
		List(Float()).WithLen(2),
		Unicode().WithChoices("parsing", "typing"),
		Unicode().WithPostNormalizers(NewRule("normalize_spaces")),
		Dict(Prop("a", Int()), Prop("b", List(Custom("Expression")))),
	}

	for _, s := range schemas {
		if err := Check(s, r); err != nil {
			t.Errorf("Check(%s) = %v, want nil", s.Type, err)
		}
	}
}

func TestCheck_Invalid(t *testing.T) {
	r := mapResolver{"Known": Int()}
	tests := []struct {
		name   string
		schema *Schema
		want   string
	}{
		{"Missing Type", &Schema{}, `"required" rule`},
		{"Unknown Type", &Schema{Type: "tuple"}, `"oneof" rule`},
		{"List Without Items", &Schema{Type: KindList}, `"required_if" rule`},
		{"Negative Len", List(Int()).WithLen(-1), `"min" rule`},
		{"Custom Without ObjType", &Schema{Type: KindCustom}, `"required_if" rule`},
		{"Unknown ObjType", Custom("Missing"), `unknown obj_type "Missing"`},
		{"Len On Int", Int().WithLen(2), "only allowed on list"},
		{"Properties On List", &Schema{Type: KindList, Items: Int(), Properties: []Property{Prop("a", Int())}}, "only allowed on dict"},
		{"ObjType On Int", &Schema{Type: KindInt, ObjType: "Known"}, "only allowed on custom"},
		{"Choices On Dict", Dict().WithChoices(1), "only allowed on primitive"},
		{"Bad Choice", Int().WithChoices("a"), "choice 0 is not a valid int"},
		{"Duplicate Property", Dict(Prop("a", Int()), Prop("a", Float())), `duplicate property "a"`},
		{"Unnamed Property", Dict(Prop("", Int())), `"required" rule`},
		{"Unknown Validator", Int().WithValidators(NewRule("is_prime")), `unknown validator "is_prime"`},
		{"Missing Validator Arg", Int().WithValidators(NewRule("is_at_least")), "requires argument min_value"},
		{"Unknown PostNormalizer", Unicode().WithPostNormalizers(NewRule("shout")), `unknown post-normalizer "shout"`},
		{"Nested Problem", Dict(Prop("a", List(Custom("Missing")))), "Schema.Properties[0].Items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.schema, r)
			if err == nil {
				t.Fatal("Check() should fail")
			}
			var aggr *AggregateError
			if !errors.As(err, &aggr) {
				t.Fatalf("error should be *AggregateError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Check() = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestCheck_Aggregates(t *testing.T) {
	s := Dict(
		Prop("a", Int().WithValidators(NewRule("nope"))),
		Prop("a", Custom("Missing")),
	)
	err := Check(s, mapResolver{})
	errs := ValidationErrors(err)
	if len(errs) != 3 {
		t.Fatalf("Check() = %d errors, want 3: %v", len(errs), err)
	}
	for _, e := range errs {
		var de *DefinitionError
		if !errors.As(e, &de) {
			t.Errorf("error should be *DefinitionError, got %T", e)
		}
	}
}

func TestCheck_Nil(t *testing.T) {
	if err := Check(nil, nil); err == nil {
		t.Error("Check(nil) should fail")
	}
}

func TestCheck_NilResolverSkipsObjTypes(t *testing.T) {
	if err := Check(Custom("Anything"), nil); err != nil {
		t.Errorf("Check() = %v, want nil", err)
	}
}
