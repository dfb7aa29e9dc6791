package schema

// Kind names the shape a Schema accepts.
type Kind string

// Built-in kinds.
const (
	KindBool    Kind = "bool"
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindUnicode Kind = "unicode"
	KindHTML    Kind = "html"
	KindDict    Kind = "dict"
	KindList    Kind = "list"
	KindCustom  Kind = "custom"
)

// IsPrimitive reports whether k describes a scalar value.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindBool, KindInt, KindFloat, KindUnicode, KindHTML:
		return true
	}
	return false
}

// Schema is a declarative description of an accepted value shape.
// Only the fields relevant to Type are meaningful; Check reports the rest.
type Schema struct {
	Type        Kind   `json:"type" yaml:"type" mapstructure:"type" validate:"required,oneof=bool int float unicode html dict list custom"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`

	// Dict
	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty" mapstructure:"properties" validate:"dive"`

	// List
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty" mapstructure:"items" validate:"required_if=Type list"`
	Len   *int    `json:"len,omitempty" yaml:"len,omitempty" mapstructure:"len" validate:"omitempty,min=0"`

	// Custom
	ObjType string `json:"obj_type,omitempty" yaml:"obj_type,omitempty" mapstructure:"obj_type" validate:"required_if=Type custom"`

	Choices         []any  `json:"choices,omitempty" yaml:"choices,omitempty" mapstructure:"choices"`
	PostNormalizers []Rule `json:"post_normalizers,omitempty" yaml:"post_normalizers,omitempty" mapstructure:"post_normalizers" validate:"dive"`
	Validators      []Rule `json:"validators,omitempty" yaml:"validators,omitempty" mapstructure:"validators" validate:"dive"`
}

// Property is a named, independently schema'd entry of a dict.
type Property struct {
	Name        string  `json:"name" yaml:"name" mapstructure:"name" validate:"required"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Schema      *Schema `json:"schema" yaml:"schema" mapstructure:"schema" validate:"required"`
}

// Rule references a named post-normalizer or validator together with its
// arguments. It serializes flat: {"id": "is_at_least", "min_value": 0}.
type Rule struct {
	ID   string         `mapstructure:"id" validate:"required"`
	Args map[string]any `mapstructure:",remain"`
}

// --- Factory Functions ---

// Bool creates a boolean schema.
func Bool() *Schema { return &Schema{Type: KindBool} }

// Int creates an integer schema.
func Int() *Schema { return &Schema{Type: KindInt} }

// Float creates a floating-point schema.
func Float() *Schema { return &Schema{Type: KindFloat} }

// Unicode creates a text schema.
func Unicode() *Schema { return &Schema{Type: KindUnicode} }

// HTML creates a schema for text that is sanitized as HTML.
func HTML() *Schema { return &Schema{Type: KindHTML} }

// List creates a schema for a homogeneous list.
func List(items *Schema) *Schema { return &Schema{Type: KindList, Items: items} }

// Dict creates a schema for a mapping with exactly the given properties.
func Dict(props ...Property) *Schema {
	return &Schema{Type: KindDict, Properties: props}
}

// Custom creates a schema that delegates to the named object type.
func Custom(objType string) *Schema { return &Schema{Type: KindCustom, ObjType: objType} }

// Prop declares a dict property.
func Prop(name string, s *Schema) Property { return Property{Name: name, Schema: s} }

// NewRule builds a Rule from an id and alternating key/value arguments.
func NewRule(id string, kv ...any) Rule {
	r := Rule{ID: id}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		if r.Args == nil {
			r.Args = make(map[string]any, len(kv)/2)
		}
		r.Args[key] = kv[i+1]
	}
	return r
}

// --- Modifiers ---
// Modifiers return a copy so shared base schemas are never mutated.

// WithLen fixes the length of a list.
func (s *Schema) WithLen(n int) *Schema {
	c := s.clone()
	c.Len = &n
	return c
}

// WithChoices restricts a primitive to the listed values.
func (s *Schema) WithChoices(choices ...any) *Schema {
	c := s.clone()
	c.Choices = append([]any(nil), choices...)
	return c
}

// WithValidators appends validators.
func (s *Schema) WithValidators(rules ...Rule) *Schema {
	c := s.clone()
	c.Validators = append(append([]Rule(nil), s.Validators...), rules...)
	return c
}

// WithPostNormalizers appends post-normalizers.
func (s *Schema) WithPostNormalizers(rules ...Rule) *Schema {
	c := s.clone()
	c.PostNormalizers = append(append([]Rule(nil), s.PostNormalizers...), rules...)
	return c
}

// WithDescription sets a human-readable description.
func (s *Schema) WithDescription(desc string) *Schema {
	c := s.clone()
	c.Description = desc
	return c
}

// Property returns the named dict property.
func (s *Schema) Property(name string) (Property, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// clone is shallow below the top level; nested schemas are shared.
func (s *Schema) clone() *Schema {
	c := *s
	return &c
}
