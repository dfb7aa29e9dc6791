package registry

import "github.com/aretw0/objects/pkg/schema"

// SchemaType is an object type fully described by its schema.
type SchemaType struct {
	name        string
	description string
	schema      *schema.Schema
	resolver    schema.Resolver
}

// NewSchemaType creates a schema-only object type. resolver serves the custom
// kind and is usually the registry the type is registered in; it may be nil
// when the schema has no custom parts.
func NewSchemaType(name, description string, s *schema.Schema, resolver schema.Resolver) *SchemaType {
	return &SchemaType{name: name, description: description, schema: s, resolver: resolver}
}

func (t *SchemaType) Name() string           { return t.name }
func (t *SchemaType) Description() string    { return t.description }
func (t *SchemaType) Schema() *schema.Schema { return t.schema }

func (t *SchemaType) Normalize(raw any) (any, error) {
	return schema.Normalize(t.schema, raw, t.resolver)
}
