// Package schema provides a declarative schema format and the engine that
// normalizes loosely-typed values against it.
//
// A Schema describes one accepted shape: a primitive kind (bool, int, float,
// unicode, html), a dict with named properties, a list of items, or a custom
// kind that delegates to a named object type through a Resolver. Schemas may
// also carry choices, post-normalizers and validators.
//
// Basic usage:
//
//	coord := schema.List(schema.Float()).WithLen(2)
//
//	v, err := schema.Normalize(coord, []any{"3.5", 1}, nil)
//	if err != nil {
//	    // errors.Is(err, schema.ErrNormalization) == true
//	}
//	// v == []any{3.5, 1.0}
//
// Dicts require every declared property and reject unknown keys:
//
//	vertex := schema.Dict(
//	    schema.Prop("x", schema.Float()),
//	    schema.Prop("y", schema.Float()),
//	    schema.Prop("label", schema.Unicode()),
//	)
//
// Schemas are plain data. They marshal to JSON and YAML in the same flat
// layout they are declared in, decode from generic maps (see Decode), can be
// checked for well-formedness (see Check) and exported as OpenAPI schema
// objects (see ToOpenAPI) for tooling that generates authoring forms.
//
// Normalization is pure and deterministic: no I/O, no shared mutable state,
// and a failure anywhere in a nested value rejects the whole value.
package schema
