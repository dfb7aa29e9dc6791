// Package catalog defines the built-in object types.
//
// Most types are fully described by a schema and are registered as
// registry.SchemaType. A few need code the schema engine cannot express:
// Null ignores its input, Boolean accepts the empty string, CheckedProof has
// keys that are required only when the proof is incorrect, and Graph checks
// edge consistency after the schema pass.
//
//	reg := catalog.NewRegistry()
//	v, err := reg.Normalize(catalog.TypeSanitizedURL, "https://www.google!.com")
//	// v == "https://www.google%21.com"
//
// Normalized values use the generic JSON shapes (map[string]any, []any, ...).
// Decode converts them into the typed views declared here (Graph, Note,
// CheckedProof, ...).
package catalog
