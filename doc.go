/*
Package objects validates and normalizes loosely-typed values (usually decoded from JSON) into the canonical forms of a catalog of named object types.

Each object type accepts a raw value and either returns a canonical, type-correct value or fails with an error wrapping schema.ErrNormalization. Most types are declared with a schema (see package schema); a few add custom code, such as the consistency checks of Graph.

# Concept

The Catalog is a registry of object types plus the ambient concerns of a host application: structured logging, observability hooks and optional definition files that declare extra schema-only types. Normalization itself is pure, synchronous and safe for concurrent use.

# Key Features

  - Declarative schemas: primitive kinds, dicts, lists, choices, validators and post-normalizers.
  - Sanitization: HTML is cleaned against an allow-list, URLs are restricted to http(s) and percent-encoded.
  - Idempotence: normalizing a normalized value returns it unchanged.
  - Introspection: schemas marshal to JSON and YAML and export as OpenAPI component schemas.

# Usage

	package main

	import (
		"errors"
		"fmt"
		"log"

		"github.com/aretw0/objects"
		"github.com/aretw0/objects/pkg/schema"
	)

	func main() {
		cat, err := objects.New()
		if err != nil {
			log.Fatal(err)
		}

		v, err := cat.Normalize("NonnegativeInt", "02")
		if errors.Is(err, schema.ErrNormalization) {
			log.Fatal(err)
		}
		fmt.Println(v) // 2
	}
*/
package objects
