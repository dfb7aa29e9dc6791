package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/objects/pkg/schema"
)

// Definition declares a schema-only object type in a definitions file.
type Definition struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Schema      *schema.Schema `yaml:"schema" json:"schema"`
}

// DefinitionFile represents the structure of a definitions file.
type DefinitionFile struct {
	Types []Definition `yaml:"types" json:"types"`
}

// LoadDefinitions reads a definitions file (YAML or JSON, chosen by
// extension) and returns its entries in file order.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	return ParseDefinitions(data, strings.ToLower(filepath.Ext(path)) == ".json")
}

// ParseDefinitions decodes a definitions document. Entries without a name or
// a schema are rejected.
func ParseDefinitions(data []byte, isJSON bool) ([]Definition, error) {
	var file DefinitionFile
	if isJSON {
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse definitions: %w", err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse definitions: %w", err)
		}
	}

	for i, def := range file.Types {
		if def.Name == "" {
			return nil, fmt.Errorf("definition %d: missing name", i)
		}
		if def.Schema == nil {
			return nil, fmt.Errorf("definition %s: missing schema", def.Name)
		}
	}
	return file.Types, nil
}

// RegisterDefinitions checks every definition and, when all are valid,
// registers each one as a SchemaType resolved against r. Definitions may
// refer to each other and to types already registered, but may not reuse
// a registered name or form a cycle of bare custom references. Nothing is
// registered on failure.
func (r *Registry) RegisterDefinitions(defs ...Definition) error {
	pending := pendingNames{Registry: r, schemas: make(map[string]*schema.Schema, len(defs))}

	var errs []error
	for _, def := range defs {
		if _, dup := pending.schemas[def.Name]; dup || r.Has(def.Name) {
			errs = append(errs, fmt.Errorf("%s: %w", def.Name, ErrDuplicateType))
			continue
		}
		pending.schemas[def.Name] = def.Schema
	}

	for _, def := range defs {
		if err := schema.Check(def.Schema, pending); err != nil {
			for _, e := range schema.ValidationErrors(err) {
				errs = append(errs, fmt.Errorf("%s: %w", def.Name, e))
			}
		}
		if err := checkCycle(def.Name, def.Schema, pending.schemaOf); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", def.Name, err))
		}
	}
	if len(errs) > 0 {
		return &schema.AggregateError{Errors: errs}
	}

	for _, def := range defs {
		r.Register(NewSchemaType(def.Name, def.Description, def.Schema, r))
	}
	return nil
}

// pendingNames resolves names that are about to be registered.
type pendingNames struct {
	*Registry
	schemas map[string]*schema.Schema
}

func (p pendingNames) Has(name string) bool {
	_, ok := p.schemas[name]
	return ok || p.Registry.Has(name)
}

func (p pendingNames) schemaOf(name string) *schema.Schema {
	if s, ok := p.schemas[name]; ok {
		return s
	}
	return p.Registry.schemaOf(name)
}
