package objects

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/aretw0/objects/internal/logging"
	"github.com/aretw0/objects/pkg/catalog"
	"github.com/aretw0/objects/pkg/registry"
	"github.com/aretw0/objects/pkg/schema"
)

//go:embed VERSION
var version string

// Version is the module release.
var Version = strings.TrimSpace(version)

// ErrNoSchema is returned by Schema for types that normalize in code only.
var ErrNoSchema = errors.New("object type has no schema")

// Event describes one finished normalization.
type Event struct {
	TypeName string
	Duration time.Duration
	Err      error
}

// Hooks are optional callbacks for observability.
type Hooks struct {
	OnNormalize func(Event)
}

// TypeInfo summarizes a registered object type.
type TypeInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	HasSchema   bool   `json:"has_schema" yaml:"has_schema"`
}

// Catalog is the high-level entry point of the library.
// It wraps a type registry and adds logging and hooks.
type Catalog struct {
	registry    *registry.Registry
	definitions []string
	hooks       Hooks
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Catalog.
type Option func(*Catalog)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(c *Catalog) {
		c.hooks = hooks
	}
}

// WithRegistry replaces the built-in registry. The registry is used as is;
// call catalog.Register on it to keep the built-in types.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *Catalog) {
		c.registry = reg
	}
}

// WithDefinitions loads extra schema-only types from YAML or JSON files.
func WithDefinitions(paths ...string) Option {
	return func(c *Catalog) {
		c.definitions = append(c.definitions, paths...)
	}
}

// New builds a Catalog. By default it holds every built-in type.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	if c.registry == nil {
		c.registry = catalog.NewRegistry()
	}

	for _, path := range c.definitions {
		defs, err := registry.LoadDefinitions(path)
		if err != nil {
			return nil, err
		}
		if err := c.registry.RegisterDefinitions(defs...); err != nil {
			return nil, fmt.Errorf("definitions %s: %w", path, err)
		}
		c.logger.Debug("definitions loaded", "path", path, "count", len(defs))
	}

	return c, nil
}

// Normalize returns the canonical form of raw as the named type.
// Failures wrap schema.ErrNormalization, or registry.ErrUnknownType when the
// name is not registered.
func (c *Catalog) Normalize(typeName string, raw any) (any, error) {
	start := time.Now()
	v, err := c.registry.Normalize(typeName, raw)
	elapsed := time.Since(start)

	if err != nil {
		c.logger.Debug("normalization rejected", "type", typeName, "err", err)
	} else {
		c.logger.Debug("normalized", "type", typeName, "duration", elapsed)
	}
	if c.hooks.OnNormalize != nil {
		c.hooks.OnNormalize(Event{TypeName: typeName, Duration: elapsed, Err: err})
	}
	return v, err
}

// Schema returns the declarative schema of the named type.
func (c *Catalog) Schema(typeName string) (*schema.Schema, error) {
	s, ok, err := c.registry.Schema(typeName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSchema, typeName)
	}
	return s, nil
}

// Types lists every registered type, sorted by name.
func (c *Catalog) Types() []TypeInfo {
	names := c.registry.Names()
	out := make([]TypeInfo, 0, len(names))
	for _, name := range names {
		_, hasSchema, _ := c.registry.Schema(name)
		out = append(out, TypeInfo{
			Name:        name,
			Description: c.registry.Description(name),
			HasSchema:   hasSchema,
		})
	}
	return out
}

// Describe returns the summary of one type.
func (c *Catalog) Describe(typeName string) (TypeInfo, error) {
	if !c.registry.Has(typeName) {
		return TypeInfo{}, fmt.Errorf("%w: %s", registry.ErrUnknownType, typeName)
	}
	_, hasSchema, _ := c.registry.Schema(typeName)
	return TypeInfo{
		Name:        typeName,
		Description: c.registry.Description(typeName),
		HasSchema:   hasSchema,
	}, nil
}

// Check validates every registered schema.
func (c *Catalog) Check() error {
	return c.registry.Check()
}

// OpenAPI exports every declared schema as OpenAPI component schemas,
// keyed by type name. Custom kinds refer to one another by
// schema.ComponentRef.
func (c *Catalog) OpenAPI() openapi3.Schemas {
	out := make(openapi3.Schemas)
	for name, s := range c.registry.Schemas() {
		out[name] = schema.ToOpenAPI(s).NewRef()
	}
	return out
}

// Registry returns the underlying type registry.
func (c *Catalog) Registry() *registry.Registry {
	return c.registry
}
