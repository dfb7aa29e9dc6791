package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/objects/pkg/schema"
)

var (
	// ErrUnknownType is returned for lookups of names that were never registered.
	ErrUnknownType = errors.New("unknown object type")
	// ErrDuplicateType is returned when a definition reuses a registered name.
	ErrDuplicateType = errors.New("object type already registered")
)

// Normalizable is a named object type.
type Normalizable interface {
	Name() string
	// Normalize returns the canonical form of raw or an error wrapping
	// schema.ErrNormalization.
	Normalize(raw any) (any, error)
}

// Schemed is implemented by object types that expose a declarative schema.
type Schemed interface {
	Schema() *schema.Schema
}

// Described is implemented by object types that carry a description.
type Described interface {
	Description() string
}

// Registry manages the available object types.
// It implements schema.Resolver so custom schema kinds can refer to any
// registered type, including the one being defined.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Normalizable
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		types: make(map[string]Normalizable),
	}
}

// Register adds object types to the registry.
// If a type with the same name exists, it is overwritten.
func (r *Registry) Register(types ...Normalizable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range types {
		r.types[t.Name()] = t
	}
}

// Lookup returns the named object type.
func (r *Registry) Lookup(name string) (Normalizable, error) {
	r.mu.RLock()
	t, ok := r.types[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return t, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[name]
	return ok
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize looks up the named type and normalizes raw with it.
func (r *Registry) Normalize(name string, raw any) (any, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return t.Normalize(raw)
}

// Schema returns the declarative schema of the named type. The second result
// is false when the type normalizes without one (Null, for instance).
func (r *Registry) Schema(name string) (*schema.Schema, bool, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return nil, false, err
	}
	s, ok := t.(Schemed)
	if !ok || s.Schema() == nil {
		return nil, false, nil
	}
	return s.Schema(), true, nil
}

func (r *Registry) schemaOf(name string) *schema.Schema {
	s, _, _ := r.Schema(name)
	return s
}

// Schemas returns every declared schema keyed by type name.
func (r *Registry) Schemas() map[string]*schema.Schema {
	out := make(map[string]*schema.Schema)
	for _, name := range r.Names() {
		if s, ok, _ := r.Schema(name); ok {
			out[name] = s
		}
	}
	return out
}

// Check validates every declared schema against this registry and returns
// all problems as a *schema.AggregateError.
func (r *Registry) Check() error {
	var errs []error
	for _, name := range r.Names() {
		s, ok, _ := r.Schema(name)
		if !ok {
			continue
		}
		if err := schema.Check(s, r); err != nil {
			for _, e := range schema.ValidationErrors(err) {
				errs = append(errs, fmt.Errorf("%s: %w", name, e))
			}
		}
		if err := checkCycle(name, s, r.schemaOf); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if len(errs) > 0 {
		return &schema.AggregateError{Errors: errs}
	}
	return nil
}

// Description returns the description of the named type, if it has one.
func (r *Registry) Description(name string) string {
	t, err := r.Lookup(name)
	if err != nil {
		return ""
	}
	if d, ok := t.(Described); ok {
		return d.Description()
	}
	if s, ok := t.(Schemed); ok && s.Schema() != nil {
		return s.Schema().Description
	}
	return ""
}
