package schema

import (
	"fmt"
	"sync"
)

// Registry stores entry kinds by name while preserving declaration order.
// Registries are immutable once built; share a single instance freely.
type Registry struct {
	kinds []Kind
	index map[string]int
}

// NewRegistry builds a registry from the given kinds. Duplicate or unnamed
// kinds return an error.
func NewRegistry(kinds ...Kind) (*Registry, error) {
	reg := &Registry{
		kinds: make([]Kind, 0, len(kinds)),
		index: make(map[string]int, len(kinds)),
	}
	for _, kind := range kinds {
		if kind.Name == "" {
			return nil, fmt.Errorf("schema: kind name is required")
		}
		if _, exists := reg.index[kind.Name]; exists {
			return nil, fmt.Errorf("schema: kind %q already registered", kind.Name)
		}
		reg.index[kind.Name] = len(reg.kinds)
		reg.kinds = append(reg.kinds, kind)
	}
	return reg, nil
}

// MustNewRegistry panics on registration failure. Useful for init-time wiring.
func MustNewRegistry(kinds ...Kind) *Registry {
	reg, err := NewRegistry(kinds...)
	if err != nil {
		panic(err)
	}
	return reg
}

// Kind retrieves a kind by name.
func (r *Registry) Kind(name string) (Kind, bool) {
	if r == nil {
		return Kind{}, false
	}
	i, ok := r.index[name]
	if !ok {
		return Kind{}, false
	}
	return r.kinds[i], true
}

// Lookup retrieves a kind by name, returning an empty Kind carrying the name
// when it is unknown. Unknown kinds validate trivially and serialize their
// fields as-is, so callers never need to branch on existence.
func (r *Registry) Lookup(name string) Kind {
	if kind, ok := r.Kind(name); ok {
		return kind
	}
	return Kind{Name: name}
}

// Has reports whether a kind is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Kind(name)
	return ok
}

// Kinds returns the registered kinds in declaration order.
func (r *Registry) Kinds() []Kind {
	if r == nil {
		return nil
	}
	out := make([]Kind, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// Names returns the registered kind names in declaration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.kinds))
	for _, kind := range r.kinds {
		names = append(names, kind.Name)
	}
	return names
}

// RequiredFields returns the required field keys for the named kind, or nil
// when the kind is unknown.
func (r *Registry) RequiredFields(name string) []string {
	return r.Lookup(name).RequiredFields()
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry with the built-in entry kinds.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = MustNewRegistry(builtinKinds()...)
	})
	return defaultRegistry
}
