package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores render clients by name, providing discovery and duplication
// safeguards. The facade resolves its configured backend through one of these;
// callers can embed or wrap it for dependency injection.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]Client
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]Client),
	}
}

// Register adds a client by its Name(). Duplicate names return an error.
func (r *Registry) Register(client Client) error {
	if client == nil {
		return fmt.Errorf("render: client is required")
	}
	name := client.Name()
	if name == "" {
		return fmt.Errorf("render: client name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[name]; exists {
		return fmt.Errorf("render: client %q already registered", name)
	}

	r.clients[name] = client
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(client Client) {
	if err := r.Register(client); err != nil {
		panic(err)
	}
}

// Get retrieves a client by name.
func (r *Registry) Get(name string) (Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[name]
	if !ok {
		return nil, fmt.Errorf("render: client %q not found", name)
	}
	return client, nil
}

// MustGet panics if the client is missing.
func (r *Registry) MustGet(name string) Client {
	client, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return client
}

// List returns a sorted list of client names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a client is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.clients[name]
	return ok
}
