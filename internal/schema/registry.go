package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the schemas for all known subsystems. It is built at
// startup and shared read-only after that; lookups may run
// concurrently while registration is serialized.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register adds a schema for its subsystem. Registering an already
// known subsystem is an error; schemas are immutable once registered.
func (r *Registry) Register(s *Schema) error {
	if s == nil {
		return fmt.Errorf("schema is required")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[s.Subsystem]; exists {
		return &SchemaError{Subsystem: s.Subsystem, Message: "already registered"}
	}
	r.schemas[s.Subsystem] = s
	return nil
}

// Lookup returns the schema for a subsystem. The second return is
// false for unknown subsystems; callers treat that as a configuration
// error, not a crash.
func (r *Registry) Lookup(subsystem string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[subsystem]
	return s, ok
}

// Subsystems returns the registered subsystem names, sorted.
func (r *Registry) Subsystems() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
