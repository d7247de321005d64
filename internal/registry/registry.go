// Package registry keeps the build variants known to buildenv.
package registry

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/eugenenazirov/buildenv/internal/schema"
)

// ErrUnknownVariant indicates no schema is registered under the requested name.
var ErrUnknownVariant = errors.New("unknown variant")

// Registry provides access to variant schemas by name.
type Registry interface {
	Get(name string) (schema.Schema, error)
	Register(s schema.Schema) error
	Names() []string
}

// MemoryRegistry keeps schemas in-memory and guards access with a RWMutex.
type MemoryRegistry struct {
	mu      sync.RWMutex
	schemas map[string]schema.Schema
}

// New initialises a registry holding the built-in variants.
func New() *MemoryRegistry {
	r := &MemoryRegistry{schemas: make(map[string]schema.Schema)}
	for _, s := range schema.Builtin() {
		r.schemas[s.Name] = s
	}
	return r
}

// Get returns a copy of the schema registered under name.
func (r *MemoryRegistry) Get(name string) (schema.Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[name]
	if !ok {
		return schema.Schema{}, fmt.Errorf("%w %q", ErrUnknownVariant, name)
	}
	return s.Clone(), nil
}

// Register validates s and stores a copy, replacing any schema of the same name.
func (r *MemoryRegistry) Register(s schema.Schema) error {
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	r.schemas[s.Name] = s.Clone()
	r.mu.Unlock()

	return nil
}

// Names returns the registered variant names in sorted order.
func (r *MemoryRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// LoadFile decodes the YAML schema file at path and registers every variant
// in it. Nothing is registered when any variant is invalid.
func LoadFile(r Registry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open schema file: %w", err)
	}
	defer f.Close()

	return Load(r, f)
}

// Load decodes schemas from src and registers them.
func Load(r Registry, src io.Reader) error {
	schemas, err := schema.Decode(src)
	if err != nil {
		return err
	}
	for _, s := range schemas {
		if err := r.Register(s); err != nil {
			return err
		}
	}
	return nil
}
