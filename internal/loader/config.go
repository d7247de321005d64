package loader

import (
	"maps"

	"github.com/eugenenazirov/buildenv/internal/schema"
)

const masked = "******"

// Entry is a resolved key together with its spec.
type Entry struct {
	Key   schema.Key
	Value string
}

// Display returns the value suitable for logs, hiding secrets.
func (e Entry) Display() string {
	if e.Key.Secret && e.Value != "" {
		return masked
	}
	return e.Value
}

// BuildConfig is the resolved configuration of one build invocation. It is
// only produced by Load and never changes afterwards.
type BuildConfig struct {
	variant string
	keys    []schema.Key
	values  map[string]string
}

// Variant names the schema the configuration was resolved against.
func (c BuildConfig) Variant() string {
	return c.variant
}

// Get returns the resolved value of name.
func (c BuildConfig) Get(name string) (string, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Values returns a copy of all resolved values keyed by name.
func (c BuildConfig) Values() map[string]string {
	return maps.Clone(c.values)
}

// Entries returns the resolved keys in schema order. Optional keys without a
// value or default are left out.
func (c BuildConfig) Entries() []Entry {
	out := make([]Entry, 0, len(c.values))
	for _, key := range c.keys {
		if v, ok := c.values[key.Name]; ok {
			out = append(out, Entry{Key: key, Value: v})
		}
	}
	return out
}
