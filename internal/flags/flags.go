// Package flags renders a resolved build configuration as preprocessor
// definitions for the compiler command line.
package flags

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/eugenenazirov/buildenv/internal/loader"
	"github.com/eugenenazirov/buildenv/internal/schema"
)

// Definition renders a single -D<name>=<value> definition using style.
func Definition(name, value string, style schema.Style) (string, error) {
	switch style {
	case schema.StyleRaw:
		if value == "" || strings.IndexFunc(value, unicode.IsSpace) >= 0 || strings.ContainsAny(value, `"'\`) {
			return "", fmt.Errorf("%w: %s=%q as raw", ErrUnsafeValue, name, value)
		}
		return fmt.Sprintf("-D%s=%s", name, value), nil
	case schema.StyleEscaped:
		// No shell quoting surrounds the value, so whitespace would split it.
		if strings.IndexFunc(value, unicode.IsSpace) >= 0 || strings.ContainsAny(value, `"'\`) {
			return "", fmt.Errorf("%w: %s contains whitespace, a quote or a backslash", ErrUnsafeValue, name)
		}
		return fmt.Sprintf(`-D%s=\"%s\"`, name, value), nil
	case schema.StyleShell:
		if strings.ContainsAny(value, `"'\`) {
			return "", fmt.Errorf("%w: %s contains a quote or backslash", ErrUnsafeValue, name)
		}
		return fmt.Sprintf(`-D%s='"%s"'`, name, value), nil
	default:
		return "", fmt.Errorf("%w %q for %s", ErrUnknownStyle, style, name)
	}
}

// Format renders every resolved entry of cfg, in schema order, as one
// space-separated flag string.
func Format(cfg loader.BuildConfig) (string, error) {
	entries := cfg.Entries()
	defs := make([]string, 0, len(entries))
	for _, entry := range entries {
		def, err := Definition(entry.Key.Name, entry.Value, entry.Key.Style)
		if err != nil {
			return "", err
		}
		defs = append(defs, def)
	}
	return strings.Join(defs, " "), nil
}
