package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Style controls how a resolved value is quoted inside its -D definition.
type Style string

const (
	// StyleRaw emits the value as-is, for numeric definitions: -DREDIS_PORT=6379.
	StyleRaw Style = "raw"
	// StyleEscaped wraps the value in backslash-escaped quotes: -DREDIS_HOST=\"host\".
	StyleEscaped Style = "escaped"
	// StyleShell wraps the value in double quotes protected by single quotes: -DREDIS_HOST='"host"'.
	StyleShell Style = "shell"
)

// ErrInvalid is returned when a schema fails validation.
var ErrInvalid = errors.New("invalid schema")

var (
	identifierPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	variantPattern    = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// Key declares a single configuration value read from the settings file or
// the environment under Name and injected as -D<Name>.
type Key struct {
	Name     string `yaml:"name" validate:"required,identifier"`
	Required bool   `yaml:"required,omitempty"`
	Default  string `yaml:"default,omitempty"`
	Secret   bool   `yaml:"secret,omitempty"`
	Style    Style  `yaml:"style" validate:"required,oneof=raw escaped shell"`
}

// Schema is the declarative description of one build variant.
type Schema struct {
	Name           string `yaml:"name" validate:"required,variant"`
	CredentialFile string `yaml:"credential_file,omitempty"`
	Keys           []Key  `yaml:"keys" validate:"required,min=1,unique=Name,dive"`
}

// file is the on-disk YAML layout accepted by Decode.
type file struct {
	Variants []Schema `yaml:"variants"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "identifier", identifierPattern)
	mustRegister(v, "variant", variantPattern)
	v.RegisterStructValidation(validateKey, Key{})
	return v
}

func mustRegister(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// validateKey rejects required keys that also declare a default; the default
// could never apply.
func validateKey(sl validator.StructLevel) {
	key := sl.Current().Interface().(Key)
	if key.Required && key.Default != "" {
		sl.ReportError(key.Default, "Default", "default", "required_without_default", "")
	}
}

// Validate checks the schema's structure.
func (s Schema) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalid, s.Name, err)
	}
	return nil
}

// Key returns the key spec with the given name.
func (s Schema) Key(name string) (Key, bool) {
	for _, key := range s.Keys {
		if key.Name == name {
			return key, true
		}
	}
	return Key{}, false
}

// Clone returns a deep copy of the schema.
func (s Schema) Clone() Schema {
	out := s
	out.Keys = make([]Key, len(s.Keys))
	copy(out.Keys, s.Keys)
	return out
}

// Decode parses a YAML document holding a top-level "variants" list and
// validates every schema in it. Unknown fields are rejected.
func Decode(r io.Reader) ([]Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	if len(f.Variants) == 0 {
		return nil, fmt.Errorf("%w: no variants declared", ErrInvalid)
	}

	for _, s := range f.Variants {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Variants, nil
}

// Encode renders the schemas in the layout Decode accepts.
func Encode(w io.Writer, schemas ...Schema) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file{Variants: schemas}); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
