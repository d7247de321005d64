// Package loader resolves a build variant's configuration from the local
// settings file and the process environment.
//
// Sources are applied in order: settings file, then environment variables.
// A non-empty environment variable always wins over the file. Mandatory keys
// that are still empty afterwards abort the build.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/buildenv/internal/dotenv"
	"github.com/eugenenazirov/buildenv/internal/schema"
)

// Options configures where Load looks for values.
type Options struct {
	// Dir is the project directory. Relative paths are resolved against it.
	Dir string
	// EnvFile is the settings file, dotenv.DefaultFile when empty.
	EnvFile string
	// LookupEnv reads the process environment, os.LookupEnv when nil.
	LookupEnv func(string) (string, bool)
	Logger    *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.EnvFile == "" {
		o.EnvFile = dotenv.DefaultFile
	}
	if o.LookupEnv == nil {
		o.LookupEnv = os.LookupEnv
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

func (o Options) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.Dir, path)
}

// Load resolves s against the settings file and the environment.
func Load(s schema.Schema, opts Options) (BuildConfig, error) {
	opts = opts.withDefaults()
	logger := opts.Logger.With(zap.String("variant", s.Name))

	if err := checkCredentialFile(s, opts); err != nil {
		return BuildConfig{}, err
	}

	fileValues, err := readSettings(opts, logger)
	if err != nil {
		return BuildConfig{}, err
	}

	values := make(map[string]string, len(s.Keys))
	var missing []error

	for _, key := range s.Keys {
		value, source := lookup(key.Name, fileValues, opts.LookupEnv)
		if value == "" {
			if key.Required {
				missing = append(missing, &MissingConfigError{Key: key.Name})
				continue
			}
			if key.Default == "" {
				continue
			}
			value, source = key.Default, "default"
		}

		values[key.Name] = value
		logger.Debug("found value",
			zap.String("key", key.Name),
			zap.String("value", Entry{Key: key, Value: value}.Display()),
			zap.String("source", source),
		)
	}

	if len(missing) > 0 {
		return BuildConfig{}, errors.Join(missing...)
	}

	return BuildConfig{
		variant: s.Name,
		keys:    s.Clone().Keys,
		values:  values,
	}, nil
}

func checkCredentialFile(s schema.Schema, opts Options) error {
	if s.CredentialFile == "" {
		return nil
	}

	info, err := os.Stat(opts.resolve(s.CredentialFile))
	if err != nil || !info.Mode().IsRegular() {
		return &MissingFileError{Path: s.CredentialFile}
	}
	return nil
}

func readSettings(opts Options, logger *zap.Logger) (map[string]string, error) {
	path := opts.resolve(opts.EnvFile)

	values, err := dotenv.Read(path)
	if errors.Is(err, dotenv.ErrNotFound) {
		logger.Debug("no settings file", zap.String("path", path))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings file: %w", err)
	}

	logger.Info("loaded settings file", zap.String("path", path))
	return values, nil
}

func lookup(name string, fileValues map[string]string, lookupEnv func(string) (string, bool)) (string, string) {
	if v, ok := lookupEnv(name); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v, "environment"
		}
	}
	if v := strings.TrimSpace(fileValues[name]); v != "" {
		return v, "file"
	}
	return "", ""
}
