package application

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/buildenv/internal/config"
	"github.com/eugenenazirov/buildenv/internal/flags"
	"github.com/eugenenazirov/buildenv/internal/inject"
	"github.com/eugenenazirov/buildenv/internal/loader"
	"github.com/eugenenazirov/buildenv/internal/registry"
	"github.com/eugenenazirov/buildenv/internal/schema"
)

// App encapsulates the dependencies of one buildenv invocation.
type App struct {
	cfg       config.Config
	registry  registry.Registry
	target    inject.Target
	logger    *zap.Logger
	lookupEnv func(string) (string, bool)
}

// Option configures App behaviour.
type Option func(*App)

// WithLookupEnv overrides the environment source, primarily for tests.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(a *App) {
		a.lookupEnv = lookup
	}
}

// New initializes the application from the provided configuration. Extra
// schemas from cfg.SchemaFile are registered on top of the built-in variants.
func New(cfg config.Config, target inject.Target, logger *zap.Logger, opts ...Option) (*App, error) {
	reg := registry.New()
	if cfg.SchemaFile != "" {
		if err := registry.LoadFile(reg, cfg.SchemaFile); err != nil {
			return nil, fmt.Errorf("failed to load schema file: %w", err)
		}
		logger.Debug("registered schema file", zap.String("path", cfg.SchemaFile))
	}

	app := &App{
		cfg:      cfg,
		registry: reg,
		target:   target,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app, nil
}

// Resolve loads the configured variant.
func (a *App) Resolve() (loader.BuildConfig, error) {
	s, err := a.registry.Get(a.cfg.Variant)
	if err != nil {
		return loader.BuildConfig{}, err
	}

	return loader.Load(s, loader.Options{
		Dir:       a.cfg.Dir,
		EnvFile:   a.cfg.EnvFile,
		LookupEnv: a.lookupEnv,
		Logger:    a.logger,
	})
}

// Flags resolves the configured variant and hands its flag string to the
// injection target.
func (a *App) Flags() error {
	cfg, err := a.Resolve()
	if err != nil {
		return err
	}

	flagStr, err := flags.Format(cfg)
	if err != nil {
		return fmt.Errorf("format build flags: %w", err)
	}

	a.logger.Info("environment ready, adding definitions to build flags",
		zap.String("variant", cfg.Variant()),
		zap.Int("definitions", len(cfg.Entries())),
	)
	if a.cfg.UnsafeLogging {
		a.logger.Warn("build flags", zap.String("flags", flagStr))
	}

	return a.target.ProcessFlags(flagStr)
}

// Check resolves the configured variant and writes NAME=value lines to w with
// secrets masked.
func (a *App) Check(w io.Writer) error {
	cfg, err := a.Resolve()
	if err != nil {
		return err
	}

	if _, err := flags.Format(cfg); err != nil {
		return fmt.Errorf("format build flags: %w", err)
	}

	for _, entry := range cfg.Entries() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", entry.Key.Name, entry.Display()); err != nil {
			return err
		}
	}
	return nil
}

// Variants lists the registered variant names.
func (a *App) Variants() []string {
	return a.registry.Names()
}

// Schema writes the named variant's schema to w as YAML.
func (a *App) Schema(w io.Writer, name string) error {
	s, err := a.registry.Get(name)
	if err != nil {
		return err
	}
	return schema.Encode(w, s)
}
