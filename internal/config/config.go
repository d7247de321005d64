package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eugenenazirov/buildenv/internal/dotenv"
	"github.com/eugenenazirov/buildenv/internal/schema"
)

const defaultDir = "."

// Environment variables read by Load.
const (
	EnvDir           = "BUILDENV_DIR"
	EnvEnvFile       = "BUILDENV_ENV_FILE"
	EnvVariant       = "BUILDENV_VARIANT"
	EnvSchemaFile    = "BUILDENV_SCHEMA"
	EnvUnsafeLogging = "UNSAFE_LOGGING"
)

// Config aggregates the command's settings resolved from multiple sources.
type Config struct {
	Dir           string
	EnvFile       string
	Variant       string
	SchemaFile    string
	UnsafeLogging bool
}

// CLIOverrides holds command-line flag overrides. Nil fields are not set.
type CLIOverrides struct {
	Dir           *string
	EnvFile       *string
	Variant       *string
	SchemaFile    *string
	UnsafeLogging *bool
}

// Load extracts configuration with precedence:
// CLI flags > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Dir:     defaultDir,
		EnvFile: dotenv.DefaultFile,
		Variant: schema.DefaultVariant,
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if dir := strings.TrimSpace(os.Getenv(EnvDir)); dir != "" {
		cfg.Dir = dir
	}

	if file := strings.TrimSpace(os.Getenv(EnvEnvFile)); file != "" {
		cfg.EnvFile = file
	}

	if variant := strings.TrimSpace(os.Getenv(EnvVariant)); variant != "" {
		cfg.Variant = variant
	}

	if file := strings.TrimSpace(os.Getenv(EnvSchemaFile)); file != "" {
		cfg.SchemaFile = file
	}

	if raw, ok := os.LookupEnv(EnvUnsafeLogging); ok {
		cfg.UnsafeLogging = parseToggle(raw)
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Dir != nil && *overrides.Dir != "" {
		cfg.Dir = *overrides.Dir
	}

	if overrides.EnvFile != nil && *overrides.EnvFile != "" {
		cfg.EnvFile = *overrides.EnvFile
	}

	if overrides.Variant != nil && *overrides.Variant != "" {
		cfg.Variant = *overrides.Variant
	}

	if overrides.SchemaFile != nil && *overrides.SchemaFile != "" {
		cfg.SchemaFile = *overrides.SchemaFile
	}

	if overrides.UnsafeLogging != nil {
		cfg.UnsafeLogging = *overrides.UnsafeLogging
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.Variant == "" {
		return fmt.Errorf("variant cannot be empty")
	}
	if cfg.EnvFile == "" {
		return fmt.Errorf("settings file name cannot be empty")
	}
	return nil
}

// parseToggle treats the mere presence of the variable as enabled unless it
// holds an explicit false value.
func parseToggle(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return enabled
}
