// Package config resolves how the buildenv command itself runs (project
// directory, settings file, variant, extra schema file, unsafe logging) from
// environment variables and CLI flags with precedence: CLI flags >
// Environment variables > Defaults.
package config
