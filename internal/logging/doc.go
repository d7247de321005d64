// Package logging builds the zap logger shared by the buildenv command.
package logging
