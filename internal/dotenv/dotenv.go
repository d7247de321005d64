// Package dotenv reads the optional local settings file: one KEY=value pair
// per line, values optionally wrapped in quotes.
package dotenv

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultFile is the settings file name looked up in the working directory.
const DefaultFile = ".env"

// ErrNotFound is returned by Read when the settings file does not exist or is
// not a regular file.
var ErrNotFound = errors.New("settings file not found")

// Read parses the settings file at path.
func Read(path string) (map[string]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	values, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// Parse reads KEY=value pairs from r. Surrounding quotes are stripped, blank
// lines and comments are skipped.
func Parse(r io.Reader) (map[string]string, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return values, nil
}
