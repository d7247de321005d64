// Package inject hands the final flag string to the build tool.
package inject

import (
	"fmt"
	"io"
	"sync"
)

// Target receives the rendered flag string. It is the only point where
// buildenv touches the build tool.
type Target interface {
	ProcessFlags(flags string) error
}

// Writer writes the flag string followed by a newline to an io.Writer. Pointed
// at stdout it feeds PlatformIO's dynamic build_flags ("!buildenv flags").
type Writer struct {
	w io.Writer
}

// NewWriter returns a Target writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// ProcessFlags implements Target.
func (t *Writer) ProcessFlags(flags string) error {
	if _, err := fmt.Fprintln(t.w, flags); err != nil {
		return fmt.Errorf("write build flags: %w", err)
	}
	return nil
}

// Recorder keeps every flag string it receives.
type Recorder struct {
	mu    sync.Mutex
	calls []string
}

// ProcessFlags implements Target.
func (r *Recorder) ProcessFlags(flags string) error {
	r.mu.Lock()
	r.calls = append(r.calls, flags)
	r.mu.Unlock()
	return nil
}

// Calls returns a copy of the recorded flag strings.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}
