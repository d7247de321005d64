package inject

import (
	"bytes"
	"errors"
	"slices"
	"testing"
)

func TestWriterAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf).ProcessFlags("-DREDIS_PORT=6379"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "-DREDIS_PORT=6379\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestWriterPropagatesErrors(t *testing.T) {
	if err := NewWriter(failingWriter{}).ProcessFlags("-DX=1"); err == nil {
		t.Fatalf("expected write error")
	}
}

func TestRecorderKeepsCalls(t *testing.T) {
	var rec Recorder
	_ = rec.ProcessFlags("-DA=1")
	_ = rec.ProcessFlags("-DB=2")

	calls := rec.Calls()
	if want := []string{"-DA=1", "-DB=2"}; !slices.Equal(calls, want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}

	calls[0] = "mutated"
	if rec.Calls()[0] != "-DA=1" {
		t.Fatalf("expected defensive copy")
	}
}
