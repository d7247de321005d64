package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/eugenenazirov/buildenv/internal/schema"
)

func TestNewHoldsBuiltinVariants(t *testing.T) {
	t.Parallel()

	reg := New()

	if want := []string{"firmware", "redis", "tls-tester"}; !slices.Equal(reg.Names(), want) {
		t.Fatalf("expected variants %v, got %v", want, reg.Names())
	}

	s, err := reg.Get("tls-tester")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.CredentialFile != schema.RootCertificatePath {
		t.Fatalf("unexpected credential file %q", s.CredentialFile)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	t.Parallel()

	reg := New()
	s, err := reg.Get("redis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// ensure mutation safety
	s.Keys[0].Name = "CHANGED"
	again, err := reg.Get("redis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Keys[0].Name == "CHANGED" {
		t.Fatalf("expected defensive copy, got %v", again.Keys)
	}
}

func TestGetUnknownVariant(t *testing.T) {
	t.Parallel()

	if _, err := New().Get("esp8266"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestRegisterOverridesBuiltin(t *testing.T) {
	t.Parallel()

	reg := New()
	custom := schema.Schema{
		Name: "redis",
		Keys: []schema.Key{{Name: "REDIS_URL", Required: true, Style: schema.StyleShell}},
	}
	if err := reg.Register(custom); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := reg.Get("redis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Keys) != 1 || got.Keys[0].Name != "REDIS_URL" {
		t.Fatalf("expected overridden schema, got %v", got.Keys)
	}
}

func TestRegisterRejectsInvalidSchema(t *testing.T) {
	t.Parallel()

	err := New().Register(schema.Schema{Name: "broken"})
	if !errors.Is(err, schema.ErrInvalid) {
		t.Fatalf("expected schema.ErrInvalid, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "variants.yaml")
	doc := "variants:\n  - name: c3-mini\n    keys:\n      - name: REDIS_HOST\n        required: true\n        style: escaped\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write schema file: %v", err)
	}

	reg := New()
	if err := LoadFile(reg, path); err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if _, err := reg.Get("c3-mini"); err != nil {
		t.Fatalf("expected c3-mini to be registered: %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	if err := LoadFile(New(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing schema file")
	}
}

func TestLoadInvalidLeavesRegistryUntouched(t *testing.T) {
	t.Parallel()

	reg := New()
	doc := "variants:\n  - name: good\n    keys:\n      - name: A\n        style: raw\n  - name: bad\n    keys: []\n"
	if err := Load(reg, strings.NewReader(doc)); err == nil {
		t.Fatalf("expected error for invalid variant")
	}
	if _, err := reg.Get("good"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected no partial registration, got %v", err)
	}
}

func TestMemoryRegistryConcurrentAccess(t *testing.T) {
	reg := New()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(offset int) {
			defer wg.Done()
			s := schema.Schema{
				Name: fmt.Sprintf("board-%d", offset),
				Keys: []schema.Key{{Name: "REDIS_HOST", Required: true, Style: schema.StyleShell}},
			}
			if err := reg.Register(s); err != nil {
				t.Errorf("Register failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			if _, err := reg.Get("firmware"); err != nil {
				t.Errorf("Get failed: %v", err)
			}
		}()
	}

	wg.Wait()

	if got := len(reg.Names()); got != 35 {
		t.Fatalf("expected 35 variants, got %d", got)
	}
}
