package prefs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope", "prefs.yaml"))
	v, ok, err := s.Get("theme")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if ok || v != "" {
		t.Errorf("Get() = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "prefs.yaml")
	s := NewFileStore(path)

	if err := s.Set("theme", "dark"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	// A fresh store reads what the first one wrote.
	v, ok, err := NewFileStore(path).Get("theme")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !ok || v != "dark" {
		t.Errorf("Get() = (%q, %v), want (\"dark\", true)", v, ok)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "theme: dark") {
		t.Errorf("file content = %q, want YAML with theme: dark", string(data))
	}
}

func TestFileStoreOverwriteKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	if err := os.WriteFile(path, []byte("theme: light\nother: kept\n"), 0600); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	if err := s.Set("theme", "dark"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if v, _, _ := s.Get("other"); v != "kept" {
		t.Errorf("other = %q, want %q", v, "kept")
	}
	if v, _, _ := s.Get("theme"); v != "dark" {
		t.Errorf("theme = %q, want %q", v, "dark")
	}
}

func TestFileStoreFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	if err := NewFileStore(path).Set("theme", "light"); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("mode = %o, want 600", perm)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	if _, _, err := s.Get("theme"); err == nil {
		t.Error("expected error for corrupt prefs file")
	}
	if err := s.Set("theme", "dark"); err == nil {
		t.Error("expected Set to refuse to clobber a corrupt prefs file")
	}
}

func TestMemStore(t *testing.T) {
	var s MemStore
	if _, ok, _ := s.Get("theme"); ok {
		t.Fatal("zero MemStore should be empty")
	}
	if err := s.Set("theme", "dark"); err != nil {
		t.Fatal(err)
	}
	if v, ok, _ := s.Get("theme"); !ok || v != "dark" {
		t.Errorf("Get() = (%q, %v), want (\"dark\", true)", v, ok)
	}
}
