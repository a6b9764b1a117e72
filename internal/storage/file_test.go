package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := fs.Set("notes", []byte(`[{"id":"nt-1"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, ok, err := fs.Get("notes")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(data) != `[{"id":"nt-1"}]` {
		t.Errorf("Get returned %q", data)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	_, ok, err := fs.Get("absent")
	if err != nil {
		t.Fatalf("missing key must not be an error: %v", err)
	}
	if ok {
		t.Errorf("missing key reported as present")
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	if _, err := NewFileStore(dir); err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data directory not created: %v", err)
	}
}

func TestFileStoreClearKeepsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := fs.Set("notes", []byte("[]")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	foreign := filepath.Join(dir, "README.txt")
	if err := os.WriteFile(foreign, []byte("keep me"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := fs.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if _, ok, _ := fs.Get("notes"); ok {
		t.Errorf("Clear left a stored document behind")
	}
	if _, err := os.Stat(foreign); err != nil {
		t.Errorf("Clear removed a file it does not own: %v", err)
	}
}

func TestFileStorePath(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	want := filepath.Join(dir, "notes.json")
	if got := fs.Path("notes"); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}
