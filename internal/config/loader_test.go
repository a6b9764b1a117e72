package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Storage.Backend != BackendFile {
		t.Errorf("default backend = %q", cfg.Storage.Backend)
	}
	if !cfg.UI.MarkdownPreview {
		t.Errorf("markdown preview should default on")
	}
}

func TestLoadFromMergesPartialConfig(t *testing.T) {
	path := writeConfig(t, `{"storage": {"backend": "sqlite"}}`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("backend override not applied: %q", cfg.Storage.Backend)
	}
	// Unspecified fields keep their defaults.
	if cfg.UI.MarkdownStyle != "dark" {
		t.Errorf("unset style should stay default, got %q", cfg.UI.MarkdownStyle)
	}
	if !cfg.UI.MarkdownPreview {
		t.Errorf("unset preview flag should stay default")
	}
}

func TestLoadFromFalseBoolSurvivesMerge(t *testing.T) {
	path := writeConfig(t, `{"ui": {"markdownPreview": false}}`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UI.MarkdownPreview {
		t.Errorf("explicit false was lost in the merge")
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{broken`)
	if _, err := LoadFrom(path); err == nil {
		t.Errorf("invalid JSON should fail loudly")
	}
}

func TestLoadFromRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, `{"storage": {"backend": "redis"}}`)
	if _, err := LoadFrom(path); err == nil {
		t.Errorf("unknown backend should fail validation")
	}
}

func TestLoadFromKeymapOverrides(t *testing.T) {
	path := writeConfig(t, `{"keymap": {"overrides": {"d": "delete-note"}}}`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Keymap.Overrides["d"] != "delete-note" {
		t.Errorf("override not loaded: %v", cfg.Keymap.Overrides)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/notes"); got != filepath.Join(home, "notes") {
		t.Errorf("ExpandPath(~/notes) = %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path should pass through, got %q", got)
	}
}
