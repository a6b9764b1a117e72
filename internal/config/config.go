// Package config loads and saves the application configuration.
package config

import "fmt"

// Backend names for the persistence store.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the root configuration structure.
type Config struct {
	Storage StorageConfig `json:"storage"`
	UI      UIConfig      `json:"ui"`
	Keymap  KeymapConfig  `json:"keymap"`
}

// StorageConfig selects where and how notes are persisted.
type StorageConfig struct {
	// Backend is "file" (one JSON document per key) or "sqlite".
	Backend string `json:"backend"`
	// DataDir holds the notes document or database (supports ~ expansion).
	DataDir string `json:"dataDir"`
}

// UIConfig configures appearance.
type UIConfig struct {
	// MarkdownPreview renders note content as markdown in the preview pane.
	MarkdownPreview bool `json:"markdownPreview"`
	// MarkdownStyle is the glamour style name used for the preview.
	MarkdownStyle string `json:"markdownStyle"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendFile,
			DataDir: "~/.local/share/jot",
		},
		UI: UIConfig{
			MarkdownPreview: true,
			MarkdownStyle:   "dark",
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.DataDir == "" {
		return fmt.Errorf("storage dataDir must not be empty")
	}
	return nil
}
