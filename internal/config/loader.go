package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDir  = ".config/jot"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Pointer fields
// distinguish "absent" from zero values during the merge.
type rawConfig struct {
	Storage rawStorageConfig `json:"storage"`
	UI      rawUIConfig      `json:"ui"`
	Keymap  KeymapConfig     `json:"keymap"`
}

type rawStorageConfig struct {
	Backend string `json:"backend"`
	DataDir string `json:"dataDir"`
}

type rawUIConfig struct {
	MarkdownPreview *bool  `json:"markdownPreview"`
	MarkdownStyle   string `json:"markdownStyle"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/jot/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)

	cfg.Storage.DataDir = ExpandPath(cfg.Storage.DataDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the defaults.
func mergeConfig(cfg *Config, raw *rawConfig) {
	if raw.Storage.Backend != "" {
		cfg.Storage.Backend = raw.Storage.Backend
	}
	if raw.Storage.DataDir != "" {
		cfg.Storage.DataDir = raw.Storage.DataDir
	}

	if raw.UI.MarkdownPreview != nil {
		cfg.UI.MarkdownPreview = *raw.UI.MarkdownPreview
	}
	if raw.UI.MarkdownStyle != "" {
		cfg.UI.MarkdownStyle = raw.UI.MarkdownStyle
	}

	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}
}

// ExpandPath expands ~ to the home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
