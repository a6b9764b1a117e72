// Package state persists lightweight UI preferences between sessions.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// State holds persistent user preferences.
type State struct {
	// ListWidth is the note list pane width as a percentage of the total
	// width (0 = use default).
	ListWidth int `json:"listWidth,omitempty"`

	// RawPreview disables markdown rendering in the preview pane.
	RawPreview bool `json:"rawPreview,omitempty"`
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "jot"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	path = filepath.Join(dir, "state.json")
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetListWidth returns the saved list pane width.
// Returns 0 if no preference is saved (use default).
func GetListWidth() int {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return 0
	}
	return current.ListWidth
}

// SetListWidth saves the list pane width preference.
func SetListWidth(width int) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.ListWidth = width
	mu.Unlock()
	return Save()
}

// GetRawPreview returns whether the preview pane shows raw text.
func GetRawPreview() bool {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return false
	}
	return current.RawPreview
}

// SetRawPreview saves the raw-preview preference.
func SetRawPreview(raw bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.RawPreview = raw
	mu.Unlock()
	return Save()
}
