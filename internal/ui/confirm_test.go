package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestConfirmDefaultsToCancel(t *testing.T) {
	d := NewConfirmDialog("Delete note?", "gone forever")
	if d.FocusedConfirm() {
		t.Errorf("focus must start on cancel")
	}
	if got := d.HandleKey(key("enter")); got != "cancel" {
		t.Errorf("enter on fresh dialog = %q, want cancel", got)
	}
}

func TestConfirmShortcuts(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"y", "confirm"},
		{"Y", "confirm"},
		{"n", "cancel"},
		{"N", "cancel"},
		{"esc", "cancel"},
		{"q", "cancel"},
	}
	for _, tt := range tests {
		d := NewConfirmDialog("t", "m")
		if got := d.HandleKey(key(tt.key)); got != tt.want {
			t.Errorf("key %q = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestConfirmFocusToggle(t *testing.T) {
	d := NewConfirmDialog("t", "m")

	if got := d.HandleKey(key("tab")); got != "" {
		t.Fatalf("tab should only move focus, got %q", got)
	}
	if !d.FocusedConfirm() {
		t.Errorf("tab should focus confirm")
	}
	if got := d.HandleKey(key("enter")); got != "confirm" {
		t.Errorf("enter on focused confirm = %q", got)
	}
}

func TestConfirmViewShowsLabels(t *testing.T) {
	d := NewConfirmDialog("Delete note?", "This cannot be undone.")
	d.ConfirmLabel = "Delete"

	view := d.View()
	for _, want := range []string{"Delete note?", "This cannot be undone.", "Delete", "Cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
