package keymap

import "testing"

func TestLookupContextBeatsGlobal(t *testing.T) {
	r := NewRegistry()
	r.RegisterBinding(Binding{Key: "q", Command: "quit", Context: "global"})
	r.RegisterBinding(Binding{Key: "q", Command: "cancel", Context: "search"})

	if got := r.Lookup("search", "q"); got != "cancel" {
		t.Errorf("context binding should win, got %q", got)
	}
	if got := r.Lookup("list", "q"); got != "quit" {
		t.Errorf("global fallback broken, got %q", got)
	}
}

func TestLookupOverrideBeatsEverything(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)
	r.SetUserOverride("x", "quit")

	if got := r.Lookup("list", "x"); got != "quit" {
		t.Errorf("user override should win, got %q", got)
	}
}

func TestLookupUnbound(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)
	if got := r.Lookup("list", "f12"); got != "" {
		t.Errorf("unbound key resolved to %q", got)
	}
}

func TestDefaultsCoverCoreCommands(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	tests := []struct {
		context, key, want string
	}{
		{"list", "n", "new-note"},
		{"list", "g g", "cursor-top"},
		{"list", "x", "delete-note"},
		{"list", "/", "search"},
		{"list", "enter", "edit-note"},
		{"preview", "j", "scroll-down"},
		{"search", "esc", "cancel"},
		{"list", "ctrl+c", "quit"}, // via global
	}
	for _, tt := range tests {
		if got := r.Lookup(tt.context, tt.key); got != tt.want {
			t.Errorf("Lookup(%s, %s) = %q, want %q", tt.context, tt.key, got, tt.want)
		}
	}
}
