package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: "quit", Context: "global"},

		// Note list context
		{Key: "q", Command: "quit", Context: "list"},
		{Key: "j", Command: "cursor-down", Context: "list"},
		{Key: "down", Command: "cursor-down", Context: "list"},
		{Key: "k", Command: "cursor-up", Context: "list"},
		{Key: "up", Command: "cursor-up", Context: "list"},
		{Key: "g g", Command: "cursor-top", Context: "list"},
		{Key: "G", Command: "cursor-bottom", Context: "list"},
		{Key: "/", Command: "search", Context: "list"},
		{Key: "n", Command: "new-note", Context: "list"},
		{Key: "enter", Command: "edit-note", Context: "list"},
		{Key: "e", Command: "edit-note", Context: "list"},
		{Key: "x", Command: "delete-note", Context: "list"},
		{Key: "c", Command: "yank-content", Context: "list"},
		{Key: "C", Command: "yank-title", Context: "list"},
		{Key: "m", Command: "toggle-markdown", Context: "list"},
		{Key: "tab", Command: "switch-pane", Context: "list"},
		{Key: "r", Command: "refresh", Context: "list"},

		// Preview pane context
		{Key: "q", Command: "quit", Context: "preview"},
		{Key: "tab", Command: "switch-pane", Context: "preview"},
		{Key: "esc", Command: "back", Context: "preview"},
		{Key: "j", Command: "scroll-down", Context: "preview"},
		{Key: "k", Command: "scroll-up", Context: "preview"},
		{Key: "down", Command: "scroll-down", Context: "preview"},
		{Key: "up", Command: "scroll-up", Context: "preview"},
		{Key: "g", Command: "scroll-top", Context: "preview"},
		{Key: "G", Command: "scroll-bottom", Context: "preview"},
		{Key: "enter", Command: "edit-note", Context: "preview"},
		{Key: "e", Command: "edit-note", Context: "preview"},
		{Key: "m", Command: "toggle-markdown", Context: "preview"},

		// Search context
		{Key: "esc", Command: "cancel", Context: "search"},
		{Key: "enter", Command: "confirm", Context: "search"},
		{Key: "down", Command: "cursor-down", Context: "search"},
		{Key: "up", Command: "cursor-up", Context: "search"},
		{Key: "ctrl+n", Command: "cursor-down", Context: "search"},
		{Key: "ctrl+p", Command: "cursor-up", Context: "search"},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
