// Package keymap maps keys to command ids per focus context, with user
// overrides layered on top of the defaults.
package keymap

// Binding ties a key to a command id within a focus context.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry resolves keys to commands. Context-scoped bindings win over
// global ones; user overrides win over defaults.
type Registry struct {
	bindings  map[string]map[string]string // context -> key -> command
	overrides map[string]string            // key -> command, any context
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings:  make(map[string]map[string]string),
		overrides: make(map[string]string),
	}
}

// RegisterBinding adds a binding, replacing any existing one for the same
// context and key.
func (r *Registry) RegisterBinding(b Binding) {
	ctx := r.bindings[b.Context]
	if ctx == nil {
		ctx = make(map[string]string)
		r.bindings[b.Context] = ctx
	}
	ctx[b.Key] = b.Command
}

// SetUserOverride maps a key to a command in every context.
func (r *Registry) SetUserOverride(key, command string) {
	r.overrides[key] = command
}

// Lookup resolves a key within a context. Resolution order: user override,
// context binding, global binding. Returns "" when unbound.
func (r *Registry) Lookup(context, key string) string {
	if cmd, ok := r.overrides[key]; ok {
		return cmd
	}
	if cmd, ok := r.bindings[context][key]; ok {
		return cmd
	}
	if cmd, ok := r.bindings["global"][key]; ok {
		return cmd
	}
	return ""
}
