// Package app is the root Bubble Tea program: it owns the presentation
// state and forwards user intents to the note store.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/jot/internal/config"
	"github.com/marcus/jot/internal/keymap"
	"github.com/marcus/jot/internal/modal"
	"github.com/marcus/jot/internal/note"
	"github.com/marcus/jot/internal/state"
	"github.com/marcus/jot/internal/styles"
	"github.com/marcus/jot/internal/ui"
)

// Pane identifies which pane has focus.
type Pane int

const (
	PaneList Pane = iota
	PanePreview
)

const (
	defaultListPercent = 35
	minListWidth       = 20
)

// Model is the root Bubble Tea model.
type Model struct {
	cfg    *config.Config
	keymap *keymap.Registry
	store  *note.Store
	logger *slog.Logger

	// UI state
	width, height int
	ready         bool
	activePane    Pane
	listPercent   int
	pendingG      bool

	// Search state
	searchMode  bool
	searchInput textinput.Model

	// Preview state
	previewScroll int
	rawPreview    bool
	mdRenderer    *glamour.TermRenderer

	// Create/edit modal
	editor modal.Editor

	// Delete confirmation
	confirm  *ui.ConfirmDialog
	deleteID string

	// Toast state
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool

	// External change signal (nil when the watcher is disabled)
	changes <-chan struct{}
}

// New creates the application model. changes may be nil when no storage
// watcher is active; a nil logger discards output.
func New(cfg *config.Config, km *keymap.Registry, store *note.Store, changes <-chan struct{}, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	si := textinput.New()
	si.Placeholder = "Search notes..."
	si.CharLimit = 120
	si.Prompt = "/ "
	si.PromptStyle = lipgloss.NewStyle().Foreground(styles.Accent)

	lp := state.GetListWidth()
	if lp <= 0 {
		lp = defaultListPercent
	}

	return Model{
		cfg:         cfg,
		keymap:      km,
		store:       store,
		logger:      logger,
		listPercent: lp,
		searchInput: si,
		rawPreview:  state.GetRawPreview(),
		editor:      modal.New(),
		changes:     changes,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		waitForChange(m.changes),
	)
}

// query returns the live search term.
func (m *Model) query() string {
	return m.searchInput.Value()
}

// visibleNotes derives the display list from the store and the search term.
func (m *Model) visibleNotes() []note.Note {
	return note.Visible(m.store.Notes(), m.query())
}

// selectedNote returns the store's selected note, if any.
func (m *Model) selectedNote() (note.Note, bool) {
	return note.Selected(m.store.Notes(), m.store.SelectedID())
}

// cursorIndex returns the selected note's position in the visible list, or
// -1 when the selection is filtered out or empty.
func (m *Model) cursorIndex(visible []note.Note) int {
	id := m.store.SelectedID()
	for i, n := range visible {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// focusContext names the active input context for keymap resolution.
func (m *Model) focusContext() string {
	switch {
	case m.searchMode:
		return "search"
	case m.activePane == PanePreview:
		return "preview"
	default:
		return "list"
	}
}

// showToast sets a transient status message.
func (m *Model) showToast(text string, isError bool) {
	m.statusMsg = text
	m.statusExpiry = time.Now().Add(2 * time.Second)
	m.statusIsError = isError
}

// clearExpiredToast clears the toast once its expiry passes.
func (m *Model) clearExpiredToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// listWidth returns the list pane width in cells for the current size.
func (m *Model) listWidth() int {
	w := m.width * m.listPercent / 100
	if w < minListWidth {
		w = minListWidth
	}
	if max := m.width - minListWidth; w > max {
		w = max
	}
	return w
}

// rebuildRenderer recreates the glamour renderer for the preview width.
func (m *Model) rebuildRenderer() {
	if !m.cfg.UI.MarkdownPreview {
		m.mdRenderer = nil
		return
	}
	wrap := m.width - m.listWidth() - 6
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.cfg.UI.MarkdownStyle),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.logger.Warn("glamour init failed", "error", err)
		m.mdRenderer = nil
		return
	}
	m.mdRenderer = r
}
