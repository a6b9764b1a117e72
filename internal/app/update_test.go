package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jot/internal/config"
	"github.com/marcus/jot/internal/keymap"
	"github.com/marcus/jot/internal/note"
)

type fakeKV struct {
	data map[string][]byte
}

func (f *fakeKV) Get(key string) ([]byte, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(key string, value []byte) error {
	f.data[key] = value
	return nil
}

func (f *fakeKV) Clear() error {
	f.data = make(map[string][]byte)
	return nil
}

func (f *fakeKV) Close() error { return nil }

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.UI.MarkdownPreview = false // skip glamour in tests

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)

	store := note.NewStore(note.NewAdapter(&fakeKV{data: make(map[string][]byte)}, nil))
	m := New(cfg, km, store, nil, nil)

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return sized.(Model)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestNewNoteKeyOpensModal(t *testing.T) {
	m := testModel(t)
	m = press(t, m, "n")
	if !m.editor.IsOpen() {
		t.Fatalf("n should open the create modal")
	}
	m = press(t, m, "esc")
	if m.editor.IsOpen() {
		t.Errorf("esc should close the modal")
	}
}

func TestCreateNoteThroughModal(t *testing.T) {
	m := testModel(t)
	before := m.store.Len()

	m = press(t, m, "n")
	m = press(t, m, "M", "y", " ", "n", "o", "t", "e") // title
	m = press(t, m, "tab")
	m = press(t, m, "b", "o", "d", "y")
	m = press(t, m, "ctrl+s")

	if m.editor.IsOpen() {
		t.Fatalf("submit should close the modal")
	}
	if m.store.Len() != before+1 {
		t.Fatalf("note not created")
	}
	n, ok := m.selectedNote()
	if !ok || n.Title != "My note" || n.Content != "body" {
		t.Errorf("created note = %+v", n)
	}
}

func TestSubmitWithBlankContentKeepsModalOpen(t *testing.T) {
	m := testModel(t)
	before := m.store.Len()

	m = press(t, m, "n", "ctrl+s")
	if !m.editor.IsOpen() {
		t.Errorf("rejected submit should keep the modal open")
	}
	if m.store.Len() != before {
		t.Errorf("blank draft was saved")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := testModel(t)
	before := m.store.Len()

	m = press(t, m, "x")
	if m.confirm == nil {
		t.Fatalf("x should open the confirm dialog")
	}
	if m.store.Len() != before {
		t.Fatalf("delete happened before confirmation")
	}

	m = press(t, m, "n")
	if m.confirm != nil {
		t.Fatalf("n should decline while confirming")
	}
	if m.store.Len() != before {
		t.Errorf("declined delete still removed the note")
	}
	if m.editor.IsOpen() {
		t.Errorf("the decline keystroke leaked into the list context")
	}
}

func TestDeleteConfirmed(t *testing.T) {
	m := testModel(t)
	before := m.store.Len()

	m = press(t, m, "x", "y")
	if m.confirm != nil {
		t.Fatalf("confirm dialog should close")
	}
	if m.store.Len() != before-1 {
		t.Errorf("confirmed delete did not remove the note")
	}
}

func TestSearchFiltersList(t *testing.T) {
	m := testModel(t)
	m.store.Create("Groceries", "milk")
	m.store.Create("Work", "standup")

	m = press(t, m, "/")
	if !m.searchMode {
		t.Fatalf("/ should enter search mode")
	}
	m = press(t, m, "m", "i", "l", "k")

	visible := m.visibleNotes()
	if len(visible) != 1 || visible[0].Title != "Groceries" {
		t.Fatalf("filter not applied: %v", visible)
	}
	if m.store.SelectedID() != visible[0].ID {
		t.Errorf("selection should follow the filtered list")
	}

	m = press(t, m, "esc")
	if m.searchMode || m.query() != "" {
		t.Errorf("esc should clear the search")
	}
}

func TestSearchEnterKeepsFilter(t *testing.T) {
	m := testModel(t)
	m.store.Create("Groceries", "milk")

	m = press(t, m, "/", "m", "i", "l", "k", "enter")
	if m.searchMode {
		t.Errorf("enter should leave search mode")
	}
	if m.query() != "milk" {
		t.Errorf("enter should keep the filter, query = %q", m.query())
	}
}

func TestCursorNavigation(t *testing.T) {
	m := testModel(t)
	m.store.Create("A", "a")
	m.store.Create("B", "b")
	m.store.Create("C", "c")
	m.selectFirstVisible()

	first := m.visibleNotes()[0].ID
	m = press(t, m, "j", "j")
	if m.store.SelectedID() == first {
		t.Errorf("j did not move the selection")
	}
	m = press(t, m, "k", "k")
	if m.store.SelectedID() != first {
		t.Errorf("k did not move back to the first note")
	}

	// Clamped at the edges.
	m = press(t, m, "k")
	if m.store.SelectedID() != first {
		t.Errorf("cursor moved past the top")
	}

	m = press(t, m, "G")
	visible := m.visibleNotes()
	if m.store.SelectedID() != visible[len(visible)-1].ID {
		t.Errorf("G should jump to the bottom")
	}
	m = press(t, m, "g", "g")
	if m.store.SelectedID() != visible[0].ID {
		t.Errorf("gg should jump to the top")
	}
}

func TestGgSequenceHonorsUserOverride(t *testing.T) {
	m := testModel(t)
	m.store.Create("A", "a")
	m.store.Create("B", "b")
	m.keymap.SetUserOverride("g g", "cursor-bottom")
	m.selectFirstVisible()

	m = press(t, m, "g", "g")
	visible := m.visibleNotes()
	if m.store.SelectedID() != visible[len(visible)-1].ID {
		t.Errorf("overridden gg should resolve through the keymap")
	}
}

func TestHeaderShowsSearchPrompt(t *testing.T) {
	m := testModel(t)
	m = press(t, m, "/")

	header := m.renderHeader()
	if !strings.Contains(header, "/") {
		t.Errorf("search header missing the prompt: %q", header)
	}
}

func TestEditSelectedNote(t *testing.T) {
	m := testModel(t)
	m.store.Create("Target", "old")
	m.selectFirstVisible()

	m = press(t, m, "e")
	if !m.editor.IsOpen() {
		t.Fatalf("e should open the edit modal")
	}
	d := m.editor.Draft()
	if d.Title != "Target" || d.Content != "old" {
		t.Errorf("edit draft = %+v", d)
	}
}

func TestPaneSwitchAndQuitKey(t *testing.T) {
	m := testModel(t)

	m = press(t, m, "tab")
	if m.activePane != PanePreview {
		t.Errorf("tab should switch to the preview pane")
	}
	m = press(t, m, "esc")
	if m.activePane != PaneList {
		t.Errorf("esc should return to the list pane")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Errorf("q should quit from the list pane")
	}
}
