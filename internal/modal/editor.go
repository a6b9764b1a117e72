// Package modal implements the create/edit modal: a small state machine
// around a transient draft, backed by bubbles inputs for interactive use.
package modal

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/jot/internal/note"
	"github.com/marcus/jot/internal/styles"
)

// Mode distinguishes what a submit does.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Field identifies a draft field.
type Field int

const (
	FieldTitle Field = iota
	FieldContent
)

// Draft is the transient edit buffer. It is discarded on close regardless of
// submit or cancel.
type Draft struct {
	ID      string // empty for ModeCreate
	Title   string
	Content string
}

// Sink receives submitted drafts. *note.Store satisfies it.
type Sink interface {
	Create(title, content string) note.Note
	Update(id, title, content string)
}

const defaultWidth = 64

// Editor is the modal state machine: Closed, or Open(Create|Edit, draft).
type Editor struct {
	open    bool
	mode    Mode
	draftID string
	focus   Field

	titleInput  textinput.Model
	contentArea textarea.Model

	width  int
	height int
}

// New returns a closed editor with configured inputs.
func New() Editor {
	ti := textinput.New()
	ti.Placeholder = note.DefaultTitle
	ti.CharLimit = 120
	ti.Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "Write something..."
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.ShowLineNumbers = false

	return Editor{
		titleInput:  ti,
		contentArea: ta,
		width:       defaultWidth,
	}
}

// IsOpen reports whether the modal is open.
func (e *Editor) IsOpen() bool { return e.open }

// Mode returns the current mode. Meaningful only while open.
func (e *Editor) Mode() Mode { return e.mode }

// Focus returns the focused field. Meaningful only while open.
func (e *Editor) Focus() Field { return e.focus }

// Draft returns the current draft contents.
func (e *Editor) Draft() Draft {
	return Draft{
		ID:      e.draftID,
		Title:   e.titleInput.Value(),
		Content: e.contentArea.Value(),
	}
}

// OpenForCreate opens the modal with an empty draft and focuses the title.
func (e *Editor) OpenForCreate() tea.Cmd {
	e.open = true
	e.mode = ModeCreate
	e.draftID = ""
	e.titleInput.SetValue("")
	e.contentArea.SetValue("")
	return e.setFocus(FieldTitle)
}

// OpenForEdit opens the modal with the note's fields as the draft and
// focuses the content.
func (e *Editor) OpenForEdit(n note.Note) tea.Cmd {
	e.open = true
	e.mode = ModeEdit
	e.draftID = n.ID
	e.titleInput.SetValue(n.Title)
	e.contentArea.SetValue(n.Content)
	return e.setFocus(FieldContent)
}

// SetDraftField replaces one draft field. No-op while closed.
func (e *Editor) SetDraftField(f Field, value string) {
	if !e.open {
		return
	}
	switch f {
	case FieldTitle:
		e.titleInput.SetValue(value)
	case FieldContent:
		e.contentArea.SetValue(value)
	}
}

// Close discards the draft unconditionally.
func (e *Editor) Close() {
	e.open = false
	e.draftID = ""
	e.titleInput.SetValue("")
	e.titleInput.Blur()
	e.contentArea.SetValue("")
	e.contentArea.Blur()
}

// CanSubmit reports whether a submit would be accepted: open with non-blank
// draft content.
func (e *Editor) CanSubmit() bool {
	return e.open && !note.IsBlank(e.contentArea.Value())
}

// Submit applies the draft to the sink and closes. Invalid invocations
// (closed, or blank content) are a no-op and report false.
func (e *Editor) Submit(sink Sink) bool {
	if !e.CanSubmit() {
		return false
	}
	d := e.Draft()
	switch e.mode {
	case ModeCreate:
		sink.Create(d.Title, d.Content)
	case ModeEdit:
		sink.Update(d.ID, d.Title, d.Content)
	}
	e.Close()
	return true
}

// HandleKey processes keyboard input while open.
// Returns the action triggered ("cancel", "submit", or "") plus any command
// from the focused input.
func (e *Editor) HandleKey(msg tea.KeyMsg) (action string, cmd tea.Cmd) {
	if !e.open {
		return "", nil
	}

	switch msg.String() {
	case "esc":
		return "cancel", nil

	case "ctrl+s":
		return "submit", nil

	case "tab", "shift+tab":
		if e.focus == FieldTitle {
			return "", e.setFocus(FieldContent)
		}
		return "", e.setFocus(FieldTitle)

	case "enter":
		// Enter on the title moves into the content; in the content it
		// inserts a newline via the textarea below.
		if e.focus == FieldTitle {
			return "", e.setFocus(FieldContent)
		}
	}

	switch e.focus {
	case FieldTitle:
		e.titleInput, cmd = e.titleInput.Update(msg)
	case FieldContent:
		e.contentArea, cmd = e.contentArea.Update(msg)
	}
	return "", cmd
}

// Update forwards non-key messages (cursor blink) to the focused input.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	if !e.open {
		return nil
	}
	var cmd tea.Cmd
	switch e.focus {
	case FieldTitle:
		e.titleInput, cmd = e.titleInput.Update(msg)
	case FieldContent:
		e.contentArea, cmd = e.contentArea.Update(msg)
	}
	return cmd
}

// SetSize adjusts the modal to the screen dimensions.
func (e *Editor) SetSize(screenW, screenH int) {
	w := defaultWidth
	if screenW-8 < w {
		w = screenW - 8
	}
	if w < 20 {
		w = 20
	}
	e.width = w

	h := screenH / 2
	if h < 5 {
		h = 5
	}
	e.height = h

	inner := w - 4 // border + padding
	e.titleInput.Width = inner
	e.contentArea.SetWidth(inner)
	e.contentArea.SetHeight(h - 6) // header, title row, hints
}

func (e *Editor) setFocus(f Field) tea.Cmd {
	e.focus = f
	switch f {
	case FieldTitle:
		e.contentArea.Blur()
		return e.titleInput.Focus()
	default:
		e.titleInput.Blur()
		return e.contentArea.Focus()
	}
}

// View renders the open modal box. Empty while closed.
func (e *Editor) View() string {
	if !e.open {
		return ""
	}

	header := "New Note"
	if e.mode == ModeEdit {
		header = "Edit Note"
	}

	titleLabel := styles.Muted.Render("Title")
	contentLabel := styles.Muted.Render("Content")

	hint := "ctrl+s save · tab switch field · esc cancel"
	if !e.CanSubmit() {
		hint = "content is empty · esc cancel"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(header),
		"",
		titleLabel,
		e.titleInput.View(),
		"",
		contentLabel,
		e.contentArea.View(),
		"",
		styles.Subtle.Render(hint),
	)

	return styles.ModalBox.Width(e.width).Render(body)
}
