package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/jot/internal/styles"
)

// ConfirmDialog is a yes/no decision gate for destructive actions. Focus
// starts on Cancel so a stray enter declines.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	Danger       bool

	focusConfirm bool
}

// NewConfirmDialog creates a dialog with sensible defaults.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: "Confirm",
		CancelLabel:  "Cancel",
	}
}

// FocusedConfirm reports whether the confirm button has focus.
func (d *ConfirmDialog) FocusedConfirm() bool { return d.focusConfirm }

// HandleKey processes keyboard input.
// Returns "confirm", "cancel", or "" when the key only moved focus.
func (d *ConfirmDialog) HandleKey(msg tea.KeyMsg) string {
	switch msg.String() {
	case "y", "Y":
		return "confirm"
	case "n", "N", "esc", "q":
		return "cancel"
	case "enter":
		if d.focusConfirm {
			return "confirm"
		}
		return "cancel"
	case "tab", "left", "right", "h", "l":
		d.focusConfirm = !d.focusConfirm
	}
	return ""
}

// View renders the dialog box.
func (d *ConfirmDialog) View() string {
	confirmStyle := styles.ButtonNormal
	cancelStyle := styles.ButtonNormal
	if d.focusConfirm {
		confirmStyle = styles.ButtonFocused
		if d.Danger {
			confirmStyle = styles.ButtonDanger
		}
	} else {
		cancelStyle = styles.ButtonFocused
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		confirmStyle.Render(d.ConfirmLabel),
		"  ",
		cancelStyle.Render(d.CancelLabel),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(d.Title),
		"",
		styles.Body.Render(d.Message),
		"",
		buttons,
		"",
		styles.Subtle.Render("y/n · tab to switch · enter to choose"),
	)

	box := styles.ModalBox
	if d.Danger {
		box = styles.DangerBox
	}
	return box.Render(body)
}
