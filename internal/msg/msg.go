// Package msg holds cross-cutting Bubble Tea messages.
package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastMsg displays a temporary status message.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool
}

// ShowToast returns a command to show a success toast.
func ShowToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Duration: duration}
	}
}

// ShowErrorToast returns a command to show an error toast.
func ShowErrorToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Duration: duration, IsError: true}
	}
}

// NotesChangedMsg signals that the persisted notes document changed outside
// the process and the store should reload.
type NotesChangedMsg struct{}
