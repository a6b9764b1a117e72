package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jot/internal/msg"
)

// tickMsg drives toast expiry.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForChange blocks on the storage watcher and surfaces one change event.
// Returns nil when the watcher is disabled or its channel closes, so the
// program never spins on a dead channel.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return msg.NotesChangedMsg{}
	}
}
