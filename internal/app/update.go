package app

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jot/internal/msg"
	"github.com/marcus/jot/internal/state"
	"github.com/marcus/jot/internal/ui"
)

// Update routes messages. Input priority while a key arrives: confirm
// dialog, then the editor modal, then search, then the keymap.
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch message := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.editor.SetSize(m.width, m.height)
		m.rebuildRenderer()
		return m, nil

	case msg.ToastMsg:
		m.statusMsg = message.Message
		m.statusIsError = message.IsError
		d := message.Duration
		if d <= 0 {
			d = 2 * time.Second
		}
		m.statusExpiry = time.Now().Add(d)
		return m, nil

	case tickMsg:
		m.clearExpiredToast()
		return m, tickCmd()

	case msg.NotesChangedMsg:
		m.store.Reload()
		m.previewScroll = 0
		return m, waitForChange(m.changes)

	case tea.KeyMsg:
		return m.handleKey(message)
	}

	// Blink and other component messages go to whichever input is live.
	if m.editor.IsOpen() {
		return m, m.editor.Update(teaMsg)
	}
	if m.searchMode {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(teaMsg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		switch m.confirm.HandleKey(key) {
		case "confirm":
			m.store.Delete(m.deleteID)
			m.confirm = nil
			m.deleteID = ""
			m.previewScroll = 0
			return m, msg.ShowToast("Note deleted", 2*time.Second)
		case "cancel":
			m.confirm = nil
			m.deleteID = ""
		}
		return m, nil
	}

	if m.editor.IsOpen() {
		action, cmd := m.editor.HandleKey(key)
		switch action {
		case "cancel":
			m.editor.Close()
			return m, nil
		case "submit":
			if m.editor.Submit(m.store) {
				m.previewScroll = 0
				return m, msg.ShowToast("Note saved", 2*time.Second)
			}
			return m, msg.ShowErrorToast("Nothing to save", 2*time.Second)
		}
		return m, cmd
	}

	if m.searchMode {
		return m.handleSearchKey(key)
	}

	keyStr := key.String()

	// Two-key "g g" sequence in the list pane.
	if m.activePane == PaneList {
		if m.pendingG {
			m.pendingG = false
			if keyStr == "g" {
				if cmd := m.keymap.Lookup(m.focusContext(), "g g"); cmd != "" {
					return m.runCommand(cmd)
				}
				return m, nil
			}
		} else if keyStr == "g" {
			m.pendingG = true
			return m, nil
		}
	}

	if cmd := m.keymap.Lookup(m.focusContext(), keyStr); cmd != "" {
		return m.runCommand(cmd)
	}

	switch keyStr {
	case "<":
		return m.resizeList(-5)
	case ">":
		return m.resizeList(5)
	}
	return m, nil
}

func (m Model) handleSearchKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keymap.Lookup("search", key.String()) {
	case "cancel":
		m.searchMode = false
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.selectFirstVisible()
		return m, nil
	case "confirm":
		// Keep the filter, hand focus back to the list.
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil
	case "cursor-down":
		m.moveCursor(1)
		return m, nil
	case "cursor-up":
		m.moveCursor(-1)
		return m, nil
	case "quit":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(key)
	if m.searchInput.Value() != before {
		// Live filtering: keep a valid selection as the result set changes.
		if m.cursorIndex(m.visibleNotes()) < 0 {
			m.selectFirstVisible()
		}
	}
	return m, cmd
}

func (m Model) runCommand(command string) (tea.Model, tea.Cmd) {
	switch command {
	case "quit":
		return m, tea.Quit

	case "cursor-down":
		m.moveCursor(1)
	case "cursor-up":
		m.moveCursor(-1)
	case "cursor-top":
		m.selectFirstVisible()
	case "cursor-bottom":
		if visible := m.visibleNotes(); len(visible) > 0 {
			m.store.Select(visible[len(visible)-1].ID)
			m.previewScroll = 0
		}

	case "search":
		m.searchMode = true
		return m, m.searchInput.Focus()

	case "new-note":
		return m, m.editor.OpenForCreate()

	case "edit-note":
		if n, ok := m.selectedNote(); ok {
			return m, m.editor.OpenForEdit(n)
		}

	case "delete-note":
		if n, ok := m.selectedNote(); ok {
			m.deleteID = n.ID
			d := ui.NewConfirmDialog("Delete note?", "\""+n.Title+"\" will be removed permanently.")
			d.ConfirmLabel = "Delete"
			d.Danger = true
			m.confirm = d
		}

	case "yank-content":
		if n, ok := m.selectedNote(); ok {
			if err := clipboard.WriteAll(n.Content); err != nil {
				m.logger.Warn("clipboard write failed", "error", err)
				return m, msg.ShowErrorToast("Clipboard unavailable", 2*time.Second)
			}
			return m, msg.ShowToast("Content copied", 2*time.Second)
		}

	case "yank-title":
		if n, ok := m.selectedNote(); ok {
			if err := clipboard.WriteAll(n.Title); err != nil {
				m.logger.Warn("clipboard write failed", "error", err)
				return m, msg.ShowErrorToast("Clipboard unavailable", 2*time.Second)
			}
			return m, msg.ShowToast("Title copied", 2*time.Second)
		}

	case "toggle-markdown":
		m.rawPreview = !m.rawPreview
		if err := state.SetRawPreview(m.rawPreview); err != nil {
			m.logger.Warn("state save failed", "error", err)
		}

	case "switch-pane":
		if m.activePane == PaneList {
			m.activePane = PanePreview
		} else {
			m.activePane = PaneList
		}

	case "back":
		m.activePane = PaneList

	case "refresh":
		m.store.Reload()
		m.previewScroll = 0
		return m, msg.ShowToast("Reloaded", 2*time.Second)

	case "scroll-down":
		m.previewScroll++
	case "scroll-up":
		if m.previewScroll > 0 {
			m.previewScroll--
		}
	case "scroll-top":
		m.previewScroll = 0
	case "scroll-bottom":
		m.previewScroll = 1 << 20 // clamped against content at render time
	}
	return m, nil
}

// moveCursor shifts the selection by delta within the visible list.
func (m *Model) moveCursor(delta int) {
	visible := m.visibleNotes()
	if len(visible) == 0 {
		return
	}
	idx := m.cursorIndex(visible)
	if idx < 0 {
		m.store.Select(visible[0].ID)
		m.previewScroll = 0
		return
	}
	next := idx + delta
	if next < 0 {
		next = 0
	}
	if next > len(visible)-1 {
		next = len(visible) - 1
	}
	if next != idx {
		m.store.Select(visible[next].ID)
		m.previewScroll = 0
	}
}

func (m *Model) selectFirstVisible() {
	if visible := m.visibleNotes(); len(visible) > 0 {
		m.store.Select(visible[0].ID)
	} else {
		m.store.Select("")
	}
	m.previewScroll = 0
}

func (m Model) resizeList(delta int) (tea.Model, tea.Cmd) {
	p := m.listPercent + delta
	if p < 15 {
		p = 15
	}
	if p > 70 {
		p = 70
	}
	if p != m.listPercent {
		m.listPercent = p
		m.rebuildRenderer()
		if err := state.SetListWidth(p); err != nil {
			m.logger.Warn("state save failed", "error", err)
		}
	}
	return m, nil
}
