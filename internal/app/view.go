package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/jot/internal/note"
	"github.com/marcus/jot/internal/styles"
	"github.com/marcus/jot/internal/ui"
)

// View renders the full frame: header, list + preview panes, footer, with
// any modal composited on top.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	visible := m.visibleNotes()

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyH < 3 {
		bodyH = 3
	}

	listW := m.listWidth()
	previewW := m.width - listW

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList(visible, listW, bodyH),
		m.renderPreview(previewW, bodyH),
	)

	frame := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	if m.confirm != nil {
		return ui.Overlay(frame, m.confirm.View(), m.width, m.height)
	}
	if m.editor.IsOpen() {
		return ui.Overlay(frame, m.editor.View(), m.width, m.height)
	}
	return frame
}

func (m Model) renderHeader() string {
	var left string
	if m.searchMode || m.query() != "" {
		left = m.searchInput.View()
	} else {
		left = styles.Title.Render("jot") + styles.Muted.Render("  / to search")
	}

	var right string
	if m.statusMsg != "" {
		if m.statusIsError {
			right = styles.ToastError.Render(m.statusMsg)
		} else {
			right = styles.ToastSuccess.Render(m.statusMsg)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderList(visible []note.Note, width, height int) string {
	panel := styles.PanelInactive
	if m.activePane == PaneList {
		panel = styles.PanelActive
	}
	innerW := width - 4 // border + padding
	innerH := height - 2

	if len(visible) == 0 {
		empty := styles.Muted.Render("No notes match")
		if m.query() == "" {
			empty = styles.Muted.Render("No notes yet. Press n to create one.")
		}
		return panel.Width(width - 2).Height(innerH).Render(empty)
	}

	cursor := m.cursorIndex(visible)
	rowsPerNote := 2
	maxRows := innerH / rowsPerNote
	if maxRows < 1 {
		maxRows = 1
	}

	// Scroll the window so the cursor stays visible.
	start := 0
	if cursor >= maxRows {
		start = cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(visible) {
		end = len(visible)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		n := visible[i]
		marker := "  "
		titleStyle := styles.ListItemNormal
		if i == cursor {
			marker = styles.ListCursor.Render("> ")
			titleStyle = styles.ListItemSelected
		}

		title := runewidth.Truncate(n.Title, innerW-2, "…")
		b.WriteString(marker + titleStyle.Render(title) + "\n")

		meta := relativeTime(n.EditedAt())
		b.WriteString("  " + styles.Subtle.Render(runewidth.Truncate(meta, innerW-2, "…")))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return panel.Width(width - 2).Height(innerH).Render(b.String())
}

func (m Model) renderPreview(width, height int) string {
	panel := styles.PanelInactive
	if m.activePane == PanePreview {
		panel = styles.PanelActive
	}
	innerH := height - 2

	n, ok := m.selectedNote()
	if !ok {
		return panel.Width(width - 2).Height(innerH).Render(styles.Muted.Render("Nothing selected"))
	}

	body := n.Content
	if !m.rawPreview && m.mdRenderer != nil {
		if rendered, err := m.mdRenderer.Render(n.Content); err == nil {
			body = rendered
		}
	}

	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	headerLines := []string{
		styles.Title.Render(n.Title),
		styles.Subtle.Render("edited " + relativeTime(n.EditedAt())),
		"",
	}

	avail := innerH - len(headerLines)
	if avail < 1 {
		avail = 1
	}
	scroll := m.previewScroll
	if max := len(lines) - avail; scroll > max {
		scroll = max
	}
	if scroll < 0 {
		scroll = 0
	}
	end := scroll + avail
	if end > len(lines) {
		end = len(lines)
	}

	content := strings.Join(append(headerLines, lines[scroll:end]...), "\n")
	return panel.Width(width - 2).Height(innerH).Render(content)
}

func (m Model) renderFooter() string {
	var hints []string
	switch {
	case m.confirm != nil:
		hints = []string{"y confirm", "n cancel"}
	case m.editor.IsOpen():
		hints = []string{"ctrl+s save", "tab field", "esc cancel"}
	case m.searchMode:
		hints = []string{"enter keep filter", "esc clear", "↑/↓ move"}
	case m.activePane == PanePreview:
		hints = []string{"j/k scroll", "e edit", "m markdown", "tab list", "q quit"}
	default:
		hints = []string{"n new", "e edit", "x delete", "/ search", "c copy", "tab preview", "q quit"}
	}

	var b strings.Builder
	for i, h := range hints {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(styles.KeyHint.Render(h))
	}
	return b.String()
}

// relativeTime formats a timestamp as a compact age ("just now", "5m ago").
func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
