// Package ui provides shared presentation helpers: modal overlay
// compositing and the confirmation dialog.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// dimStyle greys out background content behind a modal. Existing ANSI codes
// are stripped first because SGR faint does not combine reliably with color
// codes across terminals.
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// Overlay centers the modal over a dimmed background, returning a full
// width x height frame.
func Overlay(background, modal string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	modalLines := strings.Split(modal, "\n")

	modalW := widestLine(modalLines)
	startX := max(0, (width-modalW)/2)
	startY := max(0, (height-len(modalLines))/2)

	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bg := ""
		if y < len(bgLines) {
			bg = bgLines[y]
		}
		row := y - startY
		if row < 0 || row >= len(modalLines) {
			rows = append(rows, dimStyle.Render(ansi.Strip(bg)))
			continue
		}
		rows = append(rows, compositeRow(bg, modalLines[row], startX, modalW, width))
	}
	return strings.Join(rows, "\n")
}

// compositeRow builds dimmed-left + modal + dimmed-right for one screen row.
func compositeRow(bg, modal string, startX, modalW, totalW int) string {
	var b strings.Builder

	plain := ansi.Strip(bg)
	plainW := ansi.StringWidth(plain)

	if startX > 0 {
		left := ansi.Truncate(plain, startX, "")
		b.WriteString(dimStyle.Render(left))
		if pad := startX - ansi.StringWidth(left); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}

	b.WriteString(modal)

	if right := startX + modalW; right < totalW && plainW > right {
		b.WriteString(dimStyle.Render(ansi.Cut(plain, right, plainW)))
	}

	return b.String()
}

// widestLine returns the maximum visual width of the given lines.
func widestLine(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}
