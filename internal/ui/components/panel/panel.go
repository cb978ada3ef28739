// Package panel draws the bordered boxes every dashboard view sits in.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adamkadaban/slips-tui/internal/theme"
	"github.com/adamkadaban/slips-tui/internal/ui/components/table"
)

// Inner returns the content area left inside a width x height frame.
func Inner(width, height int) (int, int) {
	return max(1, width-2), max(1, height-3)
}

// Render frames body with a title line. The border color follows active.
// Body lines beyond the frame are clipped.
func Render(th theme.Theme, title, body string, width, height int, active bool) string {
	innerW, innerH := Inner(width, height)
	lines := []string{}
	if body != "" {
		lines = strings.Split(body, "\n")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	lines = table.ClipRows(lines, 0, innerW)

	content := lipgloss.JoinVertical(lipgloss.Left,
		th.Title.Render(table.PadAndStyle(lipgloss.NewStyle(), title, innerW, true)),
		strings.Join(lines, "\n"),
	)
	return th.Panel(active).
		Width(innerW).
		Height(innerH + 1).
		Render(content)
}
