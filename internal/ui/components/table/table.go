package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adamkadaban/slips-tui/internal/util"
)

// ComputeMaxWidth returns the widest row width (ANSI-safe rune width).
func ComputeMaxWidth(rows []string) int {
	maxWidth := 0
	for _, row := range rows {
		if w := util.RuneWidth(row); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// ClipRows slices each row horizontally using ANSI-safe slicing.
func ClipRows(rows []string, xOffset, width int) []string {
	if width <= 0 {
		width = 1
	}
	clipped := make([]string, len(rows))
	for i, row := range rows {
		clipped[i] = util.AnsiSlice(row, xOffset, width)
	}
	return clipped
}

// Visible returns the [start,end) range of rows to draw so that cursor
// stays on screen within height lines.
func Visible(cursor, height, total int) (int, int) {
	if total <= 0 || height <= 0 {
		return 0, 0
	}
	cursor = util.ClampIndex(cursor, total)
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := start + height
	if end > total {
		end = total
	}
	return start, end
}

// RenderList draws rows into a width x height block, styling the cursor
// row with selected when active. A caret row marks rows hidden below.
func RenderList(rows []string, cursor, width, height int, active bool, selected, subtle lipgloss.Style) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	body := height
	start, end := Visible(cursor, body, len(rows))
	if end < len(rows) && body > 1 {
		body--
		start, end = Visible(cursor, body, len(rows))
	}

	lines := make([]string, 0, height)
	for idx, row := range ClipRows(rows[start:end], 0, width) {
		if active && start+idx == cursor {
			lines = append(lines, PadAndStyle(selected, util.StripANSI(row), width, true))
			continue
		}
		lines = append(lines, row)
	}
	if end < len(rows) && len(lines) < height {
		lines = append(lines, RenderCaretRow(width, subtle))
	}
	return strings.Join(lines, "\n")
}

// RenderCaretRow renders a caret indicator row for truncated tables.
func RenderCaretRow(width int, style lipgloss.Style) string {
	if width <= 0 {
		width = 3
	}
	glyphs := make([]rune, width)
	for i := range glyphs {
		glyphs[i] = ' '
	}
	positions := []int{0, width / 2, max(0, width-1)}
	for _, pos := range positions {
		if pos >= 0 && pos < width {
			glyphs[pos] = 'v'
		}
	}
	return style.Render(string(glyphs))
}

// PadAndStyle truncates/pads text and renders it with the given style.
func PadAndStyle(style lipgloss.Style, text string, width int, truncate bool) string {
	if width <= 0 {
		return ""
	}
	content := text
	if truncate {
		content = util.TruncateString(text, width)
	}
	if util.RuneWidth(content) < width {
		content = util.PadString(content, width)
	}
	return style.Render(content)
}

// Columns lays cells out left to right, each padded to its width.
// The last cell is left unpadded.
func Columns(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i == len(cells)-1 || i >= len(widths) {
			b.WriteString(cell)
			continue
		}
		b.WriteString(util.PadString(util.TruncateString(cell, widths[i]), widths[i]))
		b.WriteString(" ")
	}
	return b.String()
}
