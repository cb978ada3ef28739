package table

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/adamkadaban/slips-tui/internal/util"
)

func TestComputeMaxWidth(t *testing.T) {
	rows := []string{"abc", "de", "fghij"}
	if w := ComputeMaxWidth(rows); w != 5 {
		t.Fatalf("expected 5, got %d", w)
	}
}

func TestClipRowsAnsiSafe(t *testing.T) {
	rows := []string{"\x1b[31mred\x1b[0m text"}
	clipped := ClipRows(rows, 0, 3)
	if got := util.StripANSI(clipped[0]); got != "red" {
		t.Fatalf("unexpected clip: %q", clipped[0])
	}
}

func TestVisibleKeepsCursorOnScreen(t *testing.T) {
	cases := []struct {
		cursor, height, total int
		start, end            int
	}{
		{0, 3, 10, 0, 3},
		{2, 3, 10, 0, 3},
		{3, 3, 10, 1, 4},
		{9, 3, 10, 7, 10},
		{0, 5, 2, 0, 2},
		{0, 0, 2, 0, 0},
		{4, 3, 0, 0, 0},
	}
	for _, tc := range cases {
		start, end := Visible(tc.cursor, tc.height, tc.total)
		if start != tc.start || end != tc.end {
			t.Fatalf("Visible(%d,%d,%d) = [%d,%d), want [%d,%d)", tc.cursor, tc.height, tc.total, start, end, tc.start, tc.end)
		}
	}
}

func TestRenderListCaretWhenTruncated(t *testing.T) {
	rows := []string{"a", "b", "c", "d", "e"}
	out := RenderList(rows, 0, 4, 3, false, lipgloss.NewStyle(), lipgloss.NewStyle())
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "a" || lines[1] != "b" {
		t.Fatalf("unexpected visible rows %q", lines)
	}
	if !strings.Contains(lines[2], "v") {
		t.Fatalf("expected caret row, got %q", lines[2])
	}
}

func TestRenderListFitsWithoutCaret(t *testing.T) {
	out := RenderList([]string{"a", "b"}, 1, 4, 3, true, lipgloss.NewStyle(), lipgloss.NewStyle())
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if strings.TrimRight(util.StripANSI(lines[1]), " ") != "b" {
		t.Fatalf("expected padded cursor row, got %q", lines[1])
	}
}

func TestRenderCaretRow(t *testing.T) {
	row := RenderCaretRow(5, lipgloss.NewStyle())
	if len([]rune(row)) != 5 {
		t.Fatalf("expected width 5, got %d", len([]rune(row)))
	}
}

func TestPadAndStyle(t *testing.T) {
	st := lipgloss.NewStyle()
	res := PadAndStyle(st, "abc", 5, false)
	if len([]rune(res)) < 5 {
		t.Fatalf("expected padded width >=5, got %d", len([]rune(res)))
	}
}

func TestColumns(t *testing.T) {
	got := Columns([]string{"8.8.8.8:53:udp", "Established"}, []int{16})
	if got != "8.8.8.8:53:udp   Established" {
		t.Fatalf("unexpected columns %q", got)
	}
}
