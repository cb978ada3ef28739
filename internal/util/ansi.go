package util

import "github.com/charmbracelet/x/ansi"

// StripANSI removes ANSI escape sequences from s.
func StripANSI(s string) string { return ansi.Strip(s) }

// AnsiSlice returns the cells [offset, offset+width) of s, keeping escape codes intact.
func AnsiSlice(s string, offset, width int) string {
	if width <= 0 {
		return ""
	}
	if offset > 0 {
		s = ansi.TruncateLeft(s, offset, "")
	}
	return ansi.Truncate(s, width, "")
}

// RuneWidth returns the printable cell width of s.
func RuneWidth(s string) int { return ansi.StringWidth(s) }
