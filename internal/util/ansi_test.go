package util

import "testing"

func TestAnsiSlicePlain(t *testing.T) {
	if got := AnsiSlice("abcdef", 1, 3); got != "bcd" {
		t.Fatalf("expected %q, got %q", "bcd", got)
	}
	if got := AnsiSlice("abc", 5, 3); got != "" {
		t.Fatalf("expected empty slice past the end, got %q", got)
	}
	if got := AnsiSlice("abc", 0, 0); got != "" {
		t.Fatalf("expected empty slice for zero width, got %q", got)
	}
}

func TestAnsiSliceKeepsVisibleText(t *testing.T) {
	red := "\x1b[31m"
	reset := "\x1b[0m"
	s := red + "ABC" + reset + "DEF"

	out := AnsiSlice(s, 1, 3)
	if got := StripANSI(out); got != "BCD" {
		t.Fatalf("expected visible text %q, got %q (raw %q)", "BCD", got, out)
	}
	if RuneWidth(out) != 3 {
		t.Fatalf("expected width 3, got %d", RuneWidth(out))
	}
}
