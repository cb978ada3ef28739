package util

import "testing"

func TestWrapIndex(t *testing.T) {
	cases := []struct {
		current, delta, length, want int
	}{
		{0, 1, 5, 1},
		{4, 1, 5, 0},
		{0, -1, 5, 4},
		{2, 7, 5, 4},
		{3, 1, 0, 0},
	}
	for _, tc := range cases {
		if got := WrapIndex(tc.current, tc.delta, tc.length); got != tc.want {
			t.Fatalf("WrapIndex(%d,%d,%d): expected %d, got %d", tc.current, tc.delta, tc.length, tc.want, got)
		}
	}
}

func TestClampIndex(t *testing.T) {
	if got := ClampIndex(-3, 4); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := ClampIndex(9, 4); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := ClampIndex(2, 0); got != 0 {
		t.Fatalf("expected 0 for empty range, got %d", got)
	}
}

func TestTruncateString(t *testing.T) {
	cases := []struct {
		value string
		width int
		want  string
	}{
		{"hello", 0, ""},
		{"hi", 5, "hi"},
		{"hello", 3, "hel"},
		{"hello world", 8, "hello..."},
	}
	for _, tc := range cases {
		if got := TruncateString(tc.value, tc.width); got != tc.want {
			t.Fatalf("TruncateString(%q,%d): expected %q, got %q", tc.value, tc.width, tc.want, got)
		}
	}
}

func TestFallback(t *testing.T) {
	if got := Fallback("  ", "none"); got != "none" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := Fallback("x", "none"); got != "x" {
		t.Fatalf("expected value, got %q", got)
	}
}
