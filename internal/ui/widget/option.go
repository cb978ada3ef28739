package widget

import (
	"fmt"
	"strings"

	"github.com/adamkadaban/slips-tui/internal/theme"
)

// Option is one labelled state of a header indicator.
type Option struct {
	Label string
	Value string
}

// IndexOf returns the index of the option with the given value, or 0 if not found.
func IndexOf(options []Option, value string) int {
	value = strings.ToLower(value)
	for i, opt := range options {
		if strings.ToLower(opt.Value) == value {
			return i
		}
	}
	return 0
}

// ToggleOptions returns the standard off/on options.
func ToggleOptions() []Option {
	return []Option{{Label: "off", Value: "off"}, {Label: "on", Value: "on"}}
}

// ThemeOptions lists the palettes the theme key switches between.
func ThemeOptions() []Option {
	return []Option{{Label: "dark", Value: string(theme.ModeDark)}, {Label: "light", Value: string(theme.ModeLight)}}
}

// RenderOptionRow renders label followed by its options, the selected one highlighted.
func RenderOptionRow(th theme.Theme, label string, opts []Option, selected int) string {
	cells := make([]string, len(opts))
	for idx, opt := range opts {
		style := th.Subtle
		if idx == selected {
			style = th.Key
		}
		cells[idx] = style.Render(opt.Label)
	}
	return fmt.Sprintf("%s %s", th.Subtle.Render(label+":"), strings.Join(cells, "/"))
}

// RenderToggle renders a binary off/on row.
func RenderToggle(th theme.Theme, label string, enabled bool) string {
	idx := 0
	if enabled {
		idx = 1
	}
	return RenderOptionRow(th, label, ToggleOptions(), idx)
}
