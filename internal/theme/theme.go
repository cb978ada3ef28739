package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode controls the global color palette selection.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// Options configure the active theme at runtime.
type Options struct {
	Override  string
	Preferred string
}

// Theme exposes reusable lipgloss styles for the UI.
type Theme struct {
	Mode          Mode
	Title         lipgloss.Style
	Footer        lipgloss.Style
	PanelActive   lipgloss.Style
	PanelInactive lipgloss.Style
	Key           lipgloss.Style
	Highlight     lipgloss.Style
	Selected      lipgloss.Style
	Subtle        lipgloss.Style
	Danger        lipgloss.Style
	Marker        lipgloss.Style
	Land          lipgloss.Style
	// Bars colors the stacked segments: flows, packets, bytes.
	Bars [3]lipgloss.Style
}

// New constructs a theme based on the provided preferences.
func New(opts Options) Theme {
	mode := selectMode(opts.Override, opts.Preferred)
	if mode == ModeLight {
		return buildLight(mode)
	}
	return buildDark(mode)
}

// Toggled returns the opposite palette.
func (t Theme) Toggled() Theme {
	if t.Mode == ModeLight {
		return buildDark(ModeDark)
	}
	return buildLight(ModeLight)
}

// Panel returns the border style for a panel in the given focus state.
func (t Theme) Panel(active bool) lipgloss.Style {
	if active {
		return t.PanelActive
	}
	return t.PanelInactive
}

func selectMode(override, preferred string) Mode {
	if mode := parseMode(override); mode != "" {
		return applyAuto(mode)
	}
	if mode := parseMode(preferred); mode != "" {
		return applyAuto(mode)
	}
	return ModeDark
}

func parseMode(value string) Mode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(ModeDark):
		return ModeDark
	case string(ModeLight):
		return ModeLight
	case string(ModeAuto):
		return ModeAuto
	default:
		return ""
	}
}

func applyAuto(mode Mode) Mode {
	if mode == ModeAuto {
		return ModeDark
	}
	return mode
}

func panel(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(border)
}

func bars(red, blue, green lipgloss.Color) [3]lipgloss.Style {
	return [3]lipgloss.Style{
		lipgloss.NewStyle().Foreground(red),
		lipgloss.NewStyle().Foreground(blue),
		lipgloss.NewStyle().Foreground(green),
	}
}

func buildDark(mode Mode) Theme {
	fg := lipgloss.Color("#e7e7e7")
	primary := lipgloss.Color("#7de2d1")
	subtle := lipgloss.Color("#6b6f76")
	magenta := lipgloss.Color("#d946ef")
	blue := lipgloss.Color("#60a5fa")

	return Theme{
		Mode:          mode,
		Title:         lipgloss.NewStyle().Foreground(primary).Bold(true),
		Footer:        lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		PanelActive:   panel(magenta),
		PanelInactive: panel(blue),
		Key:           lipgloss.NewStyle().Foreground(fg).Bold(true),
		Highlight:     lipgloss.NewStyle().Bold(true),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("#0f1115")).Background(primary),
		Subtle:        lipgloss.NewStyle().Foreground(subtle),
		Danger:        lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")).Bold(true),
		Marker:        lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")).Bold(true),
		Land:          lipgloss.NewStyle().Foreground(subtle),
		Bars:          bars("#ef4444", "#3b82f6", "#22c55e"),
	}
}

func buildLight(mode Mode) Theme {
	fg := lipgloss.Color("#1b1e23")
	primary := lipgloss.Color("#155e75")
	subtle := lipgloss.Color("#6b7280")
	magenta := lipgloss.Color("#a21caf")
	blue := lipgloss.Color("#1d4ed8")

	return Theme{
		Mode:          mode,
		Title:         lipgloss.NewStyle().Foreground(primary).Bold(true),
		Footer:        lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		PanelActive:   panel(magenta),
		PanelInactive: panel(blue),
		Key:           lipgloss.NewStyle().Foreground(fg).Bold(true),
		Highlight:     lipgloss.NewStyle().Bold(true),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("#f7f7f7")).Background(primary),
		Subtle:        lipgloss.NewStyle().Foreground(subtle),
		Danger:        lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c")).Bold(true),
		Marker:        lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c")).Bold(true),
		Land:          lipgloss.NewStyle().Foreground(subtle),
		Bars:          bars("#b91c1c", "#1d4ed8", "#15803d"),
	}
}
