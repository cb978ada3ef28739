package keymap

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adamkadaban/slips-tui/internal/nav"
)

// Global defines the dashboard key bindings.
type Global struct {
	Quit        key.Binding
	NextPanel   key.Binding
	Select      key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	ToggleBars  key.Binding
	SwitchChart key.Binding
	ToggleMap   key.Binding
	ToggleTheme key.Binding
}

// DefaultGlobal returns the default global key bindings.
func DefaultGlobal() Global {
	return Global{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "scroll"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "scroll"),
		),
		ToggleBars: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "bars"),
		),
		SwitchChart: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "switch bars"),
		),
		ToggleMap: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "map"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
	}
}

// Translate maps a key press onto a dashboard command. focus decides what
// enter selects; overlay gates the chart-only keys.
func (g Global) Translate(msg tea.KeyMsg, focus nav.Panel, overlay bool) nav.Command {
	switch {
	case key.Matches(msg, g.Quit):
		return nav.Command{Kind: nav.CmdQuit}
	case key.Matches(msg, g.NextPanel):
		return nav.Command{Kind: nav.CmdAdvanceFocus}
	case key.Matches(msg, g.Select):
		switch focus {
		case nav.PanelTree:
			return nav.Command{Kind: nav.CmdSelectNode, Panel: focus}
		case nav.PanelTimeline, nav.PanelOutTuples:
			return nav.Command{Kind: nav.CmdSelectRow, Panel: focus}
		}
	case key.Matches(msg, g.Up):
		return nav.Command{Kind: nav.CmdMove, Dir: -1, Panel: focus}
	case key.Matches(msg, g.Down):
		return nav.Command{Kind: nav.CmdMove, Dir: 1, Panel: focus}
	case key.Matches(msg, g.ToggleBars):
		return nav.Command{Kind: nav.CmdToggleOverlay}
	case key.Matches(msg, g.ToggleMap):
		return nav.Command{Kind: nav.CmdToggleMap}
	case key.Matches(msg, g.ToggleTheme):
		return nav.Command{Kind: nav.CmdToggleTheme}
	case overlay && key.Matches(msg, g.SwitchChart):
		return nav.Command{Kind: nav.CmdSwitchChart}
	case overlay && key.Matches(msg, g.Left):
		return nav.Command{Kind: nav.CmdPaginate, Dir: -1}
	case overlay && key.Matches(msg, g.Right):
		return nav.Command{Kind: nav.CmdPaginate, Dir: 1}
	}
	return nav.Command{Kind: nav.CmdNone}
}

// ShortHelp renders the hotkeys line for the footer.
func (g Global) ShortHelp() string {
	return join([]key.Binding{g.ToggleBars, g.ToggleMap, g.NextPanel, g.Quit})
}

// OverlayHelp lists the keys active while the bar charts are shown.
func (g Global) OverlayHelp() string {
	return join([]key.Binding{g.SwitchChart, g.Left, g.Right, g.ToggleBars})
}

func join(bindings []key.Binding) string {
	snippets := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Desc == "" {
			continue
		}
		snippets = append(snippets, fmt.Sprintf("%s %s", help.Key, help.Desc))
	}
	return strings.Join(snippets, " · ")
}
