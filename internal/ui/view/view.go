package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adamkadaban/slips-tui/internal/theme"
)

// Model represents a dashboard panel driven by the root model.
type Model interface {
	tea.Model
	SetSize(width, height int)
	SetTheme(theme theme.Theme)
	SetFocused(focused bool)
	Title() string
}
