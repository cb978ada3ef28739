package hostinfo

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adamkadaban/slips-tui/internal/state"
	"github.com/adamkadaban/slips-tui/internal/theme"
	"github.com/adamkadaban/slips-tui/internal/ui/components/panel"
)

// Model shows attributes of the last looked-up address.
type Model struct {
	store  *state.Store
	theme  theme.Theme
	width  int
	height int
}

// New constructs the host info view.
func New(store *state.Store, th theme.Theme) *Model {
	return &Model{store: store, theme: th}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(_ tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m *Model) Title() string { return "IP info" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// SetFocused is a no-op; the panel never takes focus.
func (m *Model) SetFocused(bool) {}

func (m *Model) View() string {
	innerW, _ := panel.Inner(m.width, m.height)
	text := m.store.Snapshot().HostInfo
	body := lipgloss.NewStyle().Width(innerW).Render(text)
	return panel.Render(m.theme, m.Title(), body, m.width, m.height, false)
}
