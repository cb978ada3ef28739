package evidence

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adamkadaban/slips-tui/internal/profiles"
	"github.com/adamkadaban/slips-tui/internal/state"
	"github.com/adamkadaban/slips-tui/internal/theme"
	"github.com/adamkadaban/slips-tui/internal/ui/components/panel"
)

// Model shows the evidence of the selected window, one item per line.
type Model struct {
	store    *state.Store
	theme    theme.Theme
	width    int
	height   int
	focused  bool
	viewport viewport.Model
	seq      uint64
}

// New constructs the evidence view.
func New(store *state.Store, th theme.Theme) *Model {
	return &Model{store: store, theme: th, viewport: viewport.New(1, 1)}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(_ tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m *Model) Title() string { return "Evidence" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width, m.viewport.Height = panel.Inner(width, height)
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

func (m *Model) SetFocused(focused bool) { m.focused = focused }

// Move scrolls the text by delta lines.
func (m *Model) Move(delta int) {
	m.refresh()
	if delta < 0 {
		m.viewport.LineUp(-delta)
		return
	}
	m.viewport.LineDown(delta)
}

// Format renders each evidence key in bold followed by its description.
func Format(th theme.Theme, items []profiles.EvidenceItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, th.Key.Render(item.Key)+" "+item.Description)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) refresh() {
	snapshot := m.store.Snapshot()
	m.viewport.SetContent(Format(m.theme, snapshot.Detail.Evidence))
	if snapshot.Selection.Seq != m.seq {
		m.seq = snapshot.Selection.Seq
		m.viewport.GotoTop()
	}
}

func (m *Model) View() string {
	m.refresh()
	return panel.Render(m.theme, m.Title(), m.viewport.View(), m.width, m.height, m.focused)
}
