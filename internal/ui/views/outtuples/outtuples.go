package outtuples

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adamkadaban/slips-tui/internal/profiles"
	"github.com/adamkadaban/slips-tui/internal/state"
	"github.com/adamkadaban/slips-tui/internal/theme"
	"github.com/adamkadaban/slips-tui/internal/ui/components/panel"
	"github.com/adamkadaban/slips-tui/internal/ui/components/table"
	"github.com/adamkadaban/slips-tui/internal/util"
)

// Model lists the outgoing tuples of the selected window.
type Model struct {
	store   *state.Store
	theme   theme.Theme
	width   int
	height  int
	focused bool
	cursor  int
	seq     uint64
}

// New constructs the outgoing tuples view.
func New(store *state.Store, th theme.Theme) *Model {
	return &Model{store: store, theme: th}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(_ tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m *Model) Title() string { return "OutTuples" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

func (m *Model) SetFocused(focused bool) { m.focused = focused }

// Move shifts the row cursor by delta.
func (m *Model) Move(delta int) {
	tuples := m.tuples()
	m.cursor = util.ClampIndex(m.cursor+delta, len(tuples))
}

// Selected returns the tuple under the cursor.
func (m *Model) Selected() (profiles.Tuple, bool) {
	tuples := m.tuples()
	if len(tuples) == 0 {
		return profiles.Tuple{}, false
	}
	return tuples[util.ClampIndex(m.cursor, len(tuples))], true
}

func (m *Model) tuples() []profiles.Tuple {
	snapshot := m.store.Snapshot()
	if snapshot.Selection.Seq != m.seq {
		m.seq = snapshot.Selection.Seq
		m.cursor = 0
	}
	return snapshot.Detail.OutTuples
}

func (m *Model) View() string {
	tuples := m.tuples()
	innerW, innerH := panel.Inner(m.width, m.height)

	body := ""
	if len(tuples) > 0 {
		keys := make([]string, len(tuples))
		for i, tuple := range tuples {
			keys[i] = tuple.Key
		}
		widths := []int{table.ComputeMaxWidth(keys)}
		rows := make([]string, len(tuples))
		for i, tuple := range tuples {
			rows[i] = table.Columns(tuple.Row(), widths)
		}
		m.cursor = util.ClampIndex(m.cursor, len(rows))
		body = table.RenderList(rows, m.cursor, innerW, innerH, m.focused, m.theme.Selected, m.theme.Subtle)
	}
	return panel.Render(m.theme, m.Title(), body, m.width, m.height, m.focused)
}
