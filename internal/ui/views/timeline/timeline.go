package timeline

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adamkadaban/slips-tui/internal/profiles"
	"github.com/adamkadaban/slips-tui/internal/state"
	"github.com/adamkadaban/slips-tui/internal/theme"
	"github.com/adamkadaban/slips-tui/internal/ui/components/panel"
	"github.com/adamkadaban/slips-tui/internal/ui/components/table"
	"github.com/adamkadaban/slips-tui/internal/util"
)

const flaggedField = 6

// Model renders the selected window's flow lines.
type Model struct {
	store   *state.Store
	theme   theme.Theme
	width   int
	height  int
	focused bool
	cursor  int
	seq     uint64
}

// New constructs the timeline view.
func New(store *state.Store, th theme.Theme) *Model {
	return &Model{store: store, theme: th}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(_ tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

// Title is the selection's "<host> <window>" or a generic label.
func (m *Model) Title() string {
	sel := m.store.Selection()
	if sel.Host == "" {
		return "Timeline"
	}
	return sel.Host + " " + sel.Window
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

func (m *Model) SetFocused(focused bool) { m.focused = focused }

// Move shifts the row cursor by delta.
func (m *Model) Move(delta int) {
	snapshot := m.store.Snapshot()
	m.sync(snapshot.Selection.Seq)
	m.cursor = util.ClampIndex(m.cursor+delta, len(snapshot.Timeline))
}

// Selected returns the flow line under the cursor.
func (m *Model) Selected() (profiles.TimelineEntry, bool) {
	snapshot := m.store.Snapshot()
	m.sync(snapshot.Selection.Seq)
	if len(snapshot.Timeline) == 0 {
		return profiles.TimelineEntry{}, false
	}
	return snapshot.Timeline[util.ClampIndex(m.cursor, len(snapshot.Timeline))], true
}

// sync resets the cursor when a new window has been selected.
func (m *Model) sync(seq uint64) {
	if seq != m.seq {
		m.seq = seq
		m.cursor = 0
	}
}

func (m *Model) View() string {
	snapshot := m.store.Snapshot()
	m.sync(snapshot.Selection.Seq)
	innerW, innerH := panel.Inner(m.width, m.height)

	var body string
	switch {
	case snapshot.Selection.Host == "":
		body = m.theme.Subtle.Render("Select a time window.")
	case len(snapshot.Timeline) == 0:
		body = ""
	default:
		rows := make([]string, len(snapshot.Timeline))
		for i, entry := range snapshot.Timeline {
			rows[i] = m.render(entry)
		}
		m.cursor = util.ClampIndex(m.cursor, len(rows))
		body = table.RenderList(rows, m.cursor, innerW, innerH, m.focused, m.theme.Selected, m.theme.Subtle)
	}
	return panel.Render(m.theme, m.Title(), body, m.width, m.height, m.focused)
}

func (m *Model) render(entry profiles.TimelineEntry) string {
	if !entry.Highlight {
		return entry.Line()
	}
	fields := append([]string(nil), entry.Fields...)
	fields[flaggedField] = m.theme.Highlight.Render(fields[flaggedField])
	return strings.Join(fields, " ")
}
