package tree

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adamkadaban/slips-tui/internal/profiles"
	"github.com/adamkadaban/slips-tui/internal/state"
	"github.com/adamkadaban/slips-tui/internal/theme"
	"github.com/adamkadaban/slips-tui/internal/ui/components/panel"
	"github.com/adamkadaban/slips-tui/internal/ui/components/table"
	"github.com/adamkadaban/slips-tui/internal/util"
)

// Node is one visible tree row. Window is empty for host rows.
type Node struct {
	Host   string
	Window string
}

// IsWindow reports whether the node is a time window leaf.
func (n Node) IsWindow() bool { return n.Window != "" }

// Model renders the host and window tree.
type Model struct {
	store   *state.Store
	theme   theme.Theme
	width   int
	height  int
	focused bool
	cursor  int
	open    map[string]bool
}

// New constructs the tree view.
func New(store *state.Store, th theme.Theme) *Model {
	return &Model{store: store, theme: th, open: make(map[string]bool)}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(_ tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m *Model) Title() string { return "Profiles" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

func (m *Model) SetFocused(focused bool) { m.focused = focused }

// Move shifts the cursor by delta, stopping at either end.
func (m *Model) Move(delta int) {
	m.cursor = util.ClampIndex(m.cursor+delta, len(m.nodes(m.store.Snapshot().Tree)))
}

// Selected returns the node under the cursor.
func (m *Model) Selected() (Node, bool) {
	nodes := m.nodes(m.store.Snapshot().Tree)
	if len(nodes) == 0 {
		return Node{}, false
	}
	return nodes[util.ClampIndex(m.cursor, len(nodes))], true
}

// Toggle opens or closes host and reports whether it is now open.
func (m *Model) Toggle(host string) bool {
	m.open[host] = !m.open[host]
	return m.open[host]
}

// nodes flattens the tree. Opening a host computes its children once.
func (m *Model) nodes(tree *profiles.Tree) []Node {
	out := []Node{}
	for _, host := range tree.Hosts() {
		out = append(out, Node{Host: host})
		if !m.open[host] {
			continue
		}
		for _, window := range tree.Children(host) {
			out = append(out, Node{Host: host, Window: window})
		}
	}
	return out
}

func (m *Model) View() string {
	snapshot := m.store.Snapshot()
	innerW, innerH := panel.Inner(m.width, m.height)

	var body string
	switch snapshot.TreeStatus {
	case state.TreeLoading:
		body = m.theme.Subtle.Render("Discovering profiles...")
	case state.TreeFailed:
		body = m.theme.Danger.Render("Discovery failed: " + util.Fallback(snapshot.LastError, "unknown error"))
	default:
		nodes := m.nodes(snapshot.Tree)
		if len(nodes) == 0 {
			body = m.theme.Subtle.Render("No profiles found.")
			break
		}
		rows := make([]string, len(nodes))
		for i, node := range nodes {
			rows[i] = m.label(node, snapshot.Selection)
		}
		m.cursor = util.ClampIndex(m.cursor, len(nodes))
		body = table.RenderList(rows, m.cursor, innerW, innerH, m.focused, m.theme.Selected, m.theme.Subtle)
	}
	return panel.Render(m.theme, m.Title(), body, m.width, m.height, m.focused)
}

func (m *Model) label(node Node, sel state.Selection) string {
	if !node.IsWindow() {
		marker := "▸ "
		if m.open[node.Host] {
			marker = "▾ "
		}
		return marker + node.Host
	}
	if sel.Host == node.Host && sel.Window == node.Window {
		return "  • " + node.Window
	}
	return "    " + node.Window
}
