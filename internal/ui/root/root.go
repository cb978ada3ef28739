package root

import (
	"context"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adamkadaban/slips-tui/internal/controller"
	"github.com/adamkadaban/slips-tui/internal/geo"
	"github.com/adamkadaban/slips-tui/internal/keymap"
	"github.com/adamkadaban/slips-tui/internal/nav"
	"github.com/adamkadaban/slips-tui/internal/profiles"
	"github.com/adamkadaban/slips-tui/internal/state"
	"github.com/adamkadaban/slips-tui/internal/theme"
	"github.com/adamkadaban/slips-tui/internal/ui/view"
	"github.com/adamkadaban/slips-tui/internal/ui/views/bars"
	"github.com/adamkadaban/slips-tui/internal/ui/views/detections"
	"github.com/adamkadaban/slips-tui/internal/ui/views/evidence"
	"github.com/adamkadaban/slips-tui/internal/ui/views/hostinfo"
	"github.com/adamkadaban/slips-tui/internal/ui/views/outtuples"
	"github.com/adamkadaban/slips-tui/internal/ui/views/timeline"
	treeview "github.com/adamkadaban/slips-tui/internal/ui/views/tree"
	"github.com/adamkadaban/slips-tui/internal/ui/views/worldmap"
	"github.com/adamkadaban/slips-tui/internal/ui/widget"
)

const hostInfoHeight = 4

// Options controls how the root model is assembled.
type Options struct {
	Context  context.Context
	Theme    theme.Theme
	KeyMap   *keymap.Global
	Profiles controller.ProfileSource
	Markers  controller.MarkerResolver
	Settings controller.SettingsManager
}

// panelModel is a focusable panel with a cursor or scroll position.
type panelModel interface {
	view.Model
	Move(delta int)
}

// Model owns the dashboard layout and routes every key press through a
// single command dispatch.
type Model struct {
	ctx      context.Context
	store    *state.Store
	sub      *state.Subscription
	keymap   keymap.Global
	theme    theme.Theme
	profiles controller.ProfileSource
	markers  controller.MarkerResolver
	settings controller.SettingsManager

	focus      nav.Focus
	tree       *treeview.Model
	timeline   *timeline.Model
	outTuples  *outtuples.Model
	detections *detections.Model
	evidence   *evidence.Model
	hostInfo   *hostinfo.Model
	bars       *bars.Model
	worldMap   *worldmap.Model
	panels     map[nav.Panel]panelModel

	showBars bool
	showMap  bool

	width  int
	height int
}

// New builds the root Bubble Tea model.
func New(store *state.Store, opts Options) *Model {
	keyMap := keymap.DefaultGlobal()
	if opts.KeyMap != nil {
		keyMap = *opts.KeyMap
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := &Model{
		ctx:        ctx,
		store:      store,
		keymap:     keyMap,
		theme:      opts.Theme,
		profiles:   opts.Profiles,
		markers:    opts.Markers,
		settings:   opts.Settings,
		tree:       treeview.New(store, opts.Theme),
		timeline:   timeline.New(store, opts.Theme),
		outTuples:  outtuples.New(store, opts.Theme),
		detections: detections.New(store, opts.Theme),
		evidence:   evidence.New(store, opts.Theme),
		hostInfo:   hostinfo.New(store, opts.Theme),
		bars:       bars.New(opts.Theme),
		worldMap:   worldmap.New(store, opts.Theme),
	}
	m.panels = map[nav.Panel]panelModel{
		nav.PanelTree:       m.tree,
		nav.PanelTimeline:   m.timeline,
		nav.PanelOutTuples:  m.outTuples,
		nav.PanelDetections: m.detections,
		nav.PanelEvidence:   m.evidence,
	}
	m.tree.SetFocused(true)
	if store != nil {
		m.sub = store.Subscribe()
	}
	return m
}

type storeChangeMsg struct{}

type profileMsg struct {
	seq    uint64
	detail profiles.WindowDetail
	err    error
}

type timelineMsg struct {
	seq     uint64
	entries []profiles.TimelineEntry
	err     error
}

type markersMsg struct {
	seq     uint64
	markers []geo.Marker
	err     error
}

type hostInfoMsg struct {
	seq  uint64
	host string
	text string
	err  error
}

type themeSavedMsg struct {
	err error
}

func (m *Model) Init() tea.Cmd {
	return waitForStoreChanges(m.sub)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangeMsg:
		return m, waitForStoreChanges(m.sub)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	case tea.KeyMsg:
		return m, m.dispatch(m.keymap.Translate(msg, m.focus.Current(), m.showBars))
	case profileMsg:
		return m, m.applyProfile(msg)
	case timelineMsg:
		if msg.err != nil {
			m.failSelection(msg.seq, msg.err)
			return m, nil
		}
		m.store.ApplyTimeline(msg.seq, msg.entries)
	case markersMsg:
		if msg.err != nil {
			m.failSelection(msg.seq, msg.err)
			return m, nil
		}
		m.store.ApplyMarkers(msg.seq, msg.markers)
	case hostInfoMsg:
		if msg.err != nil {
			log.Printf("[detail] %v", msg.err)
			m.store.FailHostInfo(msg.seq, msg.err.Error())
			return m, nil
		}
		m.store.ApplyHostInfo(msg.seq, msg.text)
	case themeSavedMsg:
		if msg.err != nil {
			m.fail("app", fmt.Errorf("save theme: %w", msg.err))
		}
	case tea.QuitMsg:
		m.closeSubscription()
	}
	return m, nil
}

// dispatch routes one command. Handlers only touch the model and return
// the fetches to run.
func (m *Model) dispatch(cmd nav.Command) tea.Cmd {
	switch cmd.Kind {
	case nav.CmdQuit:
		m.closeSubscription()
		return tea.Quit
	case nav.CmdAdvanceFocus:
		from, to := m.focus.Advance()
		m.panels[from].SetFocused(false)
		m.panels[to].SetFocused(true)
	case nav.CmdMove:
		if p, ok := m.panels[cmd.Panel]; ok {
			p.Move(cmd.Dir)
		}
	case nav.CmdSelectNode:
		return m.selectNode()
	case nav.CmdSelectRow:
		return m.selectRow(cmd.Panel)
	case nav.CmdToggleOverlay:
		m.showBars = !m.showBars
		if m.showBars {
			m.bars.Load(m.store.Snapshot().Detail.Record)
		}
	case nav.CmdSwitchChart:
		m.bars.Switch()
	case nav.CmdPaginate:
		m.bars.Paginate(cmd.Dir)
	case nav.CmdToggleMap:
		m.showMap = !m.showMap
	case nav.CmdToggleTheme:
		m.setTheme(m.theme.Toggled())
		return m.saveTheme(string(m.theme.Mode))
	}
	return nil
}

func (m *Model) selectNode() tea.Cmd {
	node, ok := m.tree.Selected()
	if !ok {
		return nil
	}
	if !node.IsWindow() {
		m.tree.Toggle(node.Host)
		return m.fetchHostInfo(node.Host)
	}
	seq := m.store.BeginSelection(node.Host, node.Window)
	if m.showBars {
		m.bars.Load(nil)
	}
	return tea.Batch(
		m.fetchProfile(seq, node.Host, node.Window),
		m.fetchTimeline(seq, node.Host, node.Window),
	)
}

func (m *Model) selectRow(panel nav.Panel) tea.Cmd {
	var ip string
	switch panel {
	case nav.PanelTimeline:
		entry, ok := m.timeline.Selected()
		if !ok {
			return nil
		}
		ip = entry.IP()
	case nav.PanelOutTuples:
		tuple, ok := m.outTuples.Selected()
		if !ok {
			return nil
		}
		ip = tuple.DstIP
	}
	if ip == "" {
		return nil
	}
	return m.fetchHostInfo(ip)
}

func (m *Model) applyProfile(msg profileMsg) tea.Cmd {
	if msg.err != nil {
		m.failSelection(msg.seq, msg.err)
		return nil
	}
	if !m.store.ApplyDetail(msg.seq, msg.detail) {
		return nil
	}
	if m.showBars {
		m.bars.Load(msg.detail.Record)
	}
	return m.resolveMarkers(msg.seq, msg.detail.DestIPs)
}

func (m *Model) fetchProfile(seq uint64, host, window string) tea.Cmd {
	if m.profiles == nil {
		return nil
	}
	ctx, src := m.ctx, m.profiles
	return func() tea.Msg {
		detail, err := src.Profile(ctx, host, window)
		return profileMsg{seq: seq, detail: detail, err: err}
	}
}

func (m *Model) fetchTimeline(seq uint64, host, window string) tea.Cmd {
	if m.profiles == nil {
		return nil
	}
	ctx, src := m.ctx, m.profiles
	return func() tea.Msg {
		entries, err := src.Timeline(ctx, host, window)
		return timelineMsg{seq: seq, entries: entries, err: err}
	}
}

func (m *Model) resolveMarkers(seq uint64, ips []string) tea.Cmd {
	if m.markers == nil {
		return nil
	}
	ctx, res := m.ctx, m.markers
	ips = append([]string(nil), ips...)
	return func() tea.Msg {
		markers, err := res.Resolve(ctx, ips)
		return markersMsg{seq: seq, markers: markers, err: err}
	}
}

func (m *Model) fetchHostInfo(host string) tea.Cmd {
	if m.profiles == nil {
		return nil
	}
	seq := m.store.BeginHostInfo()
	ctx, src := m.ctx, m.profiles
	return func() tea.Msg {
		text, err := src.HostInfo(ctx, host)
		return hostInfoMsg{seq: seq, host: host, text: text, err: err}
	}
}

func (m *Model) saveTheme(name string) tea.Cmd {
	if m.settings == nil {
		return nil
	}
	settings := m.settings
	return func() tea.Msg {
		_, err := settings.SetTheme(name)
		return themeSavedMsg{err: err}
	}
}

func (m *Model) fail(tag string, err error) {
	log.Printf("[%s] %v", tag, err)
	m.store.SetError(err.Error())
}

// failSelection logs err and surfaces it only while seq is the current selection.
func (m *Model) failSelection(seq uint64, err error) {
	log.Printf("[detail] %v", err)
	m.store.FailSelection(seq, err.Error())
}

func (m *Model) setTheme(th theme.Theme) {
	m.theme = th
	for _, v := range m.views() {
		v.SetTheme(th)
	}
}

func (m *Model) views() []view.Model {
	return []view.Model{m.tree, m.timeline, m.outTuples, m.detections, m.evidence, m.hostInfo, m.bars, m.worldMap}
}

// layout splits the screen: the tree on the left; on the right the
// timeline above the tuple, detection and evidence row, then host info.
// The overlays take the space above host info.
func (m *Model) layout() {
	bodyH := max(1, m.height-2)
	treeW := max(24, m.width/5)
	rightW := max(1, m.width-treeW)
	upperH := max(1, bodyH-hostInfoHeight)
	timelineH := upperH / 2
	rowH := upperH - timelineH
	third := rightW / 3

	m.tree.SetSize(treeW, bodyH)
	m.timeline.SetSize(rightW, timelineH)
	m.outTuples.SetSize(third, rowH)
	m.detections.SetSize(third, rowH)
	m.evidence.SetSize(rightW-2*third, rowH)
	m.hostInfo.SetSize(rightW, hostInfoHeight)
	m.bars.SetSize(rightW, upperH)
	m.worldMap.SetSize(rightW, upperH)
}

func (m *Model) View() string {
	headline := m.headline()

	var upper string
	switch {
	case m.showMap:
		upper = m.worldMap.View()
	case m.showBars:
		upper = m.bars.View()
	default:
		upper = lipgloss.JoinVertical(lipgloss.Left,
			m.timeline.View(),
			lipgloss.JoinHorizontal(lipgloss.Top, m.outTuples.View(), m.detections.View(), m.evidence.View()),
		)
	}
	right := lipgloss.JoinVertical(lipgloss.Left, upper, m.hostInfo.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.tree.View(), right)

	footer := m.theme.Footer.Render(m.footerLine(m.store.Snapshot()))
	return lipgloss.JoinVertical(lipgloss.Left, headline, body, footer)
}

func (m *Model) headline() string {
	parts := []string{
		m.theme.Title.Render("Slips"),
		widget.RenderToggle(m.theme, "bars", m.showBars),
		widget.RenderToggle(m.theme, "map", m.showMap),
		widget.RenderOptionRow(m.theme, "theme", widget.ThemeOptions(), widget.IndexOf(widget.ThemeOptions(), string(m.theme.Mode))),
	}
	if sel := m.store.Selection(); sel.Host != "" {
		parts = append(parts, m.theme.Subtle.Render(sel.Host+" "+sel.Window))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) footerLine(snapshot state.Snapshot) string {
	help := m.keymap.ShortHelp()
	if m.showBars {
		help = m.keymap.OverlayHelp()
	}
	line := fmt.Sprintf("Focus %s · %s", m.focus.Current(), help)
	if snapshot.LastError != "" {
		line = fmt.Sprintf("%s · %s", line, m.theme.Danger.Render(snapshot.LastError))
	}
	return line
}

func (m *Model) closeSubscription() {
	if m.sub != nil {
		m.sub.Close()
		m.sub = nil
	}
}

func waitForStoreChanges(sub *state.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-sub.Events(); !ok {
			return nil
		}
		return storeChangeMsg{}
	}
}
