package bars

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adamkadaban/slips-tui/internal/nav"
	"github.com/adamkadaban/slips-tui/internal/theme"
	"github.com/adamkadaban/slips-tui/internal/traffic"
	"github.com/adamkadaban/slips-tui/internal/ui/components/panel"
	"github.com/adamkadaban/slips-tui/internal/util"
)

const block = "█"

// Model draws the established and not-established port charts. It owns
// both page cursors and the chart focus while the overlay is shown.
type Model struct {
	theme    theme.Theme
	geometry traffic.Geometry
	width    int
	height   int
	series   [2]traffic.Series
	pagers   [2]traffic.Pager
	focus    nav.ChartFocus
	status   string
}

// New constructs the bar chart overlay.
func New(th theme.Theme) *Model {
	return &Model{theme: th, geometry: traffic.DefaultGeometry, status: traffic.StatusNeither}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(_ tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m *Model) Title() string { return "Traffic" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// SetFocused is a no-op; chart focus is tracked separately.
func (m *Model) SetFocused(bool) {}

// PageSize is the number of bars per page at the current width.
func (m *Model) PageSize() int {
	innerW, _ := panel.Inner(m.width, m.height)
	return m.geometry.PageSize(innerW)
}

// Load rebuilds both series from a profile record and returns to the
// first page of the upper chart.
func (m *Model) Load(record map[string]string) {
	est, notEst := traffic.AggregateAll(record)
	m.series = [2]traffic.Series{est, notEst}
	m.pagers[0].Reset()
	m.pagers[1].Reset()
	m.focus.Reset()
	m.status = traffic.ScrollStatus(est.Len(), notEst.Len(), m.PageSize())
}

// Status returns the scrollability message computed by the last Load.
func (m *Model) Status() string { return m.status }

// Focused returns the chart that receives page commands.
func (m *Model) Focused() nav.Chart { return m.focus.Current() }

// Switch moves page commands to the other chart.
func (m *Model) Switch() nav.Chart { return m.focus.Toggle() }

// Paginate moves the focused chart one page forward (dir > 0) or back.
func (m *Model) Paginate(dir int) {
	idx := int(m.focus.Current())
	size := m.PageSize()
	if dir < 0 {
		m.pagers[idx].Prev(size)
		return
	}
	m.pagers[idx].Next(m.series[idx].Len(), size)
}

// Cursor returns the page offset of chart.
func (m *Model) Cursor(chart nav.Chart) int { return m.pagers[chart].Cursor() }

func (m *Model) View() string {
	status := m.theme.Subtle.Render(util.TruncateString(m.status, max(1, m.width)))
	chartH := max(5, (m.height-1)/2)
	upper := m.renderChart(nav.ChartEstablished, chartH)
	lower := m.renderChart(nav.ChartNotEstablished, chartH)
	return lipgloss.JoinVertical(lipgloss.Left, status, upper, lower)
}

func (m *Model) renderChart(chart nav.Chart, height int) string {
	series := m.series[chart]
	innerW, innerH := panel.Inner(m.width, height)
	size := m.PageSize()
	page := series.Page(m.pagers[chart].Cursor(), size)
	active := m.focus.Current() == chart
	if len(page) == 0 {
		return panel.Render(m.theme, series.Name, "", m.width, height, active)
	}

	colW := max(1, innerW/size)
	barW := min(m.geometry.BarWidth, max(1, colW-1))
	plotH := max(1, innerH-1)
	body := strings.Join(append(m.plot(page, colW, barW, plotH), m.labels(page, colW)), "\n")
	return panel.Render(m.theme, series.Name, body, m.width, height, active)
}

// plot returns the chart rows top to bottom. Segments stack flows,
// packets then bytes from the baseline up.
func (m *Model) plot(page []traffic.Bar, colW, barW, height int) []string {
	peak := 0
	for _, bar := range page {
		peak = max(peak, total(bar))
	}
	scale := 1.0
	if peak > height {
		scale = float64(height) / float64(peak)
	}

	stacks := make([][3]int, len(page))
	for i, bar := range page {
		for seg, v := range bar.Values {
			stacks[i][seg] = int(math.Round(float64(v) * scale))
		}
	}

	rows := make([]string, height)
	pad := strings.Repeat(" ", colW-barW)
	for r := 0; r < height; r++ {
		level := height - r
		var b strings.Builder
		for _, stack := range stacks {
			b.WriteString(m.cell(stack, level, barW))
			b.WriteString(pad)
		}
		rows[r] = b.String()
	}
	return rows
}

func (m *Model) cell(stack [3]int, level, width int) string {
	top := 0
	for seg, h := range stack {
		top += h
		if level <= top {
			return m.theme.Bars[seg].Render(strings.Repeat(block, width))
		}
	}
	return strings.Repeat(" ", width)
}

func (m *Model) labels(page []traffic.Bar, colW int) string {
	var b strings.Builder
	for _, bar := range page {
		b.WriteString(util.PadString(util.TruncateString(bar.Label, max(1, colW-1)), colW))
	}
	return b.String()
}

func total(bar traffic.Bar) int {
	return bar.Values[0] + bar.Values[1] + bar.Values[2]
}
