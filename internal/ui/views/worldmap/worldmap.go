package worldmap

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adamkadaban/slips-tui/internal/geo"
	"github.com/adamkadaban/slips-tui/internal/state"
	"github.com/adamkadaban/slips-tui/internal/theme"
	"github.com/adamkadaban/slips-tui/internal/ui/components/panel"
)

// Model plots the last resolved markers on an equirectangular grid.
type Model struct {
	store  *state.Store
	theme  theme.Theme
	width  int
	height int
}

// New constructs the map overlay.
func New(store *state.Store, th theme.Theme) *Model {
	return &Model{store: store, theme: th}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(_ tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m *Model) Title() string { return "World map" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// SetFocused is a no-op; the map is display only.
func (m *Model) SetFocused(bool) {}

// Project maps a coordinate onto a cols x rows grid.
func Project(c geo.Coord, cols, rows int) (int, int) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	x := int((c.Lon + 180) / 360 * float64(cols-1))
	y := int((90 - c.Lat) / 180 * float64(rows-1))
	return clamp(x, cols), clamp(y, rows)
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func (m *Model) View() string {
	markers := m.store.Snapshot().Markers
	innerW, innerH := panel.Inner(m.width, m.height)
	rows := max(1, innerH-1)

	hits := make(map[[2]int]bool, len(markers))
	for _, marker := range markers {
		x, y := Project(marker.Coord, innerW, rows)
		hits[[2]int{x, y}] = true
	}

	lines := make([]string, 0, rows+1)
	for y := 0; y < rows; y++ {
		var b strings.Builder
		for x := 0; x < innerW; x++ {
			switch {
			case hits[[2]int{x, y}]:
				b.WriteString(m.theme.Marker.Render("X"))
			case y == rows/2:
				b.WriteString(m.theme.Land.Render("-"))
			default:
				b.WriteString(m.theme.Land.Render("·"))
			}
		}
		lines = append(lines, b.String())
	}
	lines = append(lines, m.legend(markers))
	return panel.Render(m.theme, m.Title(), strings.Join(lines, "\n"), m.width, m.height, false)
}

func (m *Model) legend(markers []geo.Marker) string {
	if len(markers) == 0 {
		return m.theme.Subtle.Render("No located destinations.")
	}
	seen := map[string]bool{}
	countries := []string{}
	for _, marker := range markers {
		if !seen[marker.Country] {
			seen[marker.Country] = true
			countries = append(countries, marker.Country)
		}
	}
	return m.theme.Subtle.Render(fmt.Sprintf("%d destinations: %s", len(markers), strings.Join(countries, ", ")))
}
