// Package nav holds the dashboard's focus state machines.
package nav

import "github.com/adamkadaban/slips-tui/internal/util"

// Panel names a focusable dashboard panel.
type Panel int

const (
	PanelTree Panel = iota
	PanelTimeline
	PanelOutTuples
	PanelDetections
	PanelEvidence
)

// PanelOrder is the focus cycle; the last panel wraps to the first.
var PanelOrder = []Panel{
	PanelTree,
	PanelTimeline,
	PanelOutTuples,
	PanelDetections,
	PanelEvidence,
}

func (p Panel) String() string {
	switch p {
	case PanelTree:
		return "tree"
	case PanelTimeline:
		return "timeline"
	case PanelOutTuples:
		return "outtuples"
	case PanelDetections:
		return "detections"
	case PanelEvidence:
		return "evidence"
	default:
		return "unknown"
	}
}

// Focus tracks which panel receives input. The zero value focuses the tree.
type Focus struct {
	current Panel
}

// Current returns the focused panel.
func (f *Focus) Current() Panel { return f.current }

// Is reports whether p has focus.
func (f *Focus) Is(p Panel) bool { return f.current == p }

// Advance moves focus one step along PanelOrder and returns the panels
// that lost and gained focus.
func (f *Focus) Advance() (from, to Panel) {
	from = f.current
	f.current = PanelOrder[util.WrapIndex(indexOf(from), 1, len(PanelOrder))]
	return from, f.current
}

func indexOf(p Panel) int {
	for idx, candidate := range PanelOrder {
		if candidate == p {
			return idx
		}
	}
	return 0
}

// Chart names one of the two traffic charts.
type Chart int

const (
	ChartEstablished Chart = iota
	ChartNotEstablished
)

// ChartFocus toggles between the two charts while they are shown.
type ChartFocus struct {
	current Chart
}

// Current returns the focused chart.
func (c *ChartFocus) Current() Chart { return c.current }

// Toggle switches to the other chart.
func (c *ChartFocus) Toggle() Chart {
	if c.current == ChartEstablished {
		c.current = ChartNotEstablished
	} else {
		c.current = ChartEstablished
	}
	return c.current
}

// Reset focuses the upper chart.
func (c *ChartFocus) Reset() { c.current = ChartEstablished }
