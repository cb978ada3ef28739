package traffic

// Geometry is the bar chart layout the page size is derived from.
type Geometry struct {
	XOffset    int
	BarSpacing int
	BarWidth   int
}

// DefaultGeometry matches the chart widgets' layout.
var DefaultGeometry = Geometry{XOffset: 2, BarSpacing: 10, BarWidth: 6}

// PageSize returns how many bars fit in a chart width cells wide. It is
// never less than one.
func (g Geometry) PageSize(width int) int {
	denom := g.BarSpacing + 2*g.BarWidth
	if denom <= 0 {
		return 1
	}
	size := (2*width - 2*g.XOffset) / denom
	if size < 1 {
		return 1
	}
	return size
}

// Next advances cursor by one page, wrapping to 0 once it passes the
// last page.
func Next(cursor, length, size int) int {
	cursor += size
	if cursor >= length+size {
		return 0
	}
	return cursor
}

// Prev moves cursor back one page, stopping at 0.
func Prev(cursor, size int) int {
	cursor -= size
	if cursor < 0 {
		return 0
	}
	return cursor
}

// Page returns the bars visible at cursor.
func (s Series) Page(cursor, size int) []Bar {
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(s.Bars) || size <= 0 {
		return nil
	}
	end := cursor + size
	if end > len(s.Bars) {
		end = len(s.Bars)
	}
	return s.Bars[cursor:end]
}

// Pager holds the page cursor for one series.
type Pager struct {
	cursor int
}

// Cursor returns the current offset.
func (p *Pager) Cursor() int { return p.cursor }

// Next advances one page.
func (p *Pager) Next(length, size int) { p.cursor = Next(p.cursor, length, size) }

// Prev retreats one page.
func (p *Pager) Prev(size int) { p.cursor = Prev(p.cursor, size) }

// Reset returns to the first page.
func (p *Pager) Reset() { p.cursor = 0 }

// Status lines shown above the charts.
const (
	StatusBoth    = "Bars are scrollable. -W to change bars. -Left and -Right to  scroll."
	StatusUpper   = "Upper bar is scrollable. -Left and -Right to  scroll."
	StatusLower   = "Lower bar is scrollable. -Left and -Right to  scroll."
	StatusNeither = "Bars are not scrollable. This is the whole information"
)

// ScrollStatus reports which of the two series spans more than one page.
func ScrollStatus(upper, lower, size int) string {
	switch {
	case upper > size && lower > size:
		return StatusBoth
	case upper > size:
		return StatusUpper
	case lower > size:
		return StatusLower
	default:
		return StatusNeither
	}
}
