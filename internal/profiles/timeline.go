package profiles

import (
	"context"
	"fmt"
	"strings"

	"github.com/adamkadaban/slips-tui/internal/store"
)

const (
	timestampField = 1
	flaggedField   = 6
)

// TimelineEntry is one flow line split into fields.
type TimelineEntry struct {
	Fields []string
	// Highlight marks Fields[6] as carrying a dotted value (an address or ratio).
	Highlight bool
}

// Line re-joins the fields with single spaces.
func (e TimelineEntry) Line() string { return strings.Join(e.Fields, " ") }

// IP returns the flagged field, which holds the peer address.
func (e TimelineEntry) IP() string {
	if len(e.Fields) <= flaggedField {
		return ""
	}
	return e.Fields[flaggedField]
}

// ParseTimelineLine normalizes a raw flow line: the timestamp loses its
// fractional suffix and a dotted seventh field is flagged for emphasis.
func ParseTimelineLine(line string) TimelineEntry {
	fields := strings.Fields(line)
	entry := TimelineEntry{Fields: fields}
	if len(fields) > timestampField {
		if idx := strings.LastIndex(fields[timestampField], "."); idx >= 0 {
			fields[timestampField] = fields[timestampField][:idx]
		}
	}
	if len(fields) > flaggedField && strings.Contains(fields[flaggedField], ".") {
		entry.Highlight = true
	}
	return entry
}

// Timeline loads the window's flow lines, oldest first.
func (l *Loader) Timeline(ctx context.Context, host, window string) ([]TimelineEntry, error) {
	lines, err := l.client.LRange(ctx, store.TimelineKey(host, window), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("load timeline: %w", err)
	}
	entries := make([]TimelineEntry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, ParseTimelineLine(line))
	}
	return entries, nil
}
