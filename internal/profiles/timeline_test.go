package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adamkadaban/slips-tui/internal/store"
	"github.com/adamkadaban/slips-tui/internal/store/storetest"
)

func TestParseTimelineLine(t *testing.T) {
	entry := ParseTimelineLine("2021-01-01 10:00:00.123 10.0.0.5 asked for 3 192.168.1.1 port 53")
	if entry.Fields[1] != "10:00:00" {
		t.Fatalf("expected truncated timestamp, got %q", entry.Fields[1])
	}
	if !entry.Highlight {
		t.Fatalf("expected dotted seventh field to be flagged")
	}
	if entry.IP() != "192.168.1.1" {
		t.Fatalf("expected flagged field to be the address, got %q", entry.IP())
	}
	if got := entry.Line(); got != "2021-01-01 10:00:00 10.0.0.5 asked for 3 192.168.1.1 port 53" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestParseTimelineLineEdgeCases(t *testing.T) {
	cases := []struct {
		name      string
		line      string
		fields    []string
		highlight bool
	}{
		{"no fraction", "2021-01-01 10:00:00 a b c d e", []string{"2021-01-01", "10:00:00", "a", "b", "c", "d", "e"}, false},
		{"short line", "2021-01-01 10:00:00.5", []string{"2021-01-01", "10:00:00"}, false},
		{"collapses spaces", "a  b.1   c d e f g.h", []string{"a", "b", "c", "d", "e", "f", "g.h"}, true},
		{"empty", "", []string{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := ParseTimelineLine(tc.line)
			if diff := cmp.Diff(tc.fields, entry.Fields); diff != "" {
				t.Fatalf("fields mismatch (-want +got):\n%s", diff)
			}
			if entry.Highlight != tc.highlight {
				t.Fatalf("expected highlight %v, got %v", tc.highlight, entry.Highlight)
			}
		})
	}
}

func TestTimelinePreservesStoreOrder(t *testing.T) {
	fake := storetest.New()
	fake.SetList(store.TimelineKey("h", "timewindow1"),
		"2021-01-01 10:00:00.1 first",
		"2021-01-01 10:00:05.9 second",
	)

	entries, err := NewLoader(fake).Timeline(context.Background(), "h", "timewindow1")
	if err != nil {
		t.Fatalf("Timeline error: %v", err)
	}
	if len(entries) != 2 || entries[0].Fields[2] != "first" || entries[1].Fields[2] != "second" {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestTimelineStoreError(t *testing.T) {
	fake := storetest.New()
	fake.FailKey(store.TimelineKey("h", "timewindow1"), storetest.ErrDown)

	if _, err := NewLoader(fake).Timeline(context.Background(), "h", "timewindow1"); !errors.Is(err, store.ErrStore) {
		t.Fatalf("expected store error, got %v", err)
	}
}
