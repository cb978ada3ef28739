package state

import (
	"github.com/adamkadaban/slips-tui/internal/geo"
	"github.com/adamkadaban/slips-tui/internal/profiles"
)

// TreeStatus captures the progress of host discovery.
type TreeStatus string

const (
	TreeLoading TreeStatus = "loading"
	TreeReady   TreeStatus = "ready"
	TreeFailed  TreeStatus = "failed"
)

// Selection identifies the window whose detail is on screen.
type Selection struct {
	Host   string
	Window string
	Seq    uint64
}

// Snapshot is a threadsafe copy of the application's state tree.
type Snapshot struct {
	Tree       *profiles.Tree
	TreeStatus TreeStatus
	Selection  Selection
	Detail     profiles.WindowDetail
	Timeline   []profiles.TimelineEntry
	Markers    []geo.Marker
	HostInfo   string
	LastError  string
}
