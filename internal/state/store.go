package state

import (
	"sync"

	"github.com/adamkadaban/slips-tui/internal/geo"
	"github.com/adamkadaban/slips-tui/internal/profiles"
)

// Store guards shared application state needed by multiple Bubble Tea models.
// Fetch results carry the sequence number they were issued under and are
// dropped when a newer request has started since.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	infoSeq  uint64
	subs     map[int]*Subscription
	nextSub  int
}

// Subscription delivers notifications when the store mutates.
type Subscription struct {
	id     int
	store  *Store
	events chan struct{}
}

// NewStore creates a state store seeded with default values.
func NewStore() *Store {
	return &Store{
		snapshot: Snapshot{TreeStatus: TreeLoading},
		subs:     make(map[int]*Subscription),
	}
}

// Snapshot returns a copy of the current application state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copySnap := s.snapshot
	copySnap.Timeline = append([]profiles.TimelineEntry(nil), s.snapshot.Timeline...)
	copySnap.Markers = append([]geo.Marker(nil), s.snapshot.Markers...)
	return copySnap
}

// SetTree publishes the discovered navigation tree.
func (s *Store) SetTree(tree *profiles.Tree) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Tree = tree
	s.snapshot.TreeStatus = TreeReady
	s.notifyLocked()
}

// SetTreeFailed records that host discovery failed.
func (s *Store) SetTreeFailed(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.TreeStatus = TreeFailed
	s.snapshot.LastError = msg
	s.notifyLocked()
}

// BeginSelection starts a new window selection, clearing everything loaded
// for the previous one, and returns its sequence number.
func (s *Store) BeginSelection(host, window string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.snapshot.Selection.Seq + 1
	s.snapshot.Selection = Selection{Host: host, Window: window, Seq: seq}
	s.snapshot.Detail = profiles.WindowDetail{Host: host, Window: window}
	s.snapshot.Timeline = nil
	s.snapshot.Markers = nil
	s.notifyLocked()
	return seq
}

// Selection returns the current selection.
func (s *Store) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Selection
}

// ApplyDetail stores a loaded profile if seq is still current.
func (s *Store) ApplyDetail(seq uint64, detail profiles.WindowDetail) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.snapshot.Selection.Seq {
		return false
	}
	s.snapshot.Detail = detail
	s.notifyLocked()
	return true
}

// ApplyTimeline stores loaded flow lines if seq is still current.
func (s *Store) ApplyTimeline(seq uint64, entries []profiles.TimelineEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.snapshot.Selection.Seq {
		return false
	}
	s.snapshot.Timeline = append([]profiles.TimelineEntry(nil), entries...)
	s.notifyLocked()
	return true
}

// ApplyMarkers replaces the map markers if seq is still current.
func (s *Store) ApplyMarkers(seq uint64, markers []geo.Marker) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.snapshot.Selection.Seq {
		return false
	}
	s.snapshot.Markers = append([]geo.Marker(nil), markers...)
	s.notifyLocked()
	return true
}

// BeginHostInfo starts a host info lookup and returns its sequence number.
func (s *Store) BeginHostInfo() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.infoSeq++
	return s.infoSeq
}

// ApplyHostInfo stores host info text if seq is the latest lookup.
func (s *Store) ApplyHostInfo(seq uint64, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.infoSeq {
		return false
	}
	s.snapshot.HostInfo = text
	s.notifyLocked()
	return true
}

// SetError records a user-visible error message.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = msg
	s.notifyLocked()
}

// FailSelection records a fetch error if seq is still the current selection.
func (s *Store) FailSelection(seq uint64, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.snapshot.Selection.Seq {
		return false
	}
	s.snapshot.LastError = msg
	s.notifyLocked()
	return true
}

// FailHostInfo records a lookup error if seq is the latest lookup.
func (s *Store) FailHostInfo(seq uint64, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.infoSeq {
		return false
	}
	s.snapshot.LastError = msg
	s.notifyLocked()
	return true
}

// Subscribe returns a subscription that receives a signal whenever the store mutates.
func (s *Store) Subscribe() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &Subscription{
		id:     s.nextSub,
		store:  s,
		events: make(chan struct{}, 1),
	}
	s.nextSub++
	s.subs[sub.id] = sub
	return sub
}

func (s *Store) notifyLocked() {
	for _, sub := range s.subs {
		select {
		case sub.events <- struct{}{}:
		default:
		}
	}
}

func (s *Store) removeSubscription(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(sub.events)
	}
}

// Events returns a channel that receives a signal for each store mutation.
func (sub *Subscription) Events() <-chan struct{} {
	if sub == nil {
		return nil
	}
	return sub.events
}

// Close stops the subscription and releases associated resources.
func (sub *Subscription) Close() {
	if sub == nil || sub.store == nil {
		return
	}
	sub.store.removeSubscription(sub.id)
	sub.store = nil
}
