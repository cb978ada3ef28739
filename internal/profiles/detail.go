package profiles

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/adamkadaban/slips-tui/internal/store"
)

// Tuple is one outgoing connection of a window.
type Tuple struct {
	Key   string // dstip:dstport:proto
	DstIP string
	State string
}

// Row returns the two table cells shown for the tuple.
func (t Tuple) Row() []string { return []string{t.Key, t.State} }

// EvidenceItem is one evidence key and its description.
type EvidenceItem struct {
	Key         string
	Description string
}

// WindowDetail is everything loaded from a window's profile hash. It is
// replaced wholesale on each selection.
type WindowDetail struct {
	Host       string
	Window     string
	Found      bool
	Detections string
	Evidence   []EvidenceItem
	OutTuples  []Tuple
	// DestIPs lists tuple destinations in tuple order, for the map.
	DestIPs []string
	// Record keeps the raw hash so the traffic charts can be rebuilt on demand.
	Record map[string]string
}

// Loader fetches window and host records.
type Loader struct {
	client store.Client
}

// NewLoader returns a Loader reading from client.
func NewLoader(client store.Client) *Loader {
	return &Loader{client: client}
}

// Profile loads the profile hash for a window. An absent record yields an
// empty detail with Found unset and no error.
func (l *Loader) Profile(ctx context.Context, host, window string) (WindowDetail, error) {
	detail := WindowDetail{Host: host, Window: window}
	key := store.ProfileKey(host, window)
	record, err := l.client.HGetAll(ctx, key)
	if err != nil {
		return detail, fmt.Errorf("load profile: %w", err)
	}
	if len(record) == 0 {
		return detail, nil
	}

	detail.Found = true
	detail.Record = record
	detail.Detections = record[store.FieldDetections]
	detail.Evidence = decodeEvidence(record[store.FieldEvidence])
	detail.OutTuples, detail.DestIPs = decodeTuples(key, record[store.FieldOutTuples])
	return detail, nil
}

func decodeEvidence(raw string) []EvidenceItem {
	fields, ok := store.DecodeObject(raw)
	if !ok {
		return nil
	}
	items := make([]EvidenceItem, 0, len(fields))
	for _, f := range fields {
		items = append(items, EvidenceItem{Key: f.Key, Description: store.Text(f.Value)})
	}
	return items
}

func decodeTuples(key, raw string) ([]Tuple, []string) {
	if raw == "" {
		return nil, nil
	}
	fields, ok := store.DecodeObject(raw)
	if !ok {
		log.Printf("[detail] %s: OutTuples is not a JSON object", key)
		return nil, nil
	}
	tuples := make([]Tuple, 0, len(fields))
	ips := make([]string, 0, len(fields))
	for _, f := range fields {
		dst, _, _ := strings.Cut(f.Key, ":")
		tuples = append(tuples, Tuple{Key: f.Key, DstIP: dst, State: tupleState(f)})
		ips = append(ips, dst)
	}
	return tuples, ips
}

func tupleState(f store.Field) string {
	items, ok := store.DecodeList(f.Value)
	if !ok {
		return strings.TrimSpace(store.Text(f.Value))
	}
	if len(items) == 0 {
		return ""
	}
	return strings.TrimSpace(store.Text(items[0]))
}
