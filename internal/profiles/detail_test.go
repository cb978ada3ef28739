package profiles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/adamkadaban/slips-tui/internal/store"
	"github.com/adamkadaban/slips-tui/internal/store/storetest"
)

func TestProfileOutgoingTupleRow(t *testing.T) {
	srv := miniredis.RunT(t)
	srv.HSet(store.ProfileKey("10.0.0.5", "timewindow1"),
		"OutTuples", `{"8.8.8.8:53:udp":["Established"]}`,
		"Detections", "DNS without resolution",
	)
	client := store.NewRedis(store.Options{Address: srv.Addr(), Timeout: time.Second})
	defer client.Close()

	detail, err := NewLoader(client).Profile(context.Background(), "10.0.0.5", "timewindow1")
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if !detail.Found {
		t.Fatalf("expected record to be found")
	}
	if len(detail.OutTuples) != 1 {
		t.Fatalf("expected one tuple, got %+v", detail.OutTuples)
	}
	if diff := cmp.Diff([]string{"8.8.8.8:53:udp", "Established"}, detail.OutTuples[0].Row()); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"8.8.8.8"}, detail.DestIPs); diff != "" {
		t.Fatalf("destination ips mismatch (-want +got):\n%s", diff)
	}
	if detail.Detections != "DNS without resolution" {
		t.Fatalf("unexpected detections %q", detail.Detections)
	}
}

func TestProfileDestIPsMatchTupleCount(t *testing.T) {
	fake := storetest.New()
	fake.SetHash(store.ProfileKey("h", "timewindow1"), map[string]string{
		"OutTuples": `{"1.1.1.1:443:tcp":[" Established ", "x"], "2001:db8::1:53:udp":["NotEstablished"], "9.9.9.9:53:udp":[]}`,
	})

	detail, err := NewLoader(fake).Profile(context.Background(), "h", "timewindow1")
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if len(detail.DestIPs) != 3 || len(detail.OutTuples) != 3 {
		t.Fatalf("expected three entries, got %d ips %d tuples", len(detail.DestIPs), len(detail.OutTuples))
	}
	want := []Tuple{
		{Key: "1.1.1.1:443:tcp", DstIP: "1.1.1.1", State: "Established"},
		{Key: "2001:db8::1:53:udp", DstIP: "2001", State: "NotEstablished"},
		{Key: "9.9.9.9:53:udp", DstIP: "9.9.9.9", State: ""},
	}
	if diff := cmp.Diff(want, detail.OutTuples); diff != "" {
		t.Fatalf("tuples mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileMissingRecordIsEmpty(t *testing.T) {
	fake := storetest.New()

	detail, err := NewLoader(fake).Profile(context.Background(), "10.0.0.5", "timewindow7")
	if err != nil {
		t.Fatalf("expected no error for missing record, got %v", err)
	}
	want := WindowDetail{Host: "10.0.0.5", Window: "timewindow7"}
	if diff := cmp.Diff(want, detail); diff != "" {
		t.Fatalf("expected empty detail (-want +got):\n%s", diff)
	}
}

func TestProfileEvidence(t *testing.T) {
	fake := storetest.New()
	fake.SetHash(store.ProfileKey("h", "timewindow1"), map[string]string{
		"Evidence": `{"dport:53:DNS": "Unresolved DNS", "ip:8.8.8.8": "Threat intel"}`,
	})

	detail, err := NewLoader(fake).Profile(context.Background(), "h", "timewindow1")
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	want := []EvidenceItem{
		{Key: "dport:53:DNS", Description: "Unresolved DNS"},
		{Key: "ip:8.8.8.8", Description: "Threat intel"},
	}
	if diff := cmp.Diff(want, detail.Evidence); diff != "" {
		t.Fatalf("evidence mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileMalformedFieldsAreCleared(t *testing.T) {
	fake := storetest.New()
	fake.SetHash(store.ProfileKey("h", "timewindow1"), map[string]string{
		"Evidence":   "not json",
		"OutTuples":  "{broken",
		"Detections": "still shown",
	})

	detail, err := NewLoader(fake).Profile(context.Background(), "h", "timewindow1")
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if detail.Evidence != nil || detail.OutTuples != nil || detail.DestIPs != nil {
		t.Fatalf("expected malformed fields to be cleared, got %+v", detail)
	}
	if detail.Detections != "still shown" {
		t.Fatalf("expected detections to survive, got %q", detail.Detections)
	}
}

func TestProfileStoreError(t *testing.T) {
	fake := storetest.New()
	fake.FailKey(store.ProfileKey("h", "timewindow1"), storetest.ErrDown)

	detail, err := NewLoader(fake).Profile(context.Background(), "h", "timewindow1")
	if !errors.Is(err, store.ErrStore) {
		t.Fatalf("expected store error, got %v", err)
	}
	if detail.Found || len(detail.OutTuples) != 0 {
		t.Fatalf("expected empty detail on error, got %+v", detail)
	}
}

func TestProfileRepeatedTupleKeyCollapses(t *testing.T) {
	fake := storetest.New()
	fake.SetHash(store.ProfileKey("h", "timewindow1"), map[string]string{
		"OutTuples": `{"8.8.8.8:53:udp":["Established"],"8.8.8.8:53:udp":["NotEstablished"]}`,
	})

	detail, err := NewLoader(fake).Profile(context.Background(), "h", "timewindow1")
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	want := []Tuple{{Key: "8.8.8.8:53:udp", DstIP: "8.8.8.8", State: "NotEstablished"}}
	if diff := cmp.Diff(want, detail.OutTuples); diff != "" {
		t.Fatalf("tuples mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"8.8.8.8"}, detail.DestIPs); diff != "" {
		t.Fatalf("destination ips mismatch (-want +got):\n%s", diff)
	}
}
