package traffic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAggregateScenario(t *testing.T) {
	record := map[string]string{
		"SrcPortsClientTCPEstablished": `{"443": {"totalflows":10,"totalpkt":100,"totalbytes":100000}}`,
	}

	series := Aggregate(record, Established)
	want := Series{
		Name: "SrcPortsClientEstablished",
		Bars: []Bar{{Label: "TCP/443", Values: [3]int{2, 5, 12}}},
	}
	if diff := cmp.Diff(want, series); diff != "" {
		t.Fatalf("series mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateUnitCountersAreZero(t *testing.T) {
	record := map[string]string{
		"SrcPortsClientUDPNotEstablished": `{"53": {"totalflows":1,"totalpkt":1,"totalbytes":1}}`,
	}
	series := Aggregate(record, NotEstablished)
	if len(series.Bars) != 1 || series.Bars[0].Values != [3]int{0, 0, 0} {
		t.Fatalf("expected [0,0,0], got %+v", series.Bars)
	}
}

func TestAggregateTCPBeforeUDPInStoreOrder(t *testing.T) {
	record := map[string]string{
		"SrcPortsClientUDPEstablished": `{"53": {"totalflows":3,"totalpkt":3,"totalbytes":300}, "123": {"totalflows":1,"totalpkt":1,"totalbytes":90}}`,
		"SrcPortsClientTCPEstablished": `{"8080": {"totalflows":1,"totalpkt":4,"totalbytes":400}, "22": {"totalflows":2,"totalpkt":9,"totalbytes":900}}`,
	}
	series := Aggregate(record, Established)
	labels := make([]string, 0, series.Len())
	for _, bar := range series.Bars {
		labels = append(labels, bar.Label)
	}
	want := []string{"TCP/8080", "TCP/22", "UDP/53", "UDP/123"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("label order mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateIsolatesProtocolFailures(t *testing.T) {
	record := map[string]string{
		"SrcPortsClientTCPEstablished": `not json`,
		"SrcPortsClientUDPEstablished": `{"53": {"totalflows":3,"totalpkt":3,"totalbytes":300}, "67": "garbage"}`,
	}
	series := Aggregate(record, Established)
	if len(series.Bars) != 1 || series.Bars[0].Label != "UDP/53" {
		t.Fatalf("expected only UDP/53 to survive, got %+v", series.Bars)
	}
}

func TestAggregateZeroAndMissingCounters(t *testing.T) {
	record := map[string]string{
		"SrcPortsClientTCPEstablished": `{"80": {"totalflows":0,"totalpkt":"20"}}`,
	}
	series := Aggregate(record, Established)
	if len(series.Bars) != 1 {
		t.Fatalf("expected zero-counter port to stay, got %+v", series.Bars)
	}
	if series.Bars[0].Values != [3]int{0, 3, 0} {
		t.Fatalf("expected [0,3,0], got %v", series.Bars[0].Values)
	}
}

func TestAggregateAllEmptyRecord(t *testing.T) {
	est, notEst := AggregateAll(nil)
	if est.Len() != 0 || notEst.Len() != 0 {
		t.Fatalf("expected empty series, got %d and %d", est.Len(), notEst.Len())
	}
	if est.Name != "SrcPortsClientEstablished" || notEst.Name != "SrcPortsClientNotEstablished" {
		t.Fatalf("unexpected names %q %q", est.Name, notEst.Name)
	}
}

func TestLogScale(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{-5, 0},
		{0, 0},
		{0.5, 0},
		{1, 0},
		{2, 1},
		{10, 2},
		{100000, 12},
	}
	for _, tc := range cases {
		if got := LogScale(tc.in); got != tc.want {
			t.Fatalf("LogScale(%v): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}
