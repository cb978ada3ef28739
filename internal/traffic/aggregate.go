// Package traffic turns per-port connection counters into log-scaled,
// paginated bar series.
package traffic

import (
	"math"

	"github.com/adamkadaban/slips-tui/internal/store"
)

// Protocol is a transport protocol with its own counter field.
type Protocol string

const (
	TCP Protocol = "TCP"
	UDP Protocol = "UDP"
)

// Protocols lists protocols in series order; TCP bars come first.
var Protocols = []Protocol{TCP, UDP}

// ConnState separates established from not-established traffic.
type ConnState string

const (
	Established    ConnState = "Established"
	NotEstablished ConnState = "NotEstablished"
)

// Categories names the stacked segments of each bar.
var Categories = []string{"totalflows", "totalpkt", "totalbytes"}

// Bar is one port's log-scaled counters: flows, packets, bytes.
type Bar struct {
	Label  string
	Values [3]int
}

// Series is the ordered bar list for one connection state.
type Series struct {
	Name string
	Bars []Bar
}

// Len returns the number of bars.
func (s Series) Len() int { return len(s.Bars) }

// SeriesName returns the chart label for state.
func SeriesName(state ConnState) string { return "SrcPortsClient" + string(state) }

// FieldName returns the profile hash field holding proto/state counters.
func FieldName(proto Protocol, state ConnState) string {
	return "SrcPortsClient" + string(proto) + string(state)
}

// Aggregate builds the series for state from a window's profile record.
// A protocol whose field is missing or undecodable contributes nothing;
// the other protocol is still processed.
func Aggregate(record map[string]string, state ConnState) Series {
	series := Series{Name: SeriesName(state), Bars: []Bar{}}
	for _, proto := range Protocols {
		series.Bars = append(series.Bars, protocolBars(proto, record[FieldName(proto, state)])...)
	}
	return series
}

// AggregateAll builds the established and not-established series.
func AggregateAll(record map[string]string) (Series, Series) {
	return Aggregate(record, Established), Aggregate(record, NotEstablished)
}

func protocolBars(proto Protocol, raw string) []Bar {
	ports, ok := store.DecodeObject(raw)
	if !ok {
		return nil
	}
	bars := make([]Bar, 0, len(ports))
	for _, port := range ports {
		counters, ok := store.DecodeObject(string(port.Value))
		if !ok {
			continue
		}
		bars = append(bars, Bar{
			Label: string(proto) + "/" + port.Key,
			Values: [3]int{
				LogScale(counter(counters, "totalflows")),
				LogScale(counter(counters, "totalpkt")),
				LogScale(counter(counters, "totalbytes")),
			},
		})
	}
	return bars
}

func counter(fields []store.Field, name string) float64 {
	v, ok := store.Lookup(fields, name)
	if !ok {
		return 0
	}
	n, ok := store.Number(v)
	if !ok {
		return 0
	}
	return n
}

// LogScale returns round(ln(v)). Counters of zero or less, where the log
// is undefined, become a zero-height bar, as does anything below one.
func LogScale(v float64) int {
	if v <= 1 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(math.Log(v)))
}
