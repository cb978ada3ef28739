// Package geo maps contacted addresses to world map coordinates.
package geo

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

//go:embed countries.txt
var builtinTable string

// ErrTableUnavailable marks a country table that could not be read.
var ErrTableUnavailable = errors.New("country table unavailable")

// Coord is a latitude/longitude pair in degrees.
type Coord struct {
	Lat float64
	Lon float64
}

type entry struct {
	coord   Coord
	private bool
}

// Table resolves country names to coordinates. Keys are kept exactly as
// they appear in the source file, including the leading space every
// entry after the first carries, and lookups prefix that space.
type Table struct {
	entries map[string]entry
}

// ParseTable reads `name:lat,lon` entries separated by ';'. Malformed
// entries are skipped. A value of `Private` marks a non-routable range.
func ParseTable(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrTableUnavailable, err)
	}
	t := Table{entries: map[string]entry{}}
	for _, raw := range strings.Split(string(data), ";") {
		raw = strings.Trim(raw, "\r\n\t")
		name, value, ok := strings.Cut(raw, ":")
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "Private" {
			t.entries[name] = entry{private: true}
			continue
		}
		latText, lonText, ok := strings.Cut(value, ",")
		if !ok {
			continue
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(lonText), 64)
		if err != nil {
			continue
		}
		t.entries[name] = entry{coord: Coord{Lat: lat, Lon: lon}}
	}
	return t, nil
}

// LoadTable reads the table at path, or the built-in table when path is empty.
func LoadTable(path string) (Table, error) {
	if path == "" {
		return ParseTable(strings.NewReader(builtinTable))
	}
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrTableUnavailable, err)
	}
	defer f.Close()
	return ParseTable(f)
}

// Lookup returns the coordinates for a country name as stored in IPsInfo.
func (t Table) Lookup(country string) (Coord, bool) {
	e, ok := t.entries[" "+country]
	if !ok || e.private {
		return Coord{}, false
	}
	return e.coord, true
}

// Len reports the number of parsed entries.
func (t Table) Len() int { return len(t.entries) }
