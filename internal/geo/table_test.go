package geo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTableLeadingSpaceKeys(t *testing.T) {
	table, err := ParseTable(strings.NewReader("Header:0,0; Czechia:49.75,15.5; United States:38,-97"))
	if err != nil {
		t.Fatalf("ParseTable error: %v", err)
	}
	coord, ok := table.Lookup("Czechia")
	if !ok {
		t.Fatalf("expected Czechia to resolve")
	}
	if coord.Lat != 49.75 || coord.Lon != 15.5 {
		t.Fatalf("unexpected coordinates %+v", coord)
	}
	if _, ok := table.Lookup("United States"); !ok {
		t.Fatalf("expected multi-word country to resolve")
	}
	// The first entry has no leading space, so the prefixed lookup misses it.
	if _, ok := table.Lookup("Header"); ok {
		t.Fatalf("expected first entry to be unreachable through Lookup")
	}
}

func TestParseTableSkipsMalformedAndPrivate(t *testing.T) {
	table, err := ParseTable(strings.NewReader("x; Nowhere; Broken:abc,1; Half:12; Private:Private; Spain:40,-4\n"))
	if err != nil {
		t.Fatalf("ParseTable error: %v", err)
	}
	for _, name := range []string{"Nowhere", "Broken", "Half", "Private"} {
		if _, ok := table.Lookup(name); ok {
			t.Fatalf("expected %q to be skipped", name)
		}
	}
	if _, ok := table.Lookup("Spain"); !ok {
		t.Fatalf("expected Spain to survive trailing newline")
	}
}

func TestLoadTableBuiltin(t *testing.T) {
	table, err := LoadTable("")
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	if table.Len() < 50 {
		t.Fatalf("expected built-in table to carry most countries, got %d", table.Len())
	}
	if _, ok := table.Lookup("Germany"); !ok {
		t.Fatalf("expected Germany in built-in table")
	}
	if _, ok := table.Lookup("Unknown"); ok {
		t.Fatalf("expected Unknown to be treated as private")
	}
}

func TestLoadTableMissingFileIsFatal(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatalf("expected error for missing table")
	}
	if !errors.Is(err, ErrTableUnavailable) {
		t.Fatalf("expected ErrTableUnavailable, got %v", err)
	}
}

func TestLoadTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "country.txt")
	if err := os.WriteFile(path, []byte("h:0,0; Japan:36,138"), 0o600); err != nil {
		t.Fatal(err)
	}
	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	if coord, ok := table.Lookup("Japan"); !ok || coord.Lon != 138 {
		t.Fatalf("expected Japan at lon 138, got %+v (ok=%v)", coord, ok)
	}
}
