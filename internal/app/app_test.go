package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adamkadaban/slips-tui/internal/geo"
	"github.com/adamkadaban/slips-tui/internal/profiles"
	"github.com/adamkadaban/slips-tui/internal/state"
	"github.com/adamkadaban/slips-tui/internal/store"
	"github.com/adamkadaban/slips-tui/internal/store/storetest"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunReturnsErrorOnUnreadableConfig(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	// A directory passed as the config file forces a read error.
	cfgPath := filepath.Join(dir, "cfgdir")
	if err := os.MkdirAll(cfgPath, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	err := Run(ctx, Options{ConfigPath: cfgPath})
	if err == nil {
		t.Fatalf("expected error for unreadable config (directory), got nil")
	}
}

func TestRunReturnsErrorOnInvalidRedisAddr(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	err := Run(context.Background(), Options{ConfigPath: cfgPath, RedisAddr: "no-port"})
	if err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRunReturnsErrorOnMissingCountries(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	err := Run(context.Background(), Options{
		ConfigPath:    cfgPath,
		CountriesFile: filepath.Join(t.TempDir(), "missing.txt"),
	})
	if !errors.Is(err, geo.ErrTableUnavailable) {
		t.Fatalf("expected country table error, got %v", err)
	}
}

func TestResolveConfigAppliesOverrides(t *testing.T) {
	path := writeConfig(t, `theme: light
redis:
  address: 10.1.1.1:6379
  db: 1
countries_file: /etc/slips/country.txt
`)
	gotPath, cfg, err := resolveConfig(Options{
		ConfigPath: path,
		RedisAddr:  "127.0.0.1:6380",
		LogFile:    "/tmp/tui.log",
	})
	if err != nil {
		t.Fatalf("resolveConfig error: %v", err)
	}
	if gotPath != path {
		t.Fatalf("expected path %s, got %s", path, gotPath)
	}
	want := struct {
		Addr, Countries, Log string
		DB                   int
	}{"127.0.0.1:6380", "/etc/slips/country.txt", "/tmp/tui.log", 1}
	got := struct {
		Addr, Countries, Log string
		DB                   int
	}{cfg.Redis.Address, cfg.CountriesFile, cfg.LogFile, cfg.Redis.DB}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTreePublishesTree(t *testing.T) {
	fake := storetest.New()
	fake.SetHash(store.ProfileKey("10.0.0.5", "timewindow1"), map[string]string{"Detections": "x"})
	fake.SetSortedSet(store.WindowsKey("10.0.0.5"), "timewindow1", "timewindow2")

	st := state.NewStore()
	buildTree(context.Background(), profiles.NewBuilder(fake), st)

	snap := st.Snapshot()
	if snap.TreeStatus != state.TreeReady {
		t.Fatalf("expected ready tree, got %s", snap.TreeStatus)
	}
	if diff := cmp.Diff([]string{"timewindow1", "timewindow2"}, snap.Tree.Children("10.0.0.5")); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTreeRecordsFailure(t *testing.T) {
	fake := storetest.New()
	fake.FailKey("*", storetest.ErrDown)

	st := state.NewStore()
	buildTree(context.Background(), profiles.NewBuilder(fake), st)

	snap := st.Snapshot()
	if snap.TreeStatus != state.TreeFailed || snap.LastError == "" {
		t.Fatalf("expected failed tree with message, got %+v", snap)
	}
}
