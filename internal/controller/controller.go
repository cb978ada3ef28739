package controller

import (
	"context"

	"github.com/adamkadaban/slips-tui/internal/geo"
	"github.com/adamkadaban/slips-tui/internal/profiles"
)

// ProfileSource loads per-window and per-host records.
type ProfileSource interface {
	Profile(ctx context.Context, host, window string) (profiles.WindowDetail, error)
	Timeline(ctx context.Context, host, window string) ([]profiles.TimelineEntry, error)
	HostInfo(ctx context.Context, host string) (string, error)
}

// MarkerResolver turns destination addresses into map markers.
type MarkerResolver interface {
	Resolve(ctx context.Context, ips []string) ([]geo.Marker, error)
}

// SettingsManager persists UI configuration choices.
type SettingsManager interface {
	SetTheme(name string) (string, error)
}
