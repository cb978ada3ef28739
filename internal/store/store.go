// Package store is the read-only query layer over the key-value store
// populated by the upstream analysis engine.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrStore matches every failure returned by a Client.
var ErrStore = errors.New("store error")

// Error describes a failed store query.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports true for ErrStore so callers need not know the concrete type.
func (e *Error) Is(target error) bool { return target == ErrStore }

// Client exposes the four queries the dashboard issues. Implementations
// wrap failures in *Error. An absent hash yields an empty map, not an error.
type Client interface {
	Keys(ctx context.Context, pattern string) ([]string, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	ZRangeByScore(ctx context.Context, key, min, max string) ([]string, error)
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// Key layout written by the analysis engine.
const (
	WindowMarker = "timewindow"
	HostInfoKey  = "IPsInfo"

	FieldDetections = "Detections"
	FieldEvidence   = "Evidence"
	FieldOutTuples  = "OutTuples"
)

// WindowsKey is the sorted set of window ids for host, scored by start time.
func WindowsKey(host string) string { return "windows_for_" + host }

// ProfileKey is the hash holding the per-window record for host.
func ProfileKey(host, window string) string { return "profile_" + host + "_" + window }

// TimelineKey is the list of raw flow lines for a host window.
func TimelineKey(host, window string) string { return ProfileKey(host, window) + "_timeline" }
