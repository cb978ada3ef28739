// Package profiles reads host profiles and their time windows from the store
// and normalizes them for display.
package profiles

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/adamkadaban/slips-tui/internal/store"
)

// discoveryLimit bounds concurrent per-host window queries.
const discoveryLimit = 8

// Tree maps each host to its windows. Child lists are computed from the
// discovery snapshot on first expansion and cached for the session.
type Tree struct {
	mu       sync.Mutex
	hosts    []string
	snapshot map[string][]string
	children map[string][]string
}

// NewTree builds a tree from a discovery snapshot. hosts fixes display order.
func NewTree(hosts []string, windows map[string][]string) *Tree {
	snap := make(map[string][]string, len(hosts))
	for _, h := range hosts {
		snap[h] = append([]string(nil), windows[h]...)
	}
	return &Tree{
		hosts:    append([]string(nil), hosts...),
		snapshot: snap,
		children: make(map[string][]string, len(hosts)),
	}
}

// Hosts returns the hosts in display order.
func (t *Tree) Hosts() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.hosts...)
}

// Children returns the windows for host, computing them once.
func (t *Tree) Children(host string) []string {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if cached, ok := t.children[host]; ok {
		return cached
	}
	computed := append([]string{}, t.snapshot[host]...)
	t.children[host] = computed
	return computed
}

// Expanded reports whether host's children have been computed.
func (t *Tree) Expanded(host string) bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.children[host]
	return ok
}

// Builder discovers hosts and windows.
type Builder struct {
	client store.Client
}

// NewBuilder returns a Builder reading from client.
func NewBuilder(client store.Client) *Builder {
	return &Builder{client: client}
}

// DiscoverHosts enumerates every key and keeps the host id embedded in
// keys that mention a time window (`profile_<host>_timewindowN...`).
func (b *Builder) DiscoverHosts(ctx context.Context) ([]string, error) {
	keys, err := b.client.Keys(ctx, "*")
	if err != nil {
		return nil, fmt.Errorf("discover hosts: %w", err)
	}
	seen := make(map[string]struct{})
	hosts := []string{}
	for _, key := range keys {
		host, ok := hostFromKey(key)
		if !ok {
			continue
		}
		if _, dup := seen[host]; dup {
			continue
		}
		seen[host] = struct{}{}
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts, nil
}

// DiscoverWindows returns host's windows ordered by score.
func (b *Builder) DiscoverWindows(ctx context.Context, host string) ([]string, error) {
	windows, err := b.client.ZRangeByScore(ctx, store.WindowsKey(host), "-inf", "+inf")
	if err != nil {
		return nil, fmt.Errorf("discover windows for %s: %w", host, err)
	}
	return windows, nil
}

// Build discovers every host and its windows. A host whose window lookup
// fails stays in the tree with no windows; only host discovery failing
// aborts the build.
func (b *Builder) Build(ctx context.Context) (*Tree, error) {
	hosts, err := b.DiscoverHosts(ctx)
	if err != nil {
		return nil, err
	}

	results := make([][]string, len(hosts))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(discoveryLimit)
	for idx, host := range hosts {
		idx, host := idx, host
		group.Go(func() error {
			windows, err := b.DiscoverWindows(groupCtx, host)
			if err != nil {
				log.Printf("[tree] %v", err)
				return nil
			}
			results[idx] = windows
			return nil
		})
	}
	_ = group.Wait()

	windows := make(map[string][]string, len(hosts))
	for idx, host := range hosts {
		windows[host] = results[idx]
	}
	return NewTree(hosts, windows), nil
}

func hostFromKey(key string) (string, bool) {
	if !strings.Contains(key, store.WindowMarker) {
		return "", false
	}
	parts := strings.Split(key, "_")
	if len(parts) < 2 || parts[1] == "" || strings.Contains(parts[1], store.WindowMarker) {
		return "", false
	}
	return parts[1], true
}

// IsWindow reports whether a tree node name denotes a time window.
func IsWindow(name string) bool {
	return strings.Contains(name, store.WindowMarker)
}
