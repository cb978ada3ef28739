// Package storetest provides an in-memory store.Client for tests.
package storetest

import (
	"context"
	"errors"
	"path"
	"sort"
	"sync"

	"github.com/adamkadaban/slips-tui/internal/store"
)

// Fake serves canned data. Sorted sets are returned in the order given,
// so tests supply them already ordered by score.
type Fake struct {
	mu     sync.Mutex
	hashes map[string]map[string]string
	sets   map[string][]string
	lists  map[string][]string
	errs   map[string]error
	calls  map[string]int
}

// New returns an empty fake.
func New() *Fake {
	return &Fake{
		hashes: map[string]map[string]string{},
		sets:   map[string][]string{},
		lists:  map[string][]string{},
		errs:   map[string]error{},
		calls:  map[string]int{},
	}
}

// SetHash stores field/value pairs under key.
func (f *Fake) SetHash(key string, fields map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := f.hashes[key]
	if h == nil {
		h = map[string]string{}
		f.hashes[key] = h
	}
	for k, v := range fields {
		h[k] = v
	}
}

// SetSortedSet stores members under key in score order.
func (f *Fake) SetSortedSet(key string, members ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets[key] = append([]string(nil), members...)
}

// SetList stores list entries under key.
func (f *Fake) SetList(key string, lines ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[key] = append([]string(nil), lines...)
}

// FailKey makes every query touching key fail with err.
func (f *Fake) FailKey(key string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[key] = err
}

// Calls reports how many queries hit key.
func (f *Fake) Calls(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *Fake) check(op, key string) error {
	f.calls[key]++
	if err, ok := f.errs[key]; ok {
		return &store.Error{Op: op, Key: key, Err: err}
	}
	return nil
}

func (f *Fake) Keys(_ context.Context, pattern string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check("scan", pattern); err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, group := range []map[string]bool{keysOf(f.hashes), keysOf(f.sets), keysOf(f.lists)} {
		for k := range group {
			if ok, _ := path.Match(pattern, k); ok {
				seen[k] = struct{}{}
			}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (f *Fake) HGetAll(_ context.Context, key string) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check("hgetall", key); err != nil {
		return nil, err
	}
	out := map[string]string{}
	for k, v := range f.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func (f *Fake) ZRangeByScore(_ context.Context, key, _, _ string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check("zrangebyscore", key); err != nil {
		return nil, err
	}
	return append([]string(nil), f.sets[key]...), nil
}

func (f *Fake) LRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check("lrange", key); err != nil {
		return nil, err
	}
	lines := f.lists[key]
	n := int64(len(lines))
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop {
		return []string{}, nil
	}
	return append([]string(nil), lines[start:stop+1]...), nil
}

// ErrDown is a convenient connectivity failure for tests.
var ErrDown = errors.New("connection refused")

func keysOf[V any](m map[string]V) map[string]bool {
	out := make(map[string]bool, len(m))
	for k := range m {
		out[k] = true
	}
	return out
}

var _ store.Client = (*Fake)(nil)
