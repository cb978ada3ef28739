package profiles

import (
	"context"
	"fmt"
	"strings"

	"github.com/adamkadaban/slips-tui/internal/store"
)

// HostInfo returns the attributes recorded for host joined with ", ".
// A record that is not a JSON object is returned verbatim; a missing one
// yields "".
func (l *Loader) HostInfo(ctx context.Context, host string) (string, error) {
	info, err := l.client.HGetAll(ctx, store.HostInfoKey)
	if err != nil {
		return "", fmt.Errorf("load host info: %w", err)
	}
	return FormatHostInfo(info[host]), nil
}

// FormatHostInfo renders one IPsInfo value for display.
func FormatHostInfo(raw string) string {
	if raw == "" {
		return ""
	}
	fields, ok := store.DecodeObject(raw)
	if !ok {
		return raw
	}
	values := make([]string, 0, len(fields))
	for _, f := range fields {
		values = append(values, store.Text(f.Value))
	}
	return strings.Join(values, ", ")
}
