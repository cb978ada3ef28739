package geo

import (
	"context"
	"log"

	"github.com/adamkadaban/slips-tui/internal/store"
)

// Marker is a resolved map point for one contacted address.
type Marker struct {
	IP      string
	Country string
	Coord
}

// CountryLocator supplies a country name for addresses without one in IPsInfo.
type CountryLocator interface {
	Country(ip string) (string, bool)
}

// Resolver turns destination addresses into map markers using the shared
// IPsInfo hash and the country table.
type Resolver struct {
	client   store.Client
	table    Table
	fallback CountryLocator
}

// NewResolver builds a resolver. fallback may be nil.
func NewResolver(client store.Client, table Table, fallback CountryLocator) *Resolver {
	return &Resolver{client: client, table: table, fallback: fallback}
}

// Resolve returns markers in input order. Addresses that are unknown,
// private, or carry an undecodable record are skipped; only failing to
// read IPsInfo itself is returned as an error.
func (r *Resolver) Resolve(ctx context.Context, ips []string) ([]Marker, error) {
	if len(ips) == 0 {
		return nil, nil
	}
	info, err := r.client.HGetAll(ctx, store.HostInfoKey)
	if err != nil {
		log.Printf("[geo] read %s: %v", store.HostInfoKey, err)
		return nil, err
	}

	markers := make([]Marker, 0, len(ips))
	for _, ip := range ips {
		country := r.country(ip, info[ip])
		if country == "" {
			continue
		}
		coord, ok := r.table.Lookup(country)
		if !ok {
			continue
		}
		markers = append(markers, Marker{IP: ip, Country: country, Coord: coord})
	}
	return markers, nil
}

func (r *Resolver) country(ip, raw string) string {
	if raw != "" {
		fields, ok := store.DecodeObject(raw)
		if ok {
			if v, found := store.Lookup(fields, "geocountry"); found {
				return store.Text(v)
			}
		}
	}
	if r.fallback != nil {
		if name, ok := r.fallback.Country(ip); ok {
			return name
		}
	}
	return ""
}
