package geo

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// GeoIP resolves country names from a local MaxMind database. It covers
// addresses the analysis engine has not annotated yet.
type GeoIP struct {
	db *geoip2.Reader
}

// OpenGeoIP opens a GeoLite2/GeoIP2 Country or City database.
func OpenGeoIP(path string) (*GeoIP, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip database %s: %w", path, err)
	}
	return &GeoIP{db: db}, nil
}

// Country returns the English country name for ip.
func (g *GeoIP) Country(ip string) (string, bool) {
	if g == nil || g.db == nil {
		return "", false
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", false
	}
	record, err := g.db.Country(parsed)
	if err != nil {
		return "", false
	}
	name := record.Country.Names["en"]
	return name, name != ""
}

// Close releases the database mapping.
func (g *GeoIP) Close() error {
	if g == nil || g.db == nil {
		return nil
	}
	return g.db.Close()
}
