package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/adamkadaban/slips-tui/internal/app"
)

func main() {
	var opts app.Options

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to the config file (defaults to XDG config dir)")
	flag.StringVar(&opts.Theme, "theme", "", "Override theme (light, dark, auto)")
	flag.StringVar(&opts.RedisAddr, "redis", "", "Redis address host:port (overrides config)")
	flag.StringVar(&opts.CountriesFile, "countries", "", "Country coordinate table (defaults to the built-in table)")
	flag.StringVar(&opts.GeoIPDatabase, "geoip", "", "GeoIP2/GeoLite2 country database for addresses without geocountry")
	flag.StringVar(&opts.LogFile, "log", "", "Write debug logs to this file")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "slips-tui: %v\n", err)
		os.Exit(1)
	}
}
