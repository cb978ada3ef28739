package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/adamkadaban/slips-tui/internal/config"
	"github.com/adamkadaban/slips-tui/internal/geo"
	"github.com/adamkadaban/slips-tui/internal/keymap"
	"github.com/adamkadaban/slips-tui/internal/profiles"
	"github.com/adamkadaban/slips-tui/internal/settings"
	"github.com/adamkadaban/slips-tui/internal/state"
	"github.com/adamkadaban/slips-tui/internal/store"
	"github.com/adamkadaban/slips-tui/internal/theme"
	root "github.com/adamkadaban/slips-tui/internal/ui/root"
)

// Options control how the application is executed. Non-empty fields
// override the config file.
type Options struct {
	ConfigPath    string
	Theme         string
	RedisAddr     string
	CountriesFile string
	GeoIPDatabase string
	LogFile       string
}

// Run loads configuration, discovers profiles, and starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	configPath, cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	table, err := geo.LoadTable(cfg.CountriesFile)
	if err != nil {
		return fmt.Errorf("load countries: %w", err)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "slips-tui")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var locator geo.CountryLocator
	if cfg.GeoIPDatabase != "" {
		db, err := geo.OpenGeoIP(cfg.GeoIPDatabase)
		if err != nil {
			log.Printf("[geo] country fallback disabled: %v", err)
		} else {
			defer db.Close()
			locator = db
		}
	}

	client := store.NewRedis(store.Options{
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Timeout:  cfg.Redis.Timeout(),
	})
	defer client.Close()

	palette := theme.New(theme.Options{Override: opts.Theme, Preferred: cfg.Theme})
	st := state.NewStore()
	km := keymap.DefaultGlobal()

	runnerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	rootModel := root.New(st, root.Options{
		Context:  runnerCtx,
		Theme:    palette,
		KeyMap:   &km,
		Profiles: profiles.NewLoader(client),
		Markers:  geo.NewResolver(client, table, locator),
		Settings: settings.NewManager(configPath, cfg),
	})

	prog := tea.NewProgram(rootModel, tea.WithAltScreen(), tea.WithContext(runnerCtx))

	group, groupCtx := errgroup.WithContext(runnerCtx)
	group.Go(func() error {
		if err := client.Ping(groupCtx); err != nil {
			log.Printf("[store] %v", err)
			st.SetTreeFailed(err.Error())
			return nil
		}
		buildTree(groupCtx, profiles.NewBuilder(client), st)
		return nil
	})
	group.Go(func() error {
		defer cancel()
		_, err := prog.Run()
		return err
	})

	if err := group.Wait(); err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// resolveConfig loads the config file, applies flag overrides, and
// validates the result.
func resolveConfig(opts Options) (string, config.Config, error) {
	configPath, err := config.ResolvePath(opts.ConfigPath)
	if err != nil {
		return "", config.Config{}, fmt.Errorf("resolve config: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if opts.RedisAddr != "" {
		cfg.Redis.Address = opts.RedisAddr
	}
	if opts.CountriesFile != "" {
		cfg.CountriesFile = opts.CountriesFile
	}
	if opts.GeoIPDatabase != "" {
		cfg.GeoIPDatabase = opts.GeoIPDatabase
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}

	if err := config.Validate(cfg); err != nil {
		return "", config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return configPath, cfg, nil
}

// buildTree publishes the discovered tree, or the failure, to st.
func buildTree(ctx context.Context, builder *profiles.Builder, st *state.Store) {
	tree, err := builder.Build(ctx)
	if err != nil {
		log.Printf("[tree] %v", err)
		st.SetTreeFailed(err.Error())
		return
	}
	log.Printf("[tree] discovered %d hosts", len(tree.Hosts()))
	st.SetTree(tree)
}
