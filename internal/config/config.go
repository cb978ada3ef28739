package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

const (
	DefaultRedisAddress   = "127.0.0.1:6379"
	DefaultTimeoutSeconds = 5
)

// Config captures persisted user preferences and the store connection.
type Config struct {
	Theme         string `yaml:"theme"`
	Redis         Redis  `yaml:"redis"`
	CountriesFile string `yaml:"countries_file"`
	GeoIPDatabase string `yaml:"geoip_database"`
	LogFile       string `yaml:"log_file"`
}

// Redis holds the key-value store connection settings.
type Redis struct {
	Address        string `yaml:"address"`
	Password       string `yaml:"password"`
	DB             int    `yaml:"db"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the per-query deadline.
func (r Redis) Timeout() time.Duration {
	if r.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// Load reads configuration data from the provided path. If the file does not exist,
// a default configuration is returned without an error.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved, err := ResolvePath(path)
	if err != nil {
		return cfg, fmt.Errorf("resolve config path: %w", err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Theme = NormalizeTheme(cfg.Theme)
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = DefaultRedisAddress
	}

	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	resolved, err := ResolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Default returns a usable configuration when no file exists yet.
func Default() Config {
	return Config{
		Theme: ThemeAuto,
		Redis: Redis{
			Address:        DefaultRedisAddress,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// Validate rejects settings the application cannot start with.
func Validate(cfg Config) error {
	host, port, err := net.SplitHostPort(cfg.Redis.Address)
	if err != nil {
		return fmt.Errorf("redis address %q: %w", cfg.Redis.Address, err)
	}
	if strings.TrimSpace(host) == "" {
		return fmt.Errorf("redis address %q: missing host", cfg.Redis.Address)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("redis address %q: invalid port", cfg.Redis.Address)
	}
	if cfg.Redis.DB < 0 {
		return fmt.Errorf("redis db %d: must not be negative", cfg.Redis.DB)
	}
	if cfg.Redis.TimeoutSeconds < 0 {
		return fmt.Errorf("redis timeout %d: must not be negative", cfg.Redis.TimeoutSeconds)
	}
	return nil
}

// NormalizeTheme maps user input onto a known theme name.
func NormalizeTheme(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case ThemeDark:
		return ThemeDark
	case ThemeLight:
		return ThemeLight
	default:
		return ThemeAuto
	}
}

// DefaultPath returns the standard configuration path within the user's
// XDG config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "slips-tui", "config.yaml"), nil
}

// ResolvePath returns path, or the default location when path is empty.
func ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return DefaultPath()
}
