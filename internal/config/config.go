package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "prodverse"

type Config struct {
	Player        PlayerConfig        `koanf:"player"`
	Catalog       CatalogConfig       `koanf:"catalog"`
	Log           LogConfig           `koanf:"log"`
	State         StateConfig         `koanf:"state"`
	Notifications NotificationsConfig `koanf:"notifications"`
	UI            UIConfig            `koanf:"ui"`
}

// PlayerConfig holds playback settings.
type PlayerConfig struct {
	DefaultVolume  *float64 `koanf:"default_volume"`    // used when no volume is persisted (default: 0.7)
	TickIntervalMS int      `koanf:"tick_interval_ms"`  // position update cadence (default: 250)
	StallThreshold int      `koanf:"stall_threshold_s"` // seconds before a pending play is shown as stalled (default: 10)
}

// CatalogConfig selects where songs come from. The first non-empty
// source wins: url, then file, then dir.
type CatalogConfig struct {
	URL  string `koanf:"url"`  // songs API base, e.g. "https://prodverse.example"
	File string `koanf:"file"` // TOML catalog file, watched for changes
	Dir  string `koanf:"dir"`  // directory of audio files
}

// LogConfig holds log output settings.
type LogConfig struct {
	Path       string `koanf:"path"`
	Level      string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// StateConfig holds the session database location.
type StateConfig struct {
	DBPath string `koanf:"db_path"` // empty means the XDG data dir
}

// NotificationsConfig toggles desktop notifications.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// UIConfig holds display settings.
type UIConfig struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none" (default: "unicode")
}

// Load reads the default config files. Missing files are skipped.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order; later files override
// earlier ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Catalog.URL = strings.TrimSuffix(cfg.Catalog.URL, "/")
	cfg.Catalog.File = expandPath(cfg.Catalog.File)
	cfg.Catalog.Dir = expandPath(cfg.Catalog.Dir)
	cfg.Log.Path = expandPath(cfg.Log.Path)
	cfg.State.DBPath = expandPath(cfg.State.DBPath)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/prodverse/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DefaultVolume returns the configured default volume, clamped to 0-1.
func (c *Config) DefaultVolume() float64 {
	if c.Player.DefaultVolume == nil {
		return 0.7
	}
	return min(max(*c.Player.DefaultVolume, 0), 1)
}

// TickInterval returns how often the position is refreshed while playing.
func (c *Config) TickInterval() time.Duration {
	if c.Player.TickIntervalMS <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(c.Player.TickIntervalMS) * time.Millisecond
}

// StallThreshold returns how long a play request may stay unconfirmed
// before the UI reports it.
func (c *Config) StallThreshold() time.Duration {
	if c.Player.StallThreshold <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Player.StallThreshold) * time.Second
}

// NotificationsEnabled returns whether desktop notifications are on.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// IconStyle returns the icon set name for icons.Init.
func (c *Config) IconStyle() string {
	if c.UI.Icons == "" {
		return "unicode"
	}
	return c.UI.Icons
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	if cfg.Path == "" {
		cfg.Path = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 28
	}

	return cfg
}
