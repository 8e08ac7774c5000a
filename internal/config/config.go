package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/railwatch/railwatch-cli/internal/api"
)

// Duration is a time.Duration read from strings like "800ms" or "1.5s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("duration must not be negative: %s", text)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds user preferences read from config.toml
type Config struct {
	Color          string   `toml:"color"`
	NoCache        bool     `toml:"no_cache"`
	CacheTTL       Duration `toml:"cache_ttl"`
	LookupLatency  Duration `toml:"lookup_latency"`
	SummaryLatency Duration `toml:"summary_latency"`
	LogFile        string   `toml:"log_file"`
	Debug          bool     `toml:"debug"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Color:          "auto",
		CacheTTL:       Duration{api.DefaultCacheTTL},
		LookupLatency:  Duration{api.DefaultLookupLatency},
		SummaryLatency: Duration{api.DefaultSummaryLatency},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/railwatch/config.toml or ~/.config/railwatch/config.toml
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "railwatch", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "railwatch", "config.toml")
}

// Load reads path over the defaults. When optional is true a missing file is
// not an error.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	if c.CacheTTL.Duration <= 0 {
		return errors.New("cache_ttl must be positive")
	}
	return nil
}
