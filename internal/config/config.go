// Package config provides configuration management for mdd.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the corresponding field is empty.
const (
	DefaultWatchDebounce = 200 * time.Millisecond
	DefaultCacheTTL      = 10 * time.Minute
)

// Tooltip id modes.
const (
	TipIDsUUID = "uuid"
	TipIDsNone = "none"
)

// EnvVars lists every environment variable LoadFromEnv reads.
var EnvVars = []string{
	"MDD_OUTPUT_FORMAT", "MDD_STANDALONE", "MDD_DISABLE_GFM", "MDD_UNSAFE_HTML",
	"MDD_TIP_IDS", "MDD_WATCH_DEBOUNCE", "MDD_CACHE_TTL", "MDD_NO_COLOR", "NO_COLOR",
}

// Config holds the mdd configuration.
type Config struct {
	OutputFormat  string `yaml:"output_format,omitempty"`
	Standalone    bool   `yaml:"standalone,omitempty"`
	DisableGFM    bool   `yaml:"disable_gfm,omitempty"`
	UnsafeHTML    bool   `yaml:"unsafe_html,omitempty"`
	TipIDs        string `yaml:"tip_ids,omitempty"`
	WatchDebounce string `yaml:"watch_debounce,omitempty"`
	CacheTTL      string `yaml:"cache_ttl,omitempty"`
	NoColor       bool   `yaml:"no_color,omitempty"`
}

// Validate checks that every set field holds an accepted value.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "", "table", "json", "plain":
	default:
		return fmt.Errorf("output_format must be one of table, json, plain (got %q)", c.OutputFormat)
	}

	switch c.TipIDs {
	case "", TipIDsUUID, TipIDsNone:
	default:
		return fmt.Errorf("tip_ids must be %q or %q (got %q)", TipIDsUUID, TipIDsNone, c.TipIDs)
	}

	if c.WatchDebounce != "" {
		d, err := time.ParseDuration(c.WatchDebounce)
		if err != nil {
			return fmt.Errorf("watch_debounce: %w", err)
		}
		if d <= 0 {
			return errors.New("watch_debounce must be positive")
		}
	}

	if c.CacheTTL != "" {
		if _, err := time.ParseDuration(c.CacheTTL); err != nil {
			return fmt.Errorf("cache_ttl: %w", err)
		}
	}

	return nil
}

// Debounce returns the watch debounce interval, falling back to the default
// when unset or invalid.
func (c *Config) Debounce() time.Duration {
	if d, err := time.ParseDuration(c.WatchDebounce); err == nil && d > 0 {
		return d
	}
	return DefaultWatchDebounce
}

// CacheExpiration returns the render cache TTL. A negative value disables
// expiry; unset or invalid values use the default.
func (c *Config) CacheExpiration() time.Duration {
	if d, err := time.ParseDuration(c.CacheTTL); err == nil {
		return d
	}
	return DefaultCacheTTL
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if format := os.Getenv("MDD_OUTPUT_FORMAT"); format != "" {
		c.OutputFormat = format
	}
	if ids := os.Getenv("MDD_TIP_IDS"); ids != "" {
		c.TipIDs = ids
	}
	if debounce := os.Getenv("MDD_WATCH_DEBOUNCE"); debounce != "" {
		c.WatchDebounce = debounce
	}
	if ttl := os.Getenv("MDD_CACHE_TTL"); ttl != "" {
		c.CacheTTL = ttl
	}
	loadBool("MDD_STANDALONE", &c.Standalone)
	loadBool("MDD_DISABLE_GFM", &c.DisableGFM)
	loadBool("MDD_UNSAFE_HTML", &c.UnsafeHTML)

	if v := getEnvWithFallback("MDD_NO_COLOR", "NO_COLOR"); v != "" {
		// NO_COLOR disables color whenever it is present, whatever its value.
		b, err := strconv.ParseBool(v)
		c.NoColor = err != nil || b
	}
}

// loadBool overrides *dst when the variable holds a parseable boolean.
func loadBool(name string, dst *bool) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil {
		*dst = b
	}
}

// getEnvWithFallback returns the value of the primary env var, or the fallback if primary is empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mdd", "config.yml")
	}

	// Fall back to ~/.config/mdd/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".mdd", "config.yml")
	}

	return filepath.Join(home, ".config", "mdd", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
