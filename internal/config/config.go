// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Layout  LayoutConfig  `toml:"layout"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// ServerConfig holds REST API settings.
type ServerConfig struct {
	Addr               string   `toml:"addr"`                  // e.g., "127.0.0.1:8000"
	AllowedOrigins     []string `toml:"allowed_origins"`       // CORS origins
	RateLimitPerMinute int      `toml:"rate_limit_per_minute"` // per client IP, 0 disables
	RateBurst          int      `toml:"rate_burst"`
	ShutdownTimeout    Duration `toml:"shutdown_timeout"` // e.g., "5s"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// LayoutConfig holds day view scale and new-appointment defaults.
type LayoutConfig struct {
	HourHeight      float64  `toml:"hour_height"`      // pixels per hour for the JSON day view
	LinesPerHour    int      `toml:"lines_per_hour"`   // terminal lines per hour for the TUI
	DefaultStart    string   `toml:"default_start"`    // e.g., "08:00"
	DefaultDuration Duration `toml:"default_duration"` // e.g., "1h"
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "console" or "json"
}

// Duration is a time.Duration written as a Go duration string in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:               "127.0.0.1:8000",
			AllowedOrigins:     []string{"http://localhost:5173"},
			RateLimitPerMinute: 600,
			RateBurst:          50,
			ShutdownTimeout:    Duration{5 * time.Second},
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		Layout: LayoutConfig{
			HourHeight:      80,
			LinesPerHour:    2,
			DefaultStart:    "08:00",
			DefaultDuration: Duration{time.Hour},
		},
		UI: UIConfig{
			Theme: "frappe",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "dayview.db"
	}
	return filepath.Join(home, ".local", "share", "dayview", "dayview.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "dayview", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	// Server overrides
	if v := os.Getenv("DAYVIEW_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DAYVIEW_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("DAYVIEW_RATE_LIMIT_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DAYVIEW_RATE_LIMIT_PER_MINUTE: %w", err)
		}
		cfg.Server.RateLimitPerMinute = n
	}

	// Storage overrides
	if v := os.Getenv("DAYVIEW_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	// Layout overrides
	if v := os.Getenv("DAYVIEW_HOUR_HEIGHT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("DAYVIEW_HOUR_HEIGHT: %w", err)
		}
		cfg.Layout.HourHeight = f
	}
	if v := os.Getenv("DAYVIEW_DEFAULT_START"); v != "" {
		cfg.Layout.DefaultStart = v
	}

	// UI overrides
	if v := os.Getenv("DAYVIEW_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}

	// Log overrides
	if v := os.Getenv("DAYVIEW_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("DAYVIEW_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("addr must be set")
	}
	if c.Server.RateLimitPerMinute < 0 {
		return errors.New("rate_limit_per_minute must not be negative")
	}
	if c.Server.RateLimitPerMinute > 0 && c.Server.RateBurst < 1 {
		return errors.New("rate_burst must be at least 1 when rate limiting is enabled")
	}
	if c.Server.ShutdownTimeout.Duration <= 0 {
		return errors.New("shutdown_timeout must be positive")
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}

	if h := c.Layout.HourHeight; !(h > 0) || math.IsInf(24*h, 0) {
		return errors.New("hour_height must be a positive finite number")
	}
	if c.Layout.LinesPerHour < 1 || c.Layout.LinesPerHour > 12 {
		return errors.New("lines_per_hour must be between 1 and 12")
	}
	if err := validateTime(c.Layout.DefaultStart, "default_start"); err != nil {
		return err
	}
	if d := c.Layout.DefaultDuration.Duration; d <= 0 || d > 24*time.Hour {
		return errors.New("default_duration must be between 0 and 24h")
	}

	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("unknown theme: %s", c.UI.Theme)
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log format must be 'console' or 'json', got %q", c.Log.Format)
	}
	return nil
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	hour := t[0:2]
	min := t[3:5]
	if !isDigits(hour) || !isDigits(min) || hour > "23" || min > "59" {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

var validThemes = map[string]bool{
	"mocha":     true,
	"macchiato": true,
	"frappe":    true,
	"latte":     true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
