// Package config loads the moai-statusline configuration file.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/moai-adk/moai-statusline/internal/paths"
)

// Defaults applied when a setting is absent.
const (
	DefaultLogLevel = "info"
	DefaultFormat   = "text"
	DefaultIcon     = "🗿"
	DefaultCacheTTL = time.Second
)

// Config represents the statusline configuration.
type Config struct {
	// LogLevel controls log verbosity ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`
	// LogFile overrides the log file location.
	LogFile string `toml:"log_file"`

	Detector DetectorConfig `toml:"detector"`
	Display  DisplayConfig  `toml:"display"`
}

// DetectorConfig configures task detection.
type DetectorConfig struct {
	// CacheTTL is a Go duration string (e.g., "1s", "250ms").
	CacheTTL string `toml:"cache_ttl"`
	// SessionState overrides the session-state file path.
	SessionState string `toml:"session_state"`
}

// DisplayConfig configures statusline output.
type DisplayConfig struct {
	Format   string  `toml:"format"`
	MaxWidth int     `toml:"max_width"`
	Color    *bool   `toml:"color"`
	Icon     *string `toml:"icon"`
}

// Load loads the config from paths.ConfigPath().
// Returns nil config and nil error if the file doesn't exist.
func Load() (*Config, error) {
	path, err := paths.ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads the config from a specific path.
// Returns nil config and nil error if the file doesn't exist.
func LoadFromPath(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// GetLogLevel returns the configured log level or the default.
func (c *Config) GetLogLevel() string {
	if c != nil && c.LogLevel != "" {
		return c.LogLevel
	}
	return DefaultLogLevel
}

// GetLogFile returns the configured log file or paths.LogPath().
func (c *Config) GetLogFile() string {
	if c != nil && c.LogFile != "" {
		return c.LogFile
	}
	return paths.LogPath()
}

// GetCacheTTL returns the detector cache TTL.
// Unset or invalid values return DefaultCacheTTL; Validate reports the latter.
func (c *Config) GetCacheTTL() time.Duration {
	if c == nil || c.Detector.CacheTTL == "" {
		return DefaultCacheTTL
	}
	d, err := time.ParseDuration(c.Detector.CacheTTL)
	if err != nil || d <= 0 {
		return DefaultCacheTTL
	}
	return d
}

// GetSessionState returns the session-state override, or "" for the default.
func (c *Config) GetSessionState() string {
	if c == nil {
		return ""
	}
	return c.Detector.SessionState
}

// GetFormat returns the output format or the default.
func (c *Config) GetFormat() string {
	if c != nil && c.Display.Format != "" {
		return c.Display.Format
	}
	return DefaultFormat
}

// GetMaxWidth returns the maximum segment width (0 means unlimited).
func (c *Config) GetMaxWidth() int {
	if c == nil || c.Display.MaxWidth < 0 {
		return 0
	}
	return c.Display.MaxWidth
}

// GetColor reports whether styled output is enabled.
func (c *Config) GetColor() bool {
	if c == nil || c.Display.Color == nil {
		return true
	}
	return *c.Display.Color
}

// GetIcon returns the segment icon. An explicitly empty icon disables it.
func (c *Config) GetIcon() string {
	if c == nil || c.Display.Icon == nil {
		return DefaultIcon
	}
	return *c.Display.Icon
}
