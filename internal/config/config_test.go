package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func boolp(b bool) *bool    { return &b }
func strp(s string) *string { return &s }

func TestLoadFromPath(t *testing.T) {
	t.Run("missing file returns nil", func(t *testing.T) {
		cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("LoadFromPath() error = %v", err)
		}
		if cfg != nil {
			t.Errorf("LoadFromPath() = %+v, want nil", cfg)
		}
	})

	t.Run("decodes all sections", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
log_level = "debug"
log_file = "/tmp/sl.log"

[detector]
cache_ttl = "250ms"
session_state = "/tmp/state.json"

[display]
format = "json"
max_width = 40
color = false
icon = ""
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadFromPath(path)
		if err != nil {
			t.Fatalf("LoadFromPath() error = %v", err)
		}
		if got := cfg.GetLogLevel(); got != "debug" {
			t.Errorf("GetLogLevel() = %q, want debug", got)
		}
		if got := cfg.GetLogFile(); got != "/tmp/sl.log" {
			t.Errorf("GetLogFile() = %q, want /tmp/sl.log", got)
		}
		if got := cfg.GetCacheTTL(); got != 250*time.Millisecond {
			t.Errorf("GetCacheTTL() = %v, want 250ms", got)
		}
		if got := cfg.GetSessionState(); got != "/tmp/state.json" {
			t.Errorf("GetSessionState() = %q", got)
		}
		if got := cfg.GetFormat(); got != "json" {
			t.Errorf("GetFormat() = %q, want json", got)
		}
		if got := cfg.GetMaxWidth(); got != 40 {
			t.Errorf("GetMaxWidth() = %d, want 40", got)
		}
		if cfg.GetColor() {
			t.Error("GetColor() = true, want false")
		}
		if got := cfg.GetIcon(); got != "" {
			t.Errorf("GetIcon() = %q, want empty", got)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("malformed toml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("log_level = "), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFromPath(path); err == nil {
			t.Error("LoadFromPath() error = nil, want decode error")
		}
	})
}

func TestLoadHonorsMoaiDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MOAI_DIR", dir)
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config", "config.toml"), []byte(`log_level = "warn"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Errorf("GetLogLevel() = %q, want warn", got)
	}
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{"nil config", nil},
		{"empty config", &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.config
			if got := c.GetLogLevel(); got != DefaultLogLevel {
				t.Errorf("GetLogLevel() = %q, want %q", got, DefaultLogLevel)
			}
			if got := c.GetCacheTTL(); got != DefaultCacheTTL {
				t.Errorf("GetCacheTTL() = %v, want %v", got, DefaultCacheTTL)
			}
			if got := c.GetFormat(); got != DefaultFormat {
				t.Errorf("GetFormat() = %q, want %q", got, DefaultFormat)
			}
			if got := c.GetMaxWidth(); got != 0 {
				t.Errorf("GetMaxWidth() = %d, want 0", got)
			}
			if !c.GetColor() {
				t.Error("GetColor() = false, want true")
			}
			if got := c.GetIcon(); got != DefaultIcon {
				t.Errorf("GetIcon() = %q, want %q", got, DefaultIcon)
			}
			if got := c.GetSessionState(); got != "" {
				t.Errorf("GetSessionState() = %q, want empty", got)
			}
		})
	}
}

func TestGetCacheTTLInvalid(t *testing.T) {
	tests := []string{"soon", "0s", "-1s"}
	for _, ttl := range tests {
		t.Run(ttl, func(t *testing.T) {
			c := &Config{Detector: DetectorConfig{CacheTTL: ttl}}
			if got := c.GetCacheTTL(); got != DefaultCacheTTL {
				t.Errorf("GetCacheTTL() = %v, want %v", got, DefaultCacheTTL)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr []error
	}{
		{"nil", nil, nil},
		{"empty", &Config{}, nil},
		{"valid", &Config{
			LogLevel: "DEBUG",
			Detector: DetectorConfig{CacheTTL: "2s"},
			Display:  DisplayConfig{Format: "yaml", MaxWidth: 10, Color: boolp(true), Icon: strp(">")},
		}, nil},
		{"bad log level", &Config{LogLevel: "trace"}, []error{ErrInvalidLogLevel}},
		{"bad ttl", &Config{Detector: DetectorConfig{CacheTTL: "later"}}, []error{ErrInvalidCacheTTL}},
		{"zero ttl", &Config{Detector: DetectorConfig{CacheTTL: "0s"}}, []error{ErrInvalidCacheTTL}},
		{"json format", &Config{Display: DisplayConfig{Format: "json"}}, nil},
		{"text format", &Config{Display: DisplayConfig{Format: "text"}}, nil},
		{"bad format", &Config{Display: DisplayConfig{Format: "xml"}}, []error{ErrInvalidFormat}},
		{"negative width", &Config{Display: DisplayConfig{MaxWidth: -1}}, []error{ErrInvalidMaxWidth}},
		{"multiple", &Config{
			LogLevel: "loud",
			Display:  DisplayConfig{Format: "csv"},
		}, []error{ErrInvalidLogLevel, ErrInvalidFormat}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want %v", tt.wantErr)
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("Validate() error = %v, want to wrap %v", err, want)
				}
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "display.format", Value: "xml", Message: "bad"}
	if got, want := err.Error(), `display.format: bad (got "xml")`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	err = &ValidationError{Field: "x", Message: "bad"}
	if got, want := err.Error(), "x: bad"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
