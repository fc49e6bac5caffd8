package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"debug lowercase", "debug", slog.LevelDebug},
		{"debug uppercase", "DEBUG", slog.LevelDebug},
		{"info lowercase", "info", slog.LevelInfo},
		{"warn mixed", "Warn", slog.LevelWarn},
		{"error lowercase", "error", slog.LevelError},
		{"empty string", "", slog.LevelInfo},
		{"invalid value", "invalid", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLookupLevel(t *testing.T) {
	if _, ok := LookupLevel("trace"); ok {
		t.Error("LookupLevel(trace) ok = true, want false")
	}
	if _, ok := LookupLevel(""); !ok {
		t.Error("LookupLevel(\"\") ok = false, want true")
	}
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "statusline.log")
	logger, cleanup := Setup(path, slog.LevelDebug)
	logger.Debug("hello", "key", "value")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, data)
	}
	if rec["msg"] != "hello" || rec["key"] != "value" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestSetupOpensFileLazily(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	path := filepath.Join(dir, "statusline.log")
	logger, cleanup := Setup(path, slog.LevelInfo)
	defer cleanup()

	logger.Debug("below level")
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("log dir exists before any record was written (stat err = %v)", err)
	}

	logger.Info("written")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created after first record: %v", err)
	}
}

func TestSetupUnwritablePath(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	// A regular file where the log directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	logger, cleanup := Setup(filepath.Join(blocker, "logs", "statusline.log"), slog.LevelDebug)
	defer cleanup()
	logger.Error("dropped")
}

func TestSetupTest(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	SetupTest(&buf)
	slog.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected debug record in output, got %q", buf.String())
	}
}
