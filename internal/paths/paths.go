// Package paths provides a single source of truth for moai-statusline file paths.
// All path helpers honor environment variable overrides for isolated testing.
//
// Path resolution precedence:
//  1. Specific env vars (MOAI_SESSION_STATE) take highest priority
//  2. MOAI_DIR env var sets the base directory (derives memory/config/logs)
//  3. Default behavior (~/.moai, ~/.config/moai-statusline) when no env vars are set
package paths

import (
	"os"
	"path/filepath"
)

// Environment variable names for path overrides.
const (
	// EnvMoaiDir is the base directory override (e.g., /tmp/moai-test).
	// When set, session state, config, and log paths derive from this directory.
	EnvMoaiDir = "MOAI_DIR"

	// EnvSessionState overrides the session-state file path directly.
	EnvSessionState = "MOAI_SESSION_STATE"
)

// SessionStateFile is the session-state file name inside the memory directory.
const SessionStateFile = "last-session-state.json"

// BaseDir returns the moai base directory (~/.moai by default).
// Honors MOAI_DIR environment variable.
func BaseDir() (string, error) {
	if dir := os.Getenv(EnvMoaiDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".moai"), nil
}

// MemoryDir returns the directory holding session memory (~/.moai/memory).
func MemoryDir() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "memory"), nil
}

// SessionStatePath returns the session-state file path.
// Precedence: MOAI_SESSION_STATE > MOAI_DIR/memory/... > ~/.moai/memory/...
func SessionStatePath() (string, error) {
	if path := os.Getenv(EnvSessionState); path != "" {
		return path, nil
	}
	dir, err := MemoryDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SessionStateFile), nil
}

// ConfigDir returns the config directory (~/.config/moai-statusline by default).
// When MOAI_DIR is set, returns MOAI_DIR/config instead.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvMoaiDir); dir != "" {
		return filepath.Join(dir, "config"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "moai-statusline"), nil
}

// ConfigPath returns the path to the statusline config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the log file path (~/.moai/logs/statusline.log by default).
// Falls back to the temp dir when no home directory is available.
func LogPath() string {
	base, err := BaseDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "moai-statusline.log")
	}
	return filepath.Join(base, "logs", "statusline.log")
}
