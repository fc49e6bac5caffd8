// Package logging provides slog-based logging for moai-statusline.
//
// Stdout belongs to the statusline segment, so logs only ever go to a file
// (or are discarded).
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/moai-adk/moai-statusline/internal/paths"
)

// ParseLevel converts a log level string to slog.Level.
// Valid values: "debug", "info", "warn", "error" (case-insensitive).
// Returns slog.LevelInfo for unrecognized values.
func ParseLevel(level string) slog.Level {
	lvl, _ := LookupLevel(level)
	return lvl
}

// LookupLevel is ParseLevel that also reports whether the name was recognized.
// The empty string is recognized as info.
func LookupLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup builds a JSON logger writing to path and installs it as the slog
// default. If path is empty, uses paths.LogPath().
// The file and its directory are created on the first record, so a run
// that logs nothing leaves the filesystem untouched.
// Returns the logger and a cleanup function to close the log file.
func Setup(path string, level slog.Level) (*slog.Logger, func()) {
	if path == "" {
		path = paths.LogPath()
	}

	f := &lazyFile{path: path}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return logger, f.Close
}

// lazyFile opens its file in append mode on the first Write.
type lazyFile struct {
	path string

	mu  sync.Mutex
	f   *os.File
	err error
}

func (l *lazyFile) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil && l.err == nil {
		l.f, l.err = openLogFile(l.path)
	}
	if l.err != nil {
		// Logging must never break the caller.
		return len(p), nil
	}
	return l.f.Write(p)
}

// Close closes the file if it was opened.
func (l *lazyFile) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f != nil {
		l.f.Close()
		l.f = nil
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
}

// SetupTest configures logging for tests (writes to provided writer, text format).
func SetupTest(w io.Writer) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)
	return logger
}
