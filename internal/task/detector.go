package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/moai-adk/moai-statusline/internal/paths"
)

// DefaultTTL is how long a detected task is served from cache.
const DefaultTTL = time.Second

// ErrNotObject is returned when the session state or its active_task
// entry is not a JSON object.
var ErrNotObject = errors.New("not a JSON object")

// Clock returns the current time. Tests inject a fake one.
type Clock func() time.Time

// Detector reads the session-state file and memoizes the result for a TTL.
// It is safe for concurrent use.
type Detector struct {
	path string
	ttl  time.Duration
	now  Clock
	log  *slog.Logger

	mu         sync.Mutex
	cached     *Task
	capturedAt time.Time
}

// Option configures a Detector.
type Option func(*Detector)

// WithPath overrides the session-state file location.
func WithPath(path string) Option {
	return func(d *Detector) { d.path = path }
}

// WithTTL sets the cache lifetime. Non-positive values select DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(d *Detector) {
		if ttl > 0 {
			d.ttl = ttl
		}
	}
}

// WithClock sets the time source used for cache expiry.
func WithClock(c Clock) Option {
	return func(d *Detector) {
		if c != nil {
			d.now = c
		}
	}
}

// WithLogger sets the sink for swallowed read errors.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDetector creates a detector. Without WithPath it reads
// paths.SessionStatePath().
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		ttl: DefaultTTL,
		now: time.Now,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.path == "" {
		p, err := paths.SessionStatePath()
		if err != nil {
			d.log.Debug("task: resolve session state path", "error", err)
		}
		d.path = p
	}
	return d
}

// Path returns the session-state file the detector reads.
func (d *Detector) Path() string { return d.path }

// TTL returns the cache lifetime.
func (d *Detector) TTL() time.Duration { return d.ttl }

// Detect returns the active task. It never fails: every read or decode
// error yields the zero Task. A cached value younger than the TTL is
// returned without touching the disk. The returned Task is a copy and
// may be modified freely.
func (d *Detector) Detect() Task {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if d.cached != nil {
		age := now.Sub(d.capturedAt)
		// A clock that moved backwards expires the entry.
		if age >= 0 && age < d.ttl {
			return d.cached.Clone()
		}
	}

	t, err := d.read()
	if err != nil {
		d.log.Debug("task: read session state", "path", d.path, "error", err)
		t = Task{}
	}

	c := t.Clone()
	d.cached = &c
	d.capturedAt = now
	return t
}

// Invalidate drops the cached task so the next Detect re-reads the file.
func (d *Detector) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cached = nil
	d.capturedAt = time.Time{}
}

func (d *Detector) read() (Task, error) {
	if d.path == "" {
		return Task{}, errors.New("no session state path")
	}
	return ReadSessionState(d.path)
}

// sessionState is the subset of last-session-state.json the detector uses.
type sessionState struct {
	ActiveTask json.RawMessage `json:"active_task"`
}

// ReadSessionState reads a session-state file and extracts its active task.
// A missing file, or a missing or null active_task, yields the zero Task and
// a nil error.
func ReadSessionState(path string) (Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Task{}, nil
		}
		return Task{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseSessionState(data)
}

// ParseSessionState decodes session-state JSON. Invalid UTF-8 inside a
// string decodes to one U+FFFD per bad byte; invalid bytes elsewhere make
// the document undecodable.
func ParseSessionState(data []byte) (Task, error) {
	var st sessionState
	if err := json.Unmarshal(data, &st); err != nil {
		return Task{}, fmt.Errorf("decode session state: %w", err)
	}
	if isNull(st.ActiveTask) {
		return Task{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(st.ActiveTask, &fields); err != nil {
		return Task{}, fmt.Errorf("active_task: %w", ErrNotObject)
	}

	return Task{
		Command: stringField(fields["command"]),
		SpecID:  stringField(fields["spec_id"]),
		Stage:   stringField(fields["stage"]),
	}, nil
}

// stringField returns the decoded string, or nil for absent, null or
// non-string values.
func stringField(raw json.RawMessage) *string {
	if isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || strings.TrimSpace(string(raw)) == "null"
}
