// Package task detects the active MoAI task for statusline display.
package task

// Task is the command/spec/stage triple reported to the statusline.
// Each field is independently optional; nil means unset.
type Task struct {
	Command *string `json:"command"`
	SpecID  *string `json:"spec_id"`
	Stage   *string `json:"stage"`
}

// Active reports whether any field of the task is set.
func (t Task) Active() bool {
	return t.Command != nil || t.SpecID != nil || t.Stage != nil
}

// Equal reports whether two tasks carry the same values.
func (t Task) Equal(o Task) bool {
	return equalPtr(t.Command, o.Command) &&
		equalPtr(t.SpecID, o.SpecID) &&
		equalPtr(t.Stage, o.Stage)
}

// Clone returns a copy of t that shares no string pointers with it.
func (t Task) Clone() Task {
	return Task{
		Command: clonePtr(t.Command),
		SpecID:  clonePtr(t.SpecID),
		Stage:   clonePtr(t.Stage),
	}
}

// CommandOr returns the command, or def when unset.
func (t Task) CommandOr(def string) string { return deref(t.Command, def) }

// SpecIDOr returns the spec ID, or def when unset.
func (t Task) SpecIDOr(def string) string { return deref(t.SpecID, def) }

// StageOr returns the stage, or def when unset.
func (t Task) StageOr(def string) string { return deref(t.Stage, def) }

func deref(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
