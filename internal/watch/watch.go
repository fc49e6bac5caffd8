// Package watch provides a live Bubbletea preview of the detected task.
package watch

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/moai-adk/moai-statusline/internal/task"
)

// DefaultInterval is how often the preview polls the detector.
const DefaultInterval = 250 * time.Millisecond

// Source yields the active task. *task.Detector satisfies it.
type Source interface {
	Detect() task.Task
	Invalidate()
}

// Formatter turns a task into the segment text.
type Formatter interface {
	Text(t task.Task) string
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// KeyBindings defines the preview's keyboard shortcuts.
type KeyBindings struct {
	Quit    key.Binding
	Refresh key.Binding
}

// DefaultKeyBindings returns the default key bindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

type tickMsg time.Time

// Model is the Bubbletea model for the preview.
type Model struct {
	source   Source
	format   Formatter
	interval time.Duration
	label    string

	spinner spinner.Model
	keys    KeyBindings

	current   task.Task
	polls     int
	changes   int
	updatedAt time.Time
}

// New creates a preview model. label is shown in the footer (usually the
// session-state path).
func New(src Source, f Formatter, interval time.Duration, label string) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return Model{
		source:   src,
		format:   f,
		interval: interval,
		label:    label,
		spinner:  s,
		keys:     DefaultKeyBindings(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.poll(), m.spinner.Tick)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) poll() tea.Cmd {
	return func() tea.Msg { return tickMsg(time.Now()) }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.source.Invalidate()
			m.refresh(time.Now())
			return m, nil
		}

	case tickMsg:
		m.refresh(time.Time(msg))
		return m, m.tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) refresh(now time.Time) {
	t := m.source.Detect()
	m.polls++
	if m.polls == 1 || !t.Equal(m.current) {
		if m.polls > 1 {
			m.changes++
			slog.Debug("watch: task changed",
				"command", t.CommandOr(""),
				"spec_id", t.SpecIDOr(""),
				"stage", t.StageOr(""),
			)
		}
		m.current = t
		m.updatedAt = now
	}
}

// Current returns the most recently detected task.
func (m Model) Current() task.Task { return m.current }

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("moai-statusline"))
	b.WriteString("\n\n")

	if seg := m.format.Text(m.current); m.current.Active() && seg != "" {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(seg)
	} else {
		b.WriteString(mutedStyle.Render("no active task"))
	}
	b.WriteString("\n\n")

	footer := fmt.Sprintf("%s · polls %d · changes %d", m.label, m.polls, m.changes)
	if !m.updatedAt.IsZero() {
		footer += " · since " + m.updatedAt.Format("15:04:05")
	}
	b.WriteString(mutedStyle.Render(footer))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(helpLine(m.keys.Quit, m.keys.Refresh)))
	b.WriteString("\n")
	return b.String()
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Run starts the preview and blocks until the user quits.
func Run(src Source, f Formatter, interval time.Duration, label string) error {
	_, err := tea.NewProgram(New(src, f, interval, label)).Run()
	return err
}
