// Package render formats a detected task as a statusline segment.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/moai-adk/moai-statusline/internal/task"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, or yaml)", s)
	}
}

// Ellipsis is appended to text segments cut at MaxWidth.
const Ellipsis = "…"

// Options configures a Renderer.
type Options struct {
	Format Format
	// MaxWidth truncates text output to this many cells. 0 means unlimited.
	MaxWidth int
	// Color enables ANSI styling of text output.
	Color bool
	// Icon prefixes active text segments. Empty disables it.
	Icon string
}

// Renderer formats tasks. It holds its own lipgloss renderer so output is
// styled even when stdout is not a terminal (statuslines read from a pipe).
type Renderer struct {
	opts   Options
	styles styles
}

// New creates a Renderer writing styled text for w.
func New(w io.Writer, opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	lr := lipgloss.NewRenderer(w)
	if opts.Color {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{opts: opts, styles: newStyles(lr)}
}

// Render encodes t in the configured format. Text output for an inactive
// task is the empty string.
func (r *Renderer) Render(t task.Task) (string, error) {
	switch r.opts.Format {
	case FormatJSON:
		b, err := json.Marshal(newDocument(t))
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}
		return string(b), nil
	case FormatYAML:
		b, err := yaml.Marshal(newDocument(t))
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return strings.TrimRight(string(b), "\n"), nil
	default:
		return r.Text(t), nil
	}
}

// Text renders t as "<icon> <command> <spec_id> · <stage>", omitting unset
// or empty parts.
func (r *Renderer) Text(t task.Task) string {
	var head []string
	if c := t.CommandOr(""); c != "" {
		head = append(head, r.styles.command.Render(c))
	}
	if s := t.SpecIDOr(""); s != "" {
		head = append(head, r.styles.spec.Render(s))
	}

	parts := head
	if st := t.StageOr(""); st != "" {
		if len(head) > 0 {
			parts = append(parts, r.styles.sep.Render("·"))
		}
		parts = append(parts, r.styles.stage.Render(st))
	}
	if len(parts) == 0 {
		return ""
	}
	if r.opts.Icon != "" {
		parts = append([]string{r.opts.Icon}, parts...)
	}

	out := strings.Join(parts, " ")
	if r.opts.MaxWidth > 0 && lipgloss.Width(out) > r.opts.MaxWidth {
		out = truncate.StringWithTail(out, uint(r.opts.MaxWidth), Ellipsis)
	}
	return out
}

// document is the structured (json/yaml) form of a task.
type document struct {
	Command *string `json:"command" yaml:"command"`
	SpecID  *string `json:"spec_id" yaml:"spec_id"`
	Stage   *string `json:"stage" yaml:"stage"`
	Active  bool    `json:"active" yaml:"active"`
}

func newDocument(t task.Task) document {
	return document{
		Command: t.Command,
		SpecID:  t.SpecID,
		Stage:   t.Stage,
		Active:  t.Active(),
	}
}
