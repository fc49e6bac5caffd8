package render

import "github.com/charmbracelet/lipgloss"

var (
	commandColor = lipgloss.Color("#7C3AED") // Purple
	specColor    = lipgloss.Color("#10B981") // Green
	stageColor   = lipgloss.Color("#F59E0B") // Amber
	mutedColor   = lipgloss.Color("#6B7280") // Gray
)

type styles struct {
	command lipgloss.Style
	spec    lipgloss.Style
	stage   lipgloss.Style
	sep     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		command: r.NewStyle().Bold(true).Foreground(commandColor),
		spec:    r.NewStyle().Foreground(specColor),
		stage:   r.NewStyle().Foreground(stageColor),
		sep:     r.NewStyle().Foreground(mutedColor),
	}
}
