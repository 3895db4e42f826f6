package terminal

import "github.com/charmbracelet/lipgloss"

type styles struct {
	name     lipgloss.Style
	jobTitle lipgloss.Style
	heading  lipgloss.Style
	title    lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
}

func newStyles(lr *lipgloss.Renderer, accent string) styles {
	color := lipgloss.Color(accent)
	return styles{
		name:     lr.NewStyle().Bold(true).Foreground(color),
		jobTitle: lr.NewStyle().Italic(true),
		heading:  lr.NewStyle().Bold(true).Foreground(color),
		title:    lr.NewStyle().Bold(true),
		accent:   lr.NewStyle().Foreground(color),
		muted:    lr.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
