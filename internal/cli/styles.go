package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	premium lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		value:   r.NewStyle().Foreground(lipgloss.Color("7")),
		premium: r.NewStyle().Foreground(lipgloss.Color("11")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
