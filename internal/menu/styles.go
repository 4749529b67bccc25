package menu

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Green   = lipgloss.Color("#00FF00")
	Red     = lipgloss.Color("#FF5555")
	Cyan    = lipgloss.Color("#00FFFF")
	Amber   = lipgloss.Color("#FFB000")
	DimGray = lipgloss.Color("#777777")
)

type styles struct {
	title   lipgloss.Style
	option  lipgloss.Style
	index   lipgloss.Style
	prompt  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

// newStyles binds the styles to w, so colour is only emitted when w is a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Foreground(Green).Bold(true),
		option:  r.NewStyle().Foreground(Cyan),
		index:   r.NewStyle().Foreground(DimGray),
		prompt:  r.NewStyle().Foreground(Amber),
		success: r.NewStyle().Foreground(Green),
		warning: r.NewStyle().Foreground(Amber),
		failure: r.NewStyle().Foreground(Red).Bold(true),
	}
}
