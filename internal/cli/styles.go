// Package cli runs the pronunciation quiz in a terminal.
package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successColor = lipgloss.Color("#4ECDC4")
	warningColor = lipgloss.Color("#FFE66D")
	errorColor   = lipgloss.Color("#FF6B6B")
	subtleColor  = lipgloss.Color("#666666")
	titleColor   = lipgloss.Color("#95E1D3")
)

// styles are bound to the output's renderer so that plain writers get plain
// text.
type styles struct {
	title   lipgloss.Style
	word    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	subtle  lipgloss.Style
	prompt  lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(titleColor),
		word:    r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(successColor),
		warning: r.NewStyle().Foreground(warningColor),
		failure: r.NewStyle().Foreground(errorColor),
		subtle:  r.NewStyle().Foreground(subtleColor),
		prompt:  r.NewStyle().Bold(true),
	}
}
