package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles bound to one lipgloss renderer.
type Styles struct {
	Title   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Code    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(HeadingColor).
			Bold(true),
		Error: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(WarningColor),
		Muted: r.NewStyle().
			Foreground(MutedColor),
		Code: r.NewStyle().
			Foreground(PrimaryColor),
	}
}
