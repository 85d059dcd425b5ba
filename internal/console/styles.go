package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for the table display
type Styles struct {
	Header    lipgloss.Style
	Label     lipgloss.Style
	Current   lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Hidden    lipgloss.Style
	Score     lipgloss.Style
	Bust      lipgloss.Style
	Win       lipgloss.Style
	Lose      lipgloss.Style
	Draw      lipgloss.Style
	Prompt    lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles creates the styles for out. With noColor, or when out is not a
// terminal, text is rendered without escape sequences.
func NewStyles(out io.Writer, noColor bool) *Styles {
	r := lipgloss.NewRenderer(out)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Current: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Hidden: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Score: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Bust: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Lose: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Draw: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
	}
}
