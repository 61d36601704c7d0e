package output

import "github.com/charmbracelet/lipgloss"

// Palette colors shared by text output and the terminal UI.
const (
	ColorInside  = lipgloss.Color("#00ff00")
	ColorOutside = lipgloss.Color("#ff0000")
	ColorCircle  = lipgloss.Color("#0000ff")
	colorMuted   = lipgloss.Color("#808080")
	colorTitle   = lipgloss.Color("#5f87ff")
)

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds styles bound to a lipgloss renderer.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		Header:  r.NewStyle().Bold(true).Underline(true),
		Muted:   r.NewStyle().Foreground(colorMuted),
		Success: r.NewStyle().Foreground(ColorInside),
		Error:   r.NewStyle().Bold(true).Foreground(ColorOutside),
	}
}
