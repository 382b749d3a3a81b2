package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the visitor terminal. Dark-terminal defaults; the
// semantic colors mirror the classic green-on-black portfolio look.
var (
	colorPrompt  = lipgloss.Color("#8BC34A") // lime green
	colorInfo    = lipgloss.Color("#9e9e9e")
	colorError   = lipgloss.Color("#e53935")
	colorSuccess = lipgloss.Color("#8BC34A")
	colorTitle   = lipgloss.Color("#2196F3")
	colorMuted   = lipgloss.Color("#616161")
)

// Styles holds the styled components of the terminal view.
type Styles struct {
	Prompt  lipgloss.Style
	Command lipgloss.Style
	Info    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Bullet  lipgloss.Style
}

// DefaultStyles returns the terminal style set.
func DefaultStyles() Styles {
	return Styles{
		Prompt:  lipgloss.NewStyle().Foreground(colorPrompt).Bold(true),
		Command: lipgloss.NewStyle().Bold(true),
		Info:    lipgloss.NewStyle().Foreground(colorInfo),
		Error:   lipgloss.NewStyle().Foreground(colorError),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Title:   lipgloss.NewStyle().Foreground(colorTitle).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Bullet:  lipgloss.NewStyle().Foreground(colorPrompt),
	}
}
