package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.Color("212")
	errorColor  = lipgloss.Color("196")
	mutedColor  = lipgloss.Color("240")
	echoColor   = lipgloss.Color("62")
)

// Styles groups the lipgloss styles used for one output stream.
type Styles struct {
	Echo    lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
	Current lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Border  lipgloss.Style
}

// NewStyles builds styles whose color profile matches output.
func NewStyles(output io.Writer) Styles {
	renderer := lipgloss.NewRenderer(output)
	return Styles{
		Echo:    renderer.NewStyle().Foreground(echoColor),
		Error:   renderer.NewStyle().Foreground(errorColor).Bold(true),
		Hint:    renderer.NewStyle().Foreground(mutedColor),
		Current: renderer.NewStyle().Foreground(accentColor).Bold(true),
		Header:  renderer.NewStyle().Bold(true).Padding(0, 1),
		Cell:    renderer.NewStyle().Padding(0, 1),
		Border:  renderer.NewStyle().Foreground(mutedColor),
	}
}
