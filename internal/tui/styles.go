package tui

import (
	"meetingkeeper/internal/core/timekeeper"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for the TUI
type Styles struct {
	Title   lipgloss.Style
	Readout lipgloss.Style
	Phase   lipgloss.Style
	Message lipgloss.Style

	ProgressEmpty lipgloss.Style

	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	Footer    lipgloss.Style
	FooterKey lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Readout: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Phase:   lipgloss.NewStyle().Bold(true),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true),

		ProgressEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),

		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
		FooterKey: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}

// TerminalColor maps a color token to an ANSI 256 color.
func TerminalColor(token timekeeper.Color) lipgloss.Color {
	switch token {
	case timekeeper.ColorSky:
		return lipgloss.Color("39")
	case timekeeper.ColorGreen:
		return lipgloss.Color("42")
	case timekeeper.ColorYellow:
		return lipgloss.Color("220")
	case timekeeper.ColorOrange:
		return lipgloss.Color("208")
	case timekeeper.ColorRed:
		return lipgloss.Color("196")
	default:
		return lipgloss.Color("240")
	}
}

// Progress bar glyphs.
const (
	BlockFilled = "█"
	BlockEmpty  = "░"
)
