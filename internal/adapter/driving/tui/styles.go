package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	subtleStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	hintStyle     = lipgloss.NewStyle().Foreground(colorOverlay0)
	nameStyle     = lipgloss.NewStyle().Foreground(colorText)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	enteringStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
	achievedStyle = lipgloss.NewStyle().Foreground(colorGreen)
	desiredStyle  = lipgloss.NewStyle().Foreground(colorYellow)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(1, 2)
)
