package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/wahlandcase/autocommit/internal/models"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorBlue     = lipgloss.Color("#5555FF")
	ColorPurple   = lipgloss.Color("#AA55FF")
	ColorOrange   = lipgloss.Color("#FFA500")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8")
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorYellow)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorRed)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorGreen)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorDarkGray)
)

// TypeColor returns the accent color for a commit type
func TypeColor(t models.ChangeType) lipgloss.Color {
	switch t {
	case models.Feat:
		return ColorGreen
	case models.Fix:
		return ColorRed
	case models.Docs:
		return ColorBlue
	case models.Refactor:
		return ColorPurple
	case models.Test:
		return ColorOrange
	default:
		return ColorWhite
	}
}

// DisableColor forces plain ASCII output for all styles
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
