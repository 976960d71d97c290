package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the header printed above the suggestion
var Banner = []string{
	"   __ _ _   _| |_ ___   ___ ___  _ __ ___  _ __ ___ (_) |_ ",
	"  / _` | | | | __/ _ \\ / __/ _ \\| '_ ` _ \\| '_ ` _ \\| | __|",
	" | (_| | |_| | || (_) | (_| (_) | | | | | | | | | | | | |_ ",
	"  \\__,_|\\__,_|\\__\\___/ \\___\\___/|_| |_| |_|_| |_| |_|_|\\__|",
}

// RenderBanner returns the styled banner as a string
func RenderBanner(dryRun bool) string {
	bannerStyle := lipgloss.NewStyle().Foreground(ColorCyan)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}

	// Add dry run warning if enabled
	if dryRun {
		lines = append(lines, "")
		warningStyle := lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)
		lines = append(lines, warningStyle.Render("⚠ DRY RUN MODE"))
	}

	return strings.Join(lines, "\n")
}
