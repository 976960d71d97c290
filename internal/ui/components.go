package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/autocommit/internal/models"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// YesNoButtons creates interactive Yes/No buttons
// selection: 0 for Yes, 1 for No
func YesNoButtons(selection int) string {
	var yesBorder, yesText lipgloss.Color
	var noBorder, noText lipgloss.Color

	if selection == 0 {
		yesBorder = ColorGreen
		yesText = ColorGreen
	} else {
		yesBorder = ColorDarkGray
		yesText = ColorWhite
	}

	if selection == 1 {
		noBorder = ColorRed
		noText = ColorRed
	} else {
		noBorder = ColorDarkGray
		noText = ColorWhite
	}

	yesStyle := lipgloss.NewStyle().Foreground(yesBorder)
	yesTextStyle := lipgloss.NewStyle().Foreground(yesText).Bold(true)
	noStyle := lipgloss.NewStyle().Foreground(noBorder)
	noTextStyle := lipgloss.NewStyle().Foreground(noText).Bold(true)

	iconYes, iconNo := " ", " "
	if selection == 0 {
		iconYes = ">"
	} else {
		iconNo = ">"
	}

	line1 := yesStyle.Render("  ┌────────┐") + " " + noStyle.Render("┌───────┐")
	line2 := fmt.Sprintf("%s%s%s %s%s%s",
		yesStyle.Render("  │"),
		yesTextStyle.Render(fmt.Sprintf(" %s  YES ", yesStyle.Render(iconYes))),
		yesStyle.Render("│"),
		noStyle.Render("│"),
		noTextStyle.Render(fmt.Sprintf(" %s  NO ", noStyle.Render(iconNo))),
		noStyle.Render("│"),
	)
	line3 := yesStyle.Render("  └────────┘") + " " + noStyle.Render("└───────┘")

	return line1 + "\n" + line2 + "\n" + line3
}

// KeyBinding renders a key binding hint
func KeyBinding(key, description string, color lipgloss.Color) string {
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		descStyle.Render(description),
	)
}

// Box creates a rounded bordered box; title, if set, is rendered as the first line
func Box(content string, title string, borderColor lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	if title != "" {
		titleStyle := lipgloss.NewStyle().Foreground(borderColor).Bold(true)
		content = titleStyle.Render(title) + "\n\n" + content
	}

	return style.Render(content)
}

// MessagePanel renders a suggested commit message inside a titled box
func MessagePanel(msg models.CommitMessage, title string) string {
	heading := lipgloss.NewStyle().Foreground(ColorCyan).Bold(true).Render("Suggested Commit")
	typeStyle := lipgloss.NewStyle().Foreground(TypeColor(msg.Type)).Bold(true)

	header := typeStyle.Render(msg.Type.String())
	if msg.Scope != "" {
		header += fmt.Sprintf("(%s)", msg.Scope)
	}
	header += ": " + msg.Subject

	content := heading + "\n\n" + header
	if msg.Body != "" {
		content += "\n\n" + msg.Body
	}

	return Box(content, title, ColorBlue)
}

// FileList renders the changed files under a section header
func FileList(paths []string) string {
	lines := []string{SectionHeader(fmt.Sprintf("CHANGES (%d)", len(paths)), ColorCyan)}
	bullet := MutedStyle.Render("•")
	for _, p := range paths {
		lines = append(lines, fmt.Sprintf("    %s %s", bullet, p))
	}
	return strings.Join(lines, "\n")
}
