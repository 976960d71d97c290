package app

import (
	"strings"

	"github.com/wahlandcase/autocommit/internal/ui"
)

// View renders the prompt; once answered only the final choice remains
func (m Model) View() string {
	if m.answered {
		if m.Confirmed() {
			return ui.InfoStyle.Render("  ✓ "+m.msg.Header()) + "\n"
		}
		return ""
	}

	var sections []string
	sections = append(sections, "  "+m.prompt)
	sections = append(sections, "")
	sections = append(sections, ui.YesNoButtons(m.confirmSelection))
	sections = append(sections, "")
	sections = append(sections, "  "+strings.Join([]string{
		ui.KeyBinding("←/→", "select", ui.ColorCyan),
		ui.KeyBinding("y/n", "answer", ui.ColorCyan),
		ui.KeyBinding("enter", "confirm", ui.ColorCyan),
	}, "  "))

	return strings.Join(sections, "\n") + "\n"
}
