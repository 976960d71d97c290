package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.aborted = true
		m.answered = true
		return m, tea.Quit
	}

	switch msg.String() {
	case "left", "h":
		m.confirmSelection = 0
	case "right", "l":
		m.confirmSelection = 1
	case "tab":
		m.confirmSelection = 1 - m.confirmSelection
	case "y", "Y":
		m.confirmSelection = 0
		return m.answer()
	case "n", "N", "esc", "q":
		m.confirmSelection = 1
		return m.answer()
	case "enter":
		return m.answer()
	}
	return m, nil
}

func (m Model) answer() (tea.Model, tea.Cmd) {
	m.answered = true
	return m, tea.Quit
}
