package app

import (
	"errors"
	"io"

	"github.com/wahlandcase/autocommit/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user cancels the prompt with ctrl+c
var ErrAborted = errors.New("aborted by user")

// Model is the commit confirmation prompt
type Model struct {
	msg    models.CommitMessage
	prompt string

	confirmSelection int // 0=Yes, 1=No
	answered         bool
	aborted          bool
}

// New creates a confirmation prompt for msg, preselecting Yes when defaultYes is set
func New(msg models.CommitMessage, prompt string, defaultYes bool) Model {
	selection := 1
	if defaultYes {
		selection = 0
	}
	return Model{
		msg:              msg,
		prompt:           prompt,
		confirmSelection: selection,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Confirmed returns true if the user answered Yes
func (m Model) Confirmed() bool {
	return m.answered && !m.aborted && m.confirmSelection == 0
}

// Aborted returns true if the user pressed ctrl+c
func (m Model) Aborted() bool {
	return m.aborted
}

// Confirm runs the prompt on the given terminal streams until it is answered
func Confirm(msg models.CommitMessage, prompt string, defaultYes bool, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(New(msg, prompt, defaultYes), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(Model)
	if !ok {
		return false, errors.New("unexpected prompt model")
	}
	if m.Aborted() {
		return false, ErrAborted
	}
	return m.Confirmed(), nil
}
