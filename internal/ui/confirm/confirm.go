// Package confirm provides a yes/no confirmation dialog.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/boostlegends/Prodverse/internal/ui"
	"github.com/boostlegends/Prodverse/internal/ui/styles"
)

const hint = "enter/y confirm · esc/n cancel"

// Result is the answer to a dialog.
type Result struct {
	Confirmed bool
	Context   any // passed through from Show
}

// Model is a yes/no confirmation dialog, centered in its area.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
}

// New creates a hidden dialog.
func New() Model {
	return Model{}
}

// Show opens the dialog. context is returned with the result.
func (m *Model) Show(title, message string, context any) {
	m.title = title
	m.message = message
	m.context = context
	m.active = true
}

// Reset closes the dialog without answering.
func (m *Model) Reset() {
	m.title = ""
	m.message = ""
	m.context = nil
	m.active = false
}

// Active returns whether the dialog is shown.
func (m Model) Active() bool {
	return m.active
}

// HandleKey answers the dialog. done is false for keys that do not
// answer; the dialog stays open and swallows them.
func (m *Model) HandleKey(msg tea.KeyMsg) (res Result, done bool) {
	if !m.active {
		return Result{}, false
	}
	switch msg.String() {
	case "enter", "y", "Y":
		res = Result{Confirmed: true, Context: m.context}
	case "esc", "n", "N":
		res = Result{Context: m.context}
	default:
		return Result{}, false
	}
	m.Reset()
	return res, true
}

// View renders the dialog centered in the component area.
func (m Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	content := s.Title.Render(m.title) + "\n\n" +
		s.Base.Render(m.message) + "\n\n" +
		s.Subtle.Render(hint)

	box := styles.PanelStyle(true).Padding(0, 2).Render(content)
	return lipgloss.Place(m.Width(), m.Height(), lipgloss.Center, lipgloss.Center, box)
}
