package confirm

import (
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContext = "ctx"

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func newTestConfirm() Model {
	m := New()
	m.SetSize(80, 24)
	m.Show("Clear queue?", "3 tracks will be removed.", testContext)
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestHandleKey_Answers(t *testing.T) {
	tests := []struct {
		key           string
		wantConfirmed bool
	}{
		{"enter", true},
		{"y", true},
		{"Y", true},
		{"esc", false},
		{"n", false},
		{"N", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestConfirm()

			res, done := m.HandleKey(keyMsg(tt.key))

			require.True(t, done)
			assert.Equal(t, tt.wantConfirmed, res.Confirmed)
			assert.Equal(t, testContext, res.Context)
			assert.False(t, m.Active(), "answering closes the dialog")
		})
	}
}

func TestHandleKey_OtherKeysAreSwallowed(t *testing.T) {
	m := newTestConfirm()

	_, done := m.HandleKey(keyMsg("x"))

	assert.False(t, done)
	assert.True(t, m.Active())
}

func TestHandleKey_Inactive(t *testing.T) {
	m := New()

	_, done := m.HandleKey(keyMsg("y"))
	assert.False(t, done)
}

func TestReset(t *testing.T) {
	m := newTestConfirm()
	m.Reset()

	assert.False(t, m.Active())
	assert.Empty(t, m.View())
}

func TestView(t *testing.T) {
	m := newTestConfirm()

	view := ansiRe.ReplaceAllString(m.View(), "")
	assert.Contains(t, view, "Clear queue?")
	assert.Contains(t, view, "3 tracks will be removed.")
	assert.Contains(t, view, "esc/n cancel")
}

func TestView_NoSize(t *testing.T) {
	m := New()
	m.Show("Title", "Message", nil)

	assert.Empty(t, m.View())
}
