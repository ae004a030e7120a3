package helpbindings

import (
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/boostlegends/Prodverse/internal/keymap"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func newTestHelp(width, height int) Model {
	m := New(keymap.NewResolver(keymap.Bindings))
	m.SetSize(width, height)
	m.Toggle()
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHelpBindings_Close(t *testing.T) {
	for _, k := range []string{"esc", "q", "?"} {
		t.Run(k, func(t *testing.T) {
			m := newTestHelp(80, 40)
			m.HandleKey(key(k))
			assert.False(t, m.Visible())
			assert.Empty(t, m.View())
		})
	}
}

func TestHelpBindings_ListsContexts(t *testing.T) {
	m := newTestHelp(100, 80)
	out := ansiRe.ReplaceAllString(m.View(), "")

	for _, want := range []string{"Global", "Playback", "Songs", "Queue Panel", "space", "Play/pause", "Filter songs"} {
		assert.Contains(t, out, want)
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	m := newTestHelp(80, 12)
	assert.Positive(t, m.maxScroll())

	m.HandleKey(key("j"))
	m.HandleKey(key("down"))
	assert.Equal(t, 2, m.scrollOffset)

	m.HandleKey(key("k"))
	assert.Equal(t, 1, m.scrollOffset)

	for range 100 {
		m.HandleKey(key("j"))
	}
	assert.Equal(t, m.maxScroll(), m.scrollOffset)

	out := ansiRe.ReplaceAllString(m.View(), "")
	assert.Contains(t, out, "j/k scroll")
}

func TestHelpBindings_ToggleResetsScroll(t *testing.T) {
	m := newTestHelp(80, 12)
	m.HandleKey(key("j"))
	m.Toggle()
	m.Toggle()
	assert.Equal(t, 0, m.scrollOffset)
	assert.True(t, m.Visible())
}
