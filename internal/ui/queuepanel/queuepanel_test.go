package queuepanel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boostlegends/Prodverse/internal/keymap"
	"github.com/boostlegends/Prodverse/internal/ui"
)

func threeTracks(current int) Model {
	return newTestPanel(current,
		testTrack("A", "x"),
		testTrack("B", "y"),
		testTrack("C", "z"),
	)
}

func TestSetQueue_CursorFollowsCurrentWhenUnfocused(t *testing.T) {
	m := threeTracks(0)
	m.SetQueue(m.list.Items(), 2)
	assert.Equal(t, 2, m.list.SelectedIndex())
}

func TestSetQueue_FocusedCursorStays(t *testing.T) {
	m := threeTracks(0)
	m.SetFocused(true)
	m.SetQueue(m.list.Items(), 2)
	assert.Equal(t, 0, m.list.SelectedIndex())
}

func TestHandleAction_SelectJumps(t *testing.T) {
	m := threeTracks(0)
	m.SetFocused(true)

	assert.Nil(t, m.HandleAction(keymap.ActionMoveDown))
	target := m.HandleAction(keymap.ActionSelect)
	require.NotNil(t, target)
	assert.Equal(t, "B", target.Title)
}

func TestHandleAction_Unfocused(t *testing.T) {
	m := threeTracks(0)
	assert.Nil(t, m.HandleAction(keymap.ActionSelect))
}

func TestHandleMouse_ClickThenActivate(t *testing.T) {
	m := threeTracks(0)
	m.SetOrigin(40, 1)

	click := tea.MouseMsg{X: 45, Y: 1 + ui.ListTop + 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	assert.Nil(t, m.HandleMouse(click))

	target := m.HandleMouse(click)
	require.NotNil(t, target)
	assert.Equal(t, "C", target.Title)
}

func TestHandleAction_EmptyQueue(t *testing.T) {
	m := newTestPanel(-1)
	m.SetFocused(true)
	assert.Nil(t, m.HandleAction(keymap.ActionSelect))
}
