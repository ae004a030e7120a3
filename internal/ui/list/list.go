// Package list provides a generic scrollable list component.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/boostlegends/Prodverse/internal/keymap"
	"github.com/boostlegends/Prodverse/internal/ui"
	"github.com/boostlegends/Prodverse/internal/ui/cursor"
)

// Action represents what happened during an update.
type Action int

const (
	ActionNone  Action = iota
	ActionEnter        // Select on the cursor row, or click on the selected row
	ActionClick        // Left click moved the cursor
	ActionMoved        // Keyboard or wheel navigation
)

// Result tells the parent what happened.
type Result struct {
	Action Action
	Index  int // Which item index the action applies to (-1 if none)
}

var none = Result{Index: -1}

// wheelStep is the number of rows one wheel notch moves.
const wheelStep = 3

// Model is a generic scrollable list component inside a bordered panel.
// It handles navigation and mouse input; the parent renders using
// VisibleRange.
type Model[T any] struct {
	ui.Base
	items  []T
	cursor cursor.Cursor
}

// New creates a new list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{cursor: cursor.New(margin)}
}

// SetItems replaces all items and clamps cursor to bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items), m.height())
}

// SetSize sets the panel dimensions and keeps the cursor visible.
func (m *Model[T]) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.EnsureVisible(len(m.items), m.height())
}

// Items returns the current items slice.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor, or false if the list is empty.
func (m Model[T]) Selected() (T, bool) {
	if m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// SelectedIndex returns the current cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// Select moves the cursor to index.
func (m *Model[T]) Select(index int) {
	m.cursor.Jump(index, len(m.items), m.height())
}

// VisibleRange returns [start, end) indices for rendering.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.height())
}

// Offset returns the index of the first visible item.
func (m Model[T]) Offset() int {
	return m.cursor.Offset()
}

func (m Model[T]) height() int {
	return m.ListHeight(ui.PanelOverhead)
}

// HandleAction applies a key action when the list is focused.
func (m *Model[T]) HandleAction(a keymap.Action) Result {
	if !m.IsFocused() {
		return none
	}
	if m.cursor.HandleAction(a, len(m.items), m.height()) {
		return Result{Action: ActionMoved, Index: m.cursor.Pos()}
	}
	if a == keymap.ActionSelect && len(m.items) > 0 {
		return Result{Action: ActionEnter, Index: m.cursor.Pos()}
	}
	return none
}

// HandleMouse handles wheel and left-press events inside the panel.
// Coordinates are screen cells; events outside the panel are ignored.
func (m *Model[T]) HandleMouse(msg tea.MouseMsg) Result {
	_, y, ok := m.Local(msg.X, msg.Y)
	if !ok {
		return none
	}
	height := m.height()

	switch msg.Button { //nolint:exhaustive // other buttons are ignored
	case tea.MouseButtonWheelDown:
		m.cursor.Move(wheelStep, len(m.items), height)
		return Result{Action: ActionMoved, Index: m.cursor.Pos()}
	case tea.MouseButtonWheelUp:
		m.cursor.Move(-wheelStep, len(m.items), height)
		return Result{Action: ActionMoved, Index: m.cursor.Pos()}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return none
		}
		idx := m.cursor.RowAt(y-ui.ListTop, len(m.items), height)
		if idx < 0 {
			return none
		}
		if idx == m.cursor.Pos() {
			return Result{Action: ActionEnter, Index: idx}
		}
		m.cursor.Jump(idx, len(m.items), height)
		return Result{Action: ActionClick, Index: idx}
	}
	return none
}
