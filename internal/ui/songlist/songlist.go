// Package songlist renders the song catalog with an inline filter.
package songlist

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/boostlegends/Prodverse/internal/catalog"
	"github.com/boostlegends/Prodverse/internal/keymap"
	"github.com/boostlegends/Prodverse/internal/ui"
	"github.com/boostlegends/Prodverse/internal/ui/list"
)

// Intent is what the user asked to do with a song.
type Intent int

const (
	IntentNone Intent = iota
	IntentPlay
	IntentAdd
	IntentRefresh
)

// Request pairs an intent with the song under the cursor.
type Request struct {
	Intent Intent
	Song   catalog.Song
}

// Model is the catalog panel.
type Model struct {
	list      list.Model[catalog.Song]
	all       []catalog.Song
	input     textinput.Model
	filtering bool
	current   string
	stale     bool
	now       func() time.Time
}

// New creates an empty catalog panel.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter songs"
	ti.CharLimit = 128

	return Model{
		list:  list.New[catalog.Song](ui.ScrollMargin),
		input: ti,
		now:   time.Now,
	}
}

// SetFocused sets whether the panel is focused.
func (m *Model) SetFocused(focused bool) {
	m.list.SetFocused(focused)
}

// IsFocused returns whether the panel is focused.
func (m Model) IsFocused() bool {
	return m.list.IsFocused()
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
	m.input.Width = max(width-6, 1)
}

// SetOrigin records where the panel is drawn on screen.
func (m *Model) SetOrigin(x, y int) {
	m.list.SetOrigin(x, y)
}

// SetSongs replaces the catalog. stale marks songs served from the
// offline cache. The cursor stays on the same song when it survives.
func (m *Model) SetSongs(songs []catalog.Song, stale bool) {
	selected := m.SelectedID()
	m.all = songs
	m.stale = stale
	m.applyFilter()
	if selected != "" {
		m.Select(selected)
	}
}

// Songs returns the unfiltered catalog.
func (m Model) Songs() []catalog.Song {
	return m.all
}

// SetCurrent marks the song that is loaded in the player.
func (m *Model) SetCurrent(id string) {
	m.current = id
}

// Select moves the cursor to the song with id, if it is visible.
func (m *Model) Select(id string) bool {
	for i, s := range m.list.Items() {
		if s.ID == id {
			m.list.Select(i)
			return true
		}
	}
	return false
}

// SelectedID returns the ID of the song under the cursor.
func (m Model) SelectedID() string {
	if s, ok := m.list.Selected(); ok {
		return s.ID
	}
	return ""
}

// Filtering reports whether the filter input has the keyboard.
func (m Model) Filtering() bool {
	return m.filtering
}

// Filter returns the current filter text.
func (m Model) Filter() string {
	return m.input.Value()
}

// StartFilter gives the keyboard to the filter input.
func (m *Model) StartFilter() tea.Cmd {
	m.filtering = true
	return m.input.Focus()
}

// UpdateFilter feeds a key to the filter input. Enter keeps the filter,
// escape clears it; both hand the keyboard back to the list.
func (m *Model) UpdateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type { //nolint:exhaustive // remaining keys go to the input
	case tea.KeyEnter:
		m.filtering = false
		m.input.Blur()
		return nil
	case tea.KeyEsc:
		m.filtering = false
		m.input.Blur()
		m.input.SetValue("")
		m.applyFilter()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return cmd
}

// HandleAction maps a key action to a request on the song under the cursor.
func (m *Model) HandleAction(a keymap.Action) Request {
	res := m.list.HandleAction(a)
	if res.Action == list.ActionEnter {
		return m.request(IntentPlay)
	}
	if res.Action != list.ActionNone || !m.IsFocused() {
		return Request{}
	}
	switch a { //nolint:exhaustive // only catalog actions apply
	case keymap.ActionAdd:
		return m.request(IntentAdd)
	case keymap.ActionRefresh:
		return m.request(IntentRefresh)
	}
	return Request{}
}

// HandleMouse handles a mouse event over the panel.
func (m *Model) HandleMouse(msg tea.MouseMsg) Request {
	if m.list.HandleMouse(msg).Action == list.ActionEnter {
		return m.request(IntentPlay)
	}
	return Request{}
}

func (m Model) request(intent Intent) Request {
	s, ok := m.list.Selected()
	if !ok {
		return Request{}
	}
	return Request{Intent: intent, Song: s}
}

func (m *Model) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if q == "" {
		m.list.SetItems(m.all)
		return
	}
	var out []catalog.Song
	for _, s := range m.all {
		if matches(s, q) {
			out = append(out, s)
		}
	}
	m.list.SetItems(out)
}

func matches(s catalog.Song, q string) bool {
	for _, field := range []string{s.Title, s.Style, s.Artist, s.Prompt} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
