package keymap

// Binding associates keys with an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "catalog", "queue"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionToggleQueue, []string{"p"}, "Toggle queue panel", "global"},
	{ActionReload, []string{"ctrl+r"}, "Reload catalog", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"pgdown", "n"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"pgup", "N"}, "Previous track", "playback"},
	{ActionSeekBack, []string{"shift+left"}, "Seek -5s", "playback"},
	{ActionSeekForward, []string{"shift+right"}, "Seek +5s", "playback"},
	{ActionSeekBackLong, []string{"alt+shift+left"}, "Seek -30s", "playback"},
	{ActionSeekForwardLong, []string{"alt+shift+right"}, "Seek +30s", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionToggleMute, []string{"m"}, "Mute/unmute", "playback"},

	// Catalog
	{ActionMoveUp, []string{"k", "up"}, "Move up", "catalog"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "catalog"},
	{ActionJumpStart, []string{"g", "home"}, "First song", "catalog"},
	{ActionJumpEnd, []string{"G", "end"}, "Last song", "catalog"},
	{ActionPageUp, []string{"ctrl+u"}, "Page up", "catalog"},
	{ActionPageDown, []string{"ctrl+d"}, "Page down", "catalog"},
	{ActionSelect, []string{"enter"}, "Play song", "catalog"},
	{ActionAdd, []string{"a"}, "Add to queue", "catalog"},
	{ActionRefresh, []string{"r"}, "Refresh song URLs", "catalog"},
	{ActionSearch, []string{"/"}, "Filter songs", "catalog"},

	// Queue
	{ActionClear, []string{"c"}, "Clear queue", "queue"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
