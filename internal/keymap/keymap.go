package keymap

// Binding maps keys to an action, with a description for help output.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "playback", "queue"
}

// All contains every key binding, in help display order.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
	{[]string{"tab"}, ActionSwitchFocus, "Switch focus", "global"},
	{[]string{"Q"}, ActionToggleQueue, "Toggle queue panel", "global"},

	// Playback
	{[]string{" ", "space"}, ActionPlayPause, "Play/pause", "playback"},
	{[]string{"x"}, ActionStop, "Stop", "playback"},
	{[]string{"n", "pgdown"}, ActionNext, "Next track", "playback"},
	{[]string{"p", "pgup"}, ActionPrevious, "Previous track", "playback"},
	{[]string{"right", "l"}, ActionSeekFwd, "Seek +5s", "playback"},
	{[]string{"left", "h"}, ActionSeekBack, "Seek -5s", "playback"},

	// Volume
	{[]string{"+", "="}, ActionVolumeUp, "Volume up", "playback"},
	{[]string{"-"}, ActionVolumeDown, "Volume down", "playback"},
	{[]string{"m"}, ActionToggleMute, "Toggle mute", "playback"},

	// Modes
	{[]string{"r"}, ActionCycleRepeat, "Cycle repeat mode", "playback"},
	{[]string{"s"}, ActionToggleShuffle, "Toggle shuffle", "playback"},

	// Visualizer
	{[]string{"v"}, ActionCycleStyle, "Cycle visualizer style", "playback"},
	{[]string{"L"}, ActionToggleLyrics, "Toggle lyrics panel", "global"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
