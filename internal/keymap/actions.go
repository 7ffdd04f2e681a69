// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionToggleQueue Action = "toggle_queue"

	// Playback actions
	ActionPlayPause Action = "play_pause"
	ActionStop      Action = "stop"
	ActionNext      Action = "next"
	ActionPrevious  Action = "previous"
	ActionSeekFwd   Action = "seek_forward"
	ActionSeekBack  Action = "seek_back"

	// Volume actions
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"
	ActionToggleMute Action = "toggle_mute"

	// Mode actions
	ActionCycleRepeat   Action = "cycle_repeat"
	ActionToggleShuffle Action = "toggle_shuffle"

	// Visualizer actions
	ActionCycleStyle   Action = "cycle_style"
	ActionToggleLyrics Action = "toggle_lyrics"
)
