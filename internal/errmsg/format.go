// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"
	OpPlaybackNext  Op = "skip to next track"
	OpPlaybackPrev  Op = "skip to previous track"

	// Track loading
	OpTrackLoad Op = "load track"

	// Library operations
	OpLibraryScan Op = "scan music folders"

	// Queue operations
	OpQueueSave Op = "save queue"

	// Lyrics operations
	OpLyricsFetch Op = "fetch lyrics"

	// Settings persistence
	OpStateSave Op = "save settings"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
