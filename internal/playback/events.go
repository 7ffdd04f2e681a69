package playback

import (
	"time"

	"github.com/llehouerou/muker/internal/playlist"
)

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when playback starts on a different track.
//
// Emitted by Play, Next, Previous, JumpTo, and the automatic advance
// after end-of-stream. Pause and Stop do not emit TrackChange; the app
// handles track-related side effects (enrichment, MPRIS metadata) in
// response to this event only.
type TrackChange struct {
	Previous      *Track
	Current       *Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted when the queue contents change.
type QueueChange struct {
	Tracks []Track
	Index  int
}

// ModeChange is emitted when repeat or shuffle mode changes.
type ModeChange struct {
	RepeatMode playlist.RepeatMode
	Shuffle    bool
}

// VolumeChange is emitted when volume or mute changes.
type VolumeChange struct {
	Level float64
	Muted bool
}

// PositionChange is emitted when a seek occurs.
type PositionChange struct {
	Position time.Duration
}

// ErrorEvent is emitted when an error occurs during playback.
type ErrorEvent struct {
	Operation string // e.g., "play", "seek"
	Path      string // track path if applicable
	Err       error
}
