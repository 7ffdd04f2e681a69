package app

import (
	"time"

	"github.com/llehouerou/muker/internal/lyrics"
	"github.com/llehouerou/muker/internal/playback"
	"github.com/llehouerou/muker/internal/playlist"
)

// vizTickMsg drives the render scheduler and progress refresh.
type vizTickMsg time.Time

// eventMsg wraps one playback service event.
type eventMsg struct {
	state    *playback.StateChange
	track    *playback.TrackChange
	queue    *playback.QueueChange
	mode     *playback.ModeChange
	volume   *playback.VolumeChange
	position *playback.PositionChange
	err      *playback.ErrorEvent
}

// subClosedMsg signals that the event subscription ended.
type subClosedMsg struct{}

// libraryLoadedMsg carries startup scan results.
type libraryLoadedMsg struct {
	tracks  []playlist.Track
	summary string
}

// lyricsMsg carries a completed lyrics fetch. The path identifies the
// track it was fetched for so stale results can be dropped.
type lyricsMsg struct {
	path   string
	result lyrics.Result
}

// notifySentMsg carries the notification ID so the next track change
// can replace it.
type notifySentMsg struct{ id uint32 }

// stderrLineMsg is a captured line from a C audio library.
type stderrLineMsg string
