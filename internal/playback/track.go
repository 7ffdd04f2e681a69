package playback

import (
	"path/filepath"
	"time"
)

// Track is the queue entry as seen by subscribers. It is a copy of the
// data, not a reference into the live queue.
type Track struct {
	Path        string
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	Duration    time.Duration
}

// DisplayTitle falls back to the file name for untagged tracks.
func (t Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return filepath.Base(t.Path)
}
