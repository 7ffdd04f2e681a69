package notify

import (
	"strings"

	"github.com/llehouerou/muker/internal/playback"
)

// trackTimeoutMs is how long a track-change notification stays visible.
const trackTimeoutMs = 4000

// ForTrack builds a track-change notification. The previous
// notification's ID can be passed so successive track changes replace
// each other instead of stacking.
func ForTrack(track playback.Track, replacesID uint32) Notification {
	var bodyParts []string
	if track.Artist != "" {
		bodyParts = append(bodyParts, track.Artist)
	}
	if track.Album != "" {
		bodyParts = append(bodyParts, track.Album)
	}

	return Notification{
		Title:      track.DisplayTitle(),
		Body:       strings.Join(bodyParts, " · "),
		Icon:       FindAlbumArtPath(track.Path),
		Timeout:    trackTimeoutMs,
		ReplacesID: replacesID,
		Urgency:    UrgencyLow,
	}
}
