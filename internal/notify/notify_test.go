package notify

import (
	"testing"

	"github.com/llehouerou/muker/internal/playback"
)

func testTrack(title, artist, album string) playback.Track {
	return playback.Track{Path: "/music/a.mp3", Title: title, Artist: artist, Album: album}
}

func TestUrgencyValues(t *testing.T) {
	// Verify urgency constants match D-Bus spec
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestNotificationZeroValue(t *testing.T) {
	var n Notification
	if n.Urgency != UrgencyLow {
		t.Errorf("zero value Urgency = %d, want UrgencyLow (0)", n.Urgency)
	}
	if n.Timeout != 0 {
		t.Error("zero value Timeout should be 0 (never expire)")
	}
	if n.ReplacesID != 0 {
		t.Error("zero value ReplacesID should be 0 (new notification)")
	}
}

func TestForTrack(t *testing.T) {
	n := ForTrack(testTrack("Song", "Artist", "Album"), 7)
	if n.Title != "Song" {
		t.Errorf("Title = %q, want Song", n.Title)
	}
	if n.Body != "Artist · Album" {
		t.Errorf("Body = %q", n.Body)
	}
	if n.ReplacesID != 7 {
		t.Errorf("ReplacesID = %d, want 7", n.ReplacesID)
	}
	if n.Urgency != UrgencyLow {
		t.Errorf("Urgency = %d, want UrgencyLow", n.Urgency)
	}
}

func TestForTrack_UntaggedFallsBackToFilename(t *testing.T) {
	track := testTrack("", "", "")
	track.Path = "/music/untitled.mp3"

	n := ForTrack(track, 0)
	if n.Title != "untitled.mp3" {
		t.Errorf("Title = %q, want the file name", n.Title)
	}
	if n.Body != "" {
		t.Errorf("Body = %q, want empty", n.Body)
	}
}
