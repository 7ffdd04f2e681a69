package queuepanel

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/muker/internal/icons"
	"github.com/llehouerou/muker/internal/playback"
	"github.com/llehouerou/muker/internal/player"
	"github.com/llehouerou/muker/internal/playlist"
)

func newTestPanel(t *testing.T, tracks ...playlist.Track) (Model, playback.Service) {
	t.Helper()
	svc := playback.New(player.NewMock(), playlist.NewQueue())
	t.Cleanup(func() { svc.Close() })
	svc.AddTracks(tracks...)

	m := New(svc)
	m.SetSize(60, 10)
	return m, svc
}

func TestView_Empty(t *testing.T) {
	m, _ := newTestPanel(t)

	out := m.View()
	if !strings.Contains(out, "Queue (0/0)") {
		t.Errorf("empty queue header missing, got:\n%s", out)
	}
}

func TestView_ListsTracks(t *testing.T) {
	m, _ := newTestPanel(t,
		playlist.Track{Path: "/a.mp3", Title: "Alpha", Artist: "Artist A", Duration: 3 * time.Minute},
		playlist.Track{Path: "/b.mp3", Title: "Beta", Artist: "Artist B"},
	)

	out := m.View()
	for _, want := range []string{"Alpha", "Beta", "Artist A", "3:00", "Queue (0/2)"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestView_MarksPlaying(t *testing.T) {
	m, svc := newTestPanel(t,
		playlist.Track{Path: "/a.mp3", Title: "Alpha"},
		playlist.Track{Path: "/b.mp3", Title: "Beta"},
	)
	if err := svc.PlayIndex(1); err != nil {
		t.Fatal(err)
	}

	out := m.View()
	if !strings.Contains(out, icons.Play()) {
		t.Error("playing marker missing")
	}
	if !strings.Contains(out, "Queue (2/2)") {
		t.Errorf("header should show current position, got:\n%s", out)
	}
}

func TestView_FallsBackToPath(t *testing.T) {
	m, _ := newTestPanel(t, playlist.Track{Path: "/music/untitled.mp3"})

	out := m.View()
	if !strings.Contains(out, "/music/untitled.mp3") {
		t.Error("untitled track should display its path")
	}
}

func TestView_ModeIndicators(t *testing.T) {
	m, svc := newTestPanel(t, playlist.Track{Path: "/a.mp3", Title: "Alpha"})
	svc.SetShuffle(true)
	svc.SetRepeatMode(playlist.RepeatAll)

	out := m.View()
	if !strings.Contains(out, "shuffle") {
		t.Error("shuffle indicator missing")
	}
	if !strings.Contains(out, "repeat") {
		t.Error("repeat indicator missing")
	}
}

func TestUpdate_CursorMovement(t *testing.T) {
	m, _ := newTestPanel(t,
		playlist.Track{Path: "/a.mp3"},
		playlist.Track{Path: "/b.mp3"},
		playlist.Track{Path: "/c.mp3"},
	)
	m.SetFocused(true)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Cursor(); got != 1 {
		t.Errorf("cursor after down = %d, want 1", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	if got := m.Cursor(); got != 2 {
		t.Errorf("cursor after G = %d, want 2", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if got := m.Cursor(); got != 0 {
		t.Errorf("cursor after g = %d, want 0", got)
	}
}

func TestUpdate_IgnoredWhenUnfocused(t *testing.T) {
	m, _ := newTestPanel(t,
		playlist.Track{Path: "/a.mp3"},
		playlist.Track{Path: "/b.mp3"},
	)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Cursor(); got != 0 {
		t.Errorf("unfocused panel moved cursor to %d", got)
	}
}

func TestUpdate_DeleteTrack(t *testing.T) {
	m, svc := newTestPanel(t,
		playlist.Track{Path: "/a.mp3"},
		playlist.Track{Path: "/b.mp3"},
	)
	m.SetFocused(true)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if got := svc.QueueLen(); got != 1 {
		t.Errorf("QueueLen() after delete = %d, want 1", got)
	}
	if got := m.Cursor(); got != 0 {
		t.Errorf("cursor after delete = %d, want 0", got)
	}
}

func TestUpdate_MoveTrack(t *testing.T) {
	m, svc := newTestPanel(t,
		playlist.Track{Path: "/a.mp3", Title: "Alpha"},
		playlist.Track{Path: "/b.mp3", Title: "Beta"},
	)
	m.SetFocused(true)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'J'}})

	tracks := svc.QueueTracks()
	if tracks[0].Title != "Beta" || tracks[1].Title != "Alpha" {
		t.Errorf("tracks after move = %q, %q", tracks[0].Title, tracks[1].Title)
	}
	if got := m.Cursor(); got != 1 {
		t.Errorf("cursor should follow moved track, got %d", got)
	}
}

func TestFollowCurrent(t *testing.T) {
	m, svc := newTestPanel(t,
		playlist.Track{Path: "/a.mp3"},
		playlist.Track{Path: "/b.mp3"},
		playlist.Track{Path: "/c.mp3"},
	)
	if err := svc.PlayIndex(2); err != nil {
		t.Fatal(err)
	}

	m.FollowCurrent()
	if got := m.Cursor(); got != 2 {
		t.Errorf("cursor after FollowCurrent = %d, want 2", got)
	}
}
