package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/muker/internal/library"
	"github.com/llehouerou/muker/internal/lyrics"
	"github.com/llehouerou/muker/internal/notify"
	"github.com/llehouerou/muker/internal/playback"
	"github.com/llehouerou/muker/internal/playlist"
	"github.com/llehouerou/muker/internal/spotify"
	"github.com/llehouerou/muker/internal/stderr"
)

// enrichTimeout bounds the whole startup metadata lookup pass.
const enrichTimeout = 10 * time.Second

// lyricsTimeout bounds one lyrics lookup.
const lyricsTimeout = 15 * time.Second

func vizTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return vizTickMsg(t)
	})
}

// waitEventCmd blocks on the subscription until any event arrives.
// The update loop re-issues it after each message.
func waitEventCmd(sub *playback.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case e, ok := <-sub.StateChanged:
			if !ok {
				return subClosedMsg{}
			}
			return eventMsg{state: &e}
		case e, ok := <-sub.TrackChanged:
			if !ok {
				return subClosedMsg{}
			}
			return eventMsg{track: &e}
		case e, ok := <-sub.QueueChanged:
			if !ok {
				return subClosedMsg{}
			}
			return eventMsg{queue: &e}
		case e, ok := <-sub.ModeChanged:
			if !ok {
				return subClosedMsg{}
			}
			return eventMsg{mode: &e}
		case e, ok := <-sub.VolumeChanged:
			if !ok {
				return subClosedMsg{}
			}
			return eventMsg{volume: &e}
		case e, ok := <-sub.PositionChanged:
			if !ok {
				return subClosedMsg{}
			}
			return eventMsg{position: &e}
		case e, ok := <-sub.Error:
			if !ok {
				return subClosedMsg{}
			}
			return eventMsg{err: &e}
		case <-sub.Done:
			return subClosedMsg{}
		}
	}
}

// loadLibraryCmd scans the configured sources, reads tags, and fills
// metadata gaps from Spotify when credentials are configured.
func loadLibraryCmd(sources []string, enricher *spotify.Enricher) tea.Cmd {
	return func() tea.Msg {
		result := library.Scan(sources)
		tracks := playlist.FromPaths(result.Files)

		if enricher.Enabled() {
			ctx, cancel := context.WithTimeout(context.Background(), enrichTimeout)
			defer cancel()
			for i := range tracks {
				if ctx.Err() != nil {
					break
				}
				enricher.Enrich(ctx, &tracks[i])
			}
		}

		return libraryLoadedMsg{tracks: tracks, summary: result.Summary()}
	}
}

// waitStderrCmd surfaces captured C-library stderr lines in the UI.
func waitStderrCmd() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return stderrLineMsg(line)
	}
}

// fetchLyricsCmd resolves lyrics for the track off the update loop.
func fetchLyricsCmd(src *lyrics.Source, track playback.Track) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), lyricsTimeout)
		defer cancel()

		result := src.Fetch(ctx, lyrics.Request{
			AudioPath: track.Path,
			Artist:    track.Artist,
			Title:     track.Title,
			Album:     track.Album,
			Duration:  track.Duration,
		})
		return lyricsMsg{path: track.Path, result: result}
	}
}

// notifyCmd announces a track change on the desktop.
func notifyCmd(notifier notify.Notifier, track playback.Track, replacesID uint32) tea.Cmd {
	if notifier == nil {
		return nil
	}
	return func() tea.Msg {
		id, err := notifier.Notify(notify.ForTrack(track, replacesID))
		if err != nil {
			return nil
		}
		return notifySentMsg{id: id}
	}
}
