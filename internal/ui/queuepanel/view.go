package queuepanel

import (
	"fmt"
	"strings"

	"github.com/llehouerou/muker/internal/icons"
	"github.com/llehouerou/muker/internal/playback"
	"github.com/llehouerou/muker/internal/playlist"
	"github.com/llehouerou/muker/internal/ui"
	"github.com/llehouerou/muker/internal/ui/render"
	"github.com/llehouerou/muker/internal/ui/styles"
)


// View renders the queue panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	listHeight := m.listHeight()

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	trackList := m.renderTrackList(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + trackList

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderHeader shows position/count on the left and mode indicators on
// the right.
func (m Model) renderHeader(innerWidth int) string {
	currentIdx := m.service.QueueCurrentIndex() + 1
	if currentIdx < 1 {
		currentIdx = 0
	}
	left := fmt.Sprintf("Queue (%d/%d)", currentIdx, m.service.QueueLen())

	modes, modesWidth := m.renderModeIndicators()

	left = render.TruncateAndPad(left, innerWidth-modesWidth)
	return styles.T().S().Title.Render(left) + modes
}

func (m Model) renderModeIndicators() (styled string, width int) {
	var parts []string

	if m.service.Shuffle() {
		parts = append(parts, "shuffle")
	}
	switch m.service.RepeatMode() {
	case playlist.RepeatOff:
	case playlist.RepeatAll:
		parts = append(parts, "repeat")
	case playlist.RepeatOne:
		parts = append(parts, "repeat-one")
	}

	if len(parts) == 0 {
		return "", 0
	}

	raw := strings.Join(parts, "  ")
	return styles.T().S().Muted.Render(raw), len(raw)
}

func (m Model) renderTrackList(innerWidth, listHeight int) string {
	tracks := m.service.QueueTracks()
	playingIdx := m.service.QueueCurrentIndex()

	lines := make([]string, 0, listHeight)
	for i := range listHeight {
		idx := i + m.cursor.Offset()
		if idx >= len(tracks) {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderTrackLine(tracks[idx], idx, playingIdx, innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderTrackLine lays out one row: marker, title, artist, duration.
func (m Model) renderTrackLine(track playback.Track, idx, playingIdx, width int) string {
	prefix := "  "
	if idx == playingIdx {
		prefix = icons.Play() + " "
	}

	duration := ""
	if track.Duration > 0 {
		duration = playlist.FormatDuration(track.Duration)
	}
	durationWidth := 6

	contentWidth := max(width-len(prefix)-durationWidth, 0)
	colWidth := contentWidth / 2

	title := track.Title
	if title == "" {
		title = track.Path
	}

	line := prefix +
		render.TruncateAndPad(title, colWidth) +
		render.TruncateAndPad(track.Artist, contentWidth-colWidth) +
		fmt.Sprintf("%*s", durationWidth, duration)

	st := styles.T().S()
	switch {
	case m.IsFocused() && idx == m.cursor.Pos():
		return st.Cursor.Render(line)
	case idx == playingIdx:
		return st.Playing.Render(line)
	default:
		return st.Base.Render(line)
	}
}
