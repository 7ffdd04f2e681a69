// Package playerbar renders the single-line transport bar: status,
// track metadata, progress, and volume.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/muker/internal/icons"
	"github.com/llehouerou/muker/internal/playback"
	"github.com/llehouerou/muker/internal/playlist"
	"github.com/llehouerou/muker/internal/ui/render"
)

// State holds everything needed to render the player bar.
type State struct {
	PlaybackState playback.State
	Title         string
	Artist        string
	Album         string
	Position      time.Duration
	Duration      time.Duration
	Volume        float64
	Muted         bool
	RepeatMode    playlist.RepeatMode
	Shuffle       bool
}

// Height is the vertical space the bar occupies, borders included.
const Height = 3

// NewState snapshots the service into a renderable State.
func NewState(svc playback.Service) State {
	s := State{
		PlaybackState: svc.State(),
		Position:      svc.Position(),
		Duration:      svc.Duration(),
		Volume:        svc.Volume(),
		Muted:         svc.Muted(),
		RepeatMode:    svc.RepeatMode(),
		Shuffle:       svc.Shuffle(),
	}
	if track := svc.CurrentTrack(); track != nil {
		s.Title = track.DisplayTitle()
		s.Artist = track.Artist
		s.Album = track.Album
	}
	return s
}

// Render returns the player bar for the given width.
func Render(s State, width int) string {
	innerWidth := max(width-6, 0)

	status := statusSymbol(s.PlaybackState)

	title := s.Title
	if title == "" && s.PlaybackState != playback.StateStopped {
		title = "Unknown Track"
	}
	if s.PlaybackState == playback.StateStopped {
		title = "Nothing playing"
	}

	var infoParts []string
	if s.Artist != "" {
		infoParts = append(infoParts, s.Artist)
	}
	if s.Album != "" {
		infoParts = append(infoParts, s.Album)
	}
	info := strings.Join(infoParts, " · ")

	timeStr := fmt.Sprintf("%s / %s",
		playlist.FormatDuration(s.Position),
		playlist.FormatDuration(s.Duration))
	volume := renderVolume(s.Volume, s.Muted)
	modes := renderModes(s.RepeatMode, s.Shuffle)

	separator := "   "
	sepWidth := lipgloss.Width(separator)
	rightWidth := lipgloss.Width(timeStr) + sepWidth + lipgloss.Width(volume)
	if modes != "" {
		rightWidth += sepWidth + lipgloss.Width(modes)
	}
	statusWidth := lipgloss.Width(status) + 2

	minBarWidth := 10
	availableForContent := innerWidth - statusWidth - rightWidth - sepWidth*2 - minBarWidth

	titleWidth := lipgloss.Width(title)
	infoWidth := lipgloss.Width(info)

	var styledTitle, styledInfo string
	var usedContentWidth int

	switch {
	case titleWidth+sepWidth+infoWidth <= availableForContent:
		styledTitle = titleStyle.Render(title)
		styledInfo = artistStyle.Render(info)
		usedContentWidth = titleWidth + sepWidth + infoWidth
	case titleWidth+sepWidth <= availableForContent && info != "":
		maxInfo := availableForContent - titleWidth - sepWidth
		styledTitle = titleStyle.Render(title)
		styledInfo = artistStyle.Render(render.Truncate(info, maxInfo))
		usedContentWidth = titleWidth + sepWidth + maxInfo
	default:
		maxTitle := max(availableForContent, 10)
		styledTitle = titleStyle.Render(render.Truncate(title, maxTitle))
		styledInfo = ""
		usedContentWidth = min(titleWidth, maxTitle)
	}

	barWidth := max(innerWidth-usedContentWidth-statusWidth-rightWidth-sepWidth*2, 5)

	var ratio float64
	if s.Duration > 0 {
		ratio = float64(s.Position) / float64(s.Duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)
	progress := progressFilledStyle.Render(strings.Repeat("━", filled)) +
		progressEmptyStyle.Render(strings.Repeat("─", barWidth-filled))

	var content strings.Builder
	content.WriteString(styledTitle)
	if styledInfo != "" {
		content.WriteString(separator)
		content.WriteString(styledInfo)
	}
	content.WriteString(separator)
	content.WriteString(status)
	content.WriteString("  ")
	content.WriteString(progress)
	content.WriteString(separator)
	content.WriteString(timeStyle.Render(timeStr))
	if modes != "" {
		content.WriteString(separator)
		content.WriteString(modeStyle.Render(modes))
	}
	content.WriteString(separator)
	content.WriteString(volume)

	return barStyle.Padding(0, 2).Width(width - 2).Render(content.String())
}

func statusSymbol(s playback.State) string {
	switch s {
	case playback.StatePlaying:
		return icons.Play()
	case playback.StatePaused:
		return icons.Pause()
	case playback.StateLoading:
		return icons.Loading()
	default:
		return icons.Stop()
	}
}

// renderVolume renders the volume indicator, e.g. "♪ 80%" or "✕ 80%" muted.
func renderVolume(volume float64, muted bool) string {
	pct := int(volume * 100)
	icon := icons.Volume()
	if muted {
		icon = icons.VolumeMute()
	}
	return timeStyle.Render(fmt.Sprintf("%s %3d%%", icon, pct))
}

func renderModes(mode playlist.RepeatMode, shuffle bool) string {
	var parts []string
	if shuffle {
		parts = append(parts, icons.Shuffle())
	}
	switch mode {
	case playlist.RepeatAll:
		parts = append(parts, icons.RepeatAll())
	case playlist.RepeatOne:
		parts = append(parts, icons.RepeatOne())
	case playlist.RepeatOff:
	}
	return strings.Join(parts, " ")
}
