// Package lyricspanel shows lyrics for the current track, following
// the playback position when the lyrics are synced.
package lyricspanel

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/muker/internal/lyrics"
	"github.com/llehouerou/muker/internal/ui"
	"github.com/llehouerou/muker/internal/ui/render"
	"github.com/llehouerou/muker/internal/ui/styles"
)

// Model is the lyrics panel component.
type Model struct {
	ui.Base
	lyrics   *lyrics.Lyrics
	fetching bool
	active   int
	scroll   int
}

// New creates an empty lyrics panel.
func New() Model {
	return Model{active: -1}
}

// StartFetch blanks the panel and shows the fetching indicator until
// SetLyrics arrives for the new track.
func (m *Model) StartFetch() {
	m.lyrics = nil
	m.fetching = true
	m.active = -1
	m.scroll = 0
}

// SetLyrics installs fetched lyrics. nil means none were found.
func (m *Model) SetLyrics(l *lyrics.Lyrics) {
	m.lyrics = l
	m.fetching = false
	m.active = -1
	m.scroll = 0
}

// Reset clears the panel entirely.
func (m *Model) Reset() {
	m.lyrics = nil
	m.fetching = false
	m.active = -1
	m.scroll = 0
}

// SetPosition moves the highlight to the line active at pos. No-op
// for unsynced lyrics.
func (m *Model) SetPosition(pos time.Duration) {
	if m.lyrics == nil {
		return
	}
	m.active = m.lyrics.LineAt(pos)
}

// Update handles scroll keys while the panel is focused. Scrolling
// only applies to unsynced lyrics; synced lyrics follow playback.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() || m.lyrics == nil || m.lyrics.Synced() {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		m.scroll = max(m.scroll-1, 0)
	case "down", "j":
		maxScroll := max(len(m.lyrics.Lines)-m.innerHeight(), 0)
		m.scroll = min(m.scroll+1, maxScroll)
	case "g", "home":
		m.scroll = 0
	}
	return m, nil
}

func (m Model) innerHeight() int {
	return max(m.Height()-ui.BorderHeight, 1)
}

// View renders the panel for the current size.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := max(m.Width()-ui.BorderHeight, 0)
	innerHeight := m.innerHeight()

	var content string
	switch {
	case m.fetching:
		content = centeredNotice("Fetching lyrics...", innerWidth, innerHeight)
	case m.lyrics == nil || len(m.lyrics.Lines) == 0:
		content = centeredNotice("No lyrics", innerWidth, innerHeight)
	default:
		content = m.renderLines(innerWidth, innerHeight)
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderLines lays the lyric lines into the panel. Synced lyrics keep
// the active line vertically centered; unsynced lyrics start at the
// scroll offset.
func (m Model) renderLines(width, height int) string {
	top := m.scroll
	if m.lyrics.Synced() {
		top = m.active - height/2
		top = max(min(top, len(m.lyrics.Lines)-height), 0)
	}

	st := styles.T().S()
	rows := make([]string, 0, height)
	for i := range height {
		idx := top + i
		if idx < 0 || idx >= len(m.lyrics.Lines) {
			rows = append(rows, render.EmptyLine(width))
			continue
		}

		text := render.TruncateAndPad(m.lyrics.Lines[idx].Text, width)
		switch {
		case idx == m.active:
			rows = append(rows, st.Playing.Render(text))
		case m.lyrics.Synced() && m.active >= 0:
			rows = append(rows, st.Muted.Render(text))
		default:
			rows = append(rows, st.Base.Render(text))
		}
	}
	return strings.Join(rows, "\n")
}

func centeredNotice(text string, width, height int) string {
	rows := make([]string, 0, height)
	for i := range height {
		if i == height/2 {
			pad := max((width-len(text))/2, 0)
			line := strings.Repeat(" ", pad) + text
			rows = append(rows, styles.T().S().Muted.Render(render.TruncateAndPad(line, width)))
			continue
		}
		rows = append(rows, render.EmptyLine(width))
	}
	return strings.Join(rows, "\n")
}
