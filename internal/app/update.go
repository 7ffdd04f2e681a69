package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/muker/internal/errmsg"
	"github.com/llehouerou/muker/internal/keymap"
)

// seekStep is how far arrow-key seeks move.
const seekStep = 5 * time.Second

// volumeStep is the volume change per keypress.
const volumeStep = 0.05

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case vizTickMsg:
		m.pumpFrame()
		if m.LyricsVisible {
			m.LyricsPanel.SetPosition(m.Service.Position())
		}
		return m, vizTickCmd(m.Scheduler.Interval())

	case lyricsMsg:
		return m.handleLyrics(msg)

	case eventMsg:
		return m.handleEvent(msg)

	case subClosedMsg:
		return m, nil

	case libraryLoadedMsg:
		if m.Service.QueueIsEmpty() && len(msg.tracks) > 0 {
			m.Service.AddTracks(msg.tracks...)
		}
		m.StartupSummary = msg.summary
		m.Scanning = false
		return m, nil

	case spinner.TickMsg:
		if !m.Scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case notifySentMsg:
		m.notifyID = msg.id
		return m, nil

	case stderrLineMsg:
		m.ErrorMsg = string(msg)
		return m, waitStderrCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ErrorMsg = ""

	switch m.resolver.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.Shutdown()
		return m, tea.Quit

	case keymap.ActionSwitchFocus:
		m.toggleFocus()
		return m, nil

	case keymap.ActionToggleQueue:
		m.QueueVisible = !m.QueueVisible
		if !m.QueueVisible && m.Focus == FocusQueue {
			m.toggleFocus()
		}
		m.layout()
		return m, nil

	case keymap.ActionPlayPause:
		if err := m.Service.Toggle(); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpPlaybackStart, err)
		}
		return m, nil

	case keymap.ActionStop:
		_ = m.Service.Stop()
		return m, nil

	case keymap.ActionNext:
		if err := m.Service.Next(); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpPlaybackNext, err)
		}
		return m, nil

	case keymap.ActionPrevious:
		if err := m.Service.Previous(); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpPlaybackPrev, err)
		}
		return m, nil

	case keymap.ActionSeekFwd:
		_ = m.Service.Seek(seekStep)
		return m, nil

	case keymap.ActionSeekBack:
		_ = m.Service.Seek(-seekStep)
		return m, nil

	case keymap.ActionVolumeUp:
		m.Service.SetVolume(m.Service.Volume() + volumeStep)
		return m, nil

	case keymap.ActionVolumeDown:
		m.Service.SetVolume(m.Service.Volume() - volumeStep)
		return m, nil

	case keymap.ActionToggleMute:
		m.Service.ToggleMute()
		return m, nil

	case keymap.ActionCycleRepeat:
		m.Service.CycleRepeatMode()
		return m, nil

	case keymap.ActionToggleShuffle:
		m.Service.ToggleShuffle()
		return m, nil

	case keymap.ActionCycleStyle:
		m.Scheduler.CycleStyle()
		m.savePlayerState()
		return m, nil

	case keymap.ActionToggleLyrics:
		m.LyricsVisible = !m.LyricsVisible
		m.layout()
		if m.LyricsVisible {
			if track := m.Service.CurrentTrack(); track != nil {
				m.LyricsPanel.StartFetch()
				return m, fetchLyricsCmd(m.Lyrics, *track)
			}
			m.LyricsPanel.Reset()
		}
		return m, nil
	}

	// Unbound keys go to the focused panel.
	switch {
	case m.Focus == FocusQueue && m.QueueVisible:
		var cmd tea.Cmd
		m.QueuePanel, cmd = m.QueuePanel.Update(msg)
		return m, cmd
	case m.Focus == FocusVisualizer && m.LyricsVisible:
		var cmd tea.Cmd
		m.LyricsPanel, cmd = m.LyricsPanel.Update(msg)
		return m, cmd
	}
	return m, nil
}

// pumpFrame advances the render scheduler one tick and feeds the
// freshest frame to the panel.
func (m *Model) pumpFrame() {
	if !m.Service.State().IsActive() {
		m.VizPanel.Reset()
		return
	}

	m.Scheduler.Tick()
	select {
	case frame := <-m.Scheduler.Frames():
		m.VizPanel.SetFrame(frame)
	default:
	}
}

func (m Model) handleEvent(msg eventMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{waitEventCmd(m.sub)}

	switch {
	case msg.state != nil:
		m.savePlayerState()

	case msg.track != nil:
		if info := m.Service.StreamInfo(); info != nil && info.SampleRate > 0 {
			m.Analyzer.SetSampleRate(float64(info.SampleRate))
		}
		m.QueuePanel.FollowCurrent()
		m.savePlayerState()
		if msg.track.Current != nil {
			if cmd := notifyCmd(m.Notifier, *msg.track.Current, m.notifyID); cmd != nil {
				cmds = append(cmds, cmd)
			}
			if m.LyricsVisible {
				m.LyricsPanel.StartFetch()
				cmds = append(cmds, fetchLyricsCmd(m.Lyrics, *msg.track.Current))
			}
		} else {
			m.LyricsPanel.Reset()
		}

	case msg.queue != nil:
		if err := m.StateMgr.SaveQueue(queueAsPlaylist(m.Service.QueueTracks())); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpQueueSave, err)
		}

	case msg.mode != nil, msg.volume != nil:
		m.savePlayerState()

	case msg.err != nil:
		m.ErrorMsg = errmsg.FormatWith(errmsg.Op(msg.err.Operation), msg.err.Path, msg.err.Err)
	}

	return m, tea.Batch(cmds...)
}

// handleLyrics installs a fetched result, dropping it when the track
// changed while the fetch was in flight.
func (m Model) handleLyrics(msg lyricsMsg) (tea.Model, tea.Cmd) {
	track := m.Service.CurrentTrack()
	if track == nil || track.Path != msg.path {
		return m, nil
	}

	m.LyricsPanel.SetLyrics(msg.result.Lyrics)
	if msg.result.Err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpLyricsFetch, msg.result.Err)
	}
	return m, nil
}

func (m *Model) toggleFocus() {
	if m.Focus == FocusQueue {
		m.Focus = FocusVisualizer
	} else {
		m.Focus = FocusQueue
	}
	m.QueuePanel.SetFocused(m.Focus == FocusQueue && m.QueueVisible)
	m.VizPanel.SetFocused(m.Focus == FocusVisualizer)
	m.LyricsPanel.SetFocused(m.Focus == FocusVisualizer)
}
