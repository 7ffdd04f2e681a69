// Package app assembles the TUI: playback service, visualizer
// pipeline, panels, and persistence.
package app

import (
	"github.com/llehouerou/muker/internal/config"
	"github.com/llehouerou/muker/internal/keymap"
	"github.com/llehouerou/muker/internal/lyrics"
	"github.com/llehouerou/muker/internal/mpris"
	"github.com/llehouerou/muker/internal/notify"
	"github.com/llehouerou/muker/internal/playback"
	"github.com/llehouerou/muker/internal/player"
	"github.com/llehouerou/muker/internal/playlist"
	"github.com/llehouerou/muker/internal/spotify"
	"github.com/llehouerou/muker/internal/state"
	"github.com/llehouerou/muker/internal/ui/lyricspanel"
	"github.com/llehouerou/muker/internal/ui/queuepanel"
	"github.com/llehouerou/muker/internal/ui/styles"
	"github.com/llehouerou/muker/internal/ui/visualizerpanel"
	"github.com/llehouerou/muker/internal/visualizer"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// FocusTarget identifies which panel receives navigation keys.
type FocusTarget int

const (
	FocusQueue FocusTarget = iota
	FocusVisualizer
)

// defaultSampleRate seeds the analyzer before the first track loads.
const defaultSampleRate = 44100

// Model is the root application model.
type Model struct {
	Service     playback.Service
	StateMgr    state.Interface
	Analyzer    *visualizer.Analyzer
	Scheduler   *visualizer.Scheduler
	QueuePanel  queuepanel.Model
	VizPanel    visualizerpanel.Model
	LyricsPanel lyricspanel.Model
	Lyrics      *lyrics.Source
	Enricher    *spotify.Enricher
	Notifier    notify.Notifier
	Mpris       *mpris.Adapter

	Focus         FocusTarget
	QueueVisible  bool
	LyricsVisible bool
	ErrorMsg      string
	Width         int
	Height        int

	LibrarySources []string
	StartupSummary string
	Spinner        spinner.Model
	Scanning       bool

	sub      *playback.Subscription
	resolver *keymap.Resolver
	notifyID uint32
}

// New builds the application model around an audio player. Saved state
// is restored before the playback service sees the queue, so nothing
// starts playing on launch.
func New(cfg *config.Config, stateMgr state.Interface, p player.Interface) (Model, error) {
	queue := playlist.NewQueue()

	ps, err := stateMgr.GetPlayer()
	if err != nil {
		return Model{}, err
	}

	if tracks, qerr := stateMgr.GetQueue(); qerr == nil && len(tracks) > 0 {
		queue.Add(tracks...)
		if ps.CurrentIndex >= 0 && ps.CurrentIndex < queue.Len() {
			queue.JumpTo(ps.CurrentIndex)
		}
	}
	queue.SetRepeatMode(playlist.RepeatMode(ps.RepeatMode))
	queue.SetShuffle(ps.Shuffle)

	p.SetVolume(ps.Volume)
	p.SetMuted(ps.Muted)

	service := playback.New(p, queue)

	vizCfg := cfg.GetVisualizerConfig()
	analyzer := visualizer.NewAnalyzer(vizCfg.FFTSize, vizCfg.Bands, defaultSampleRate)
	scheduler := visualizer.NewScheduler(p.Tap(), analyzer, vizCfg.FPS)

	// Saved style wins over the config default.
	styleName := ps.VisualizerStyle
	if styleName == "" {
		styleName = vizCfg.Style
	}
	if style, perr := visualizer.ParseStyle(styleName); perr == nil {
		scheduler.SetStyle(style)
	}

	notifier, err := notify.New()
	if err != nil {
		notifier = nil
	}

	qp := queuepanel.New(service)
	qp.SetFocused(true)

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.T().S().Muted),
	)

	return Model{
		Service:        service,
		StateMgr:       stateMgr,
		Analyzer:       analyzer,
		Scheduler:      scheduler,
		QueuePanel:     qp,
		VizPanel:       visualizerpanel.New(),
		LyricsPanel:    lyricspanel.New(),
		Lyrics:         lyrics.NewSource(),
		Enricher:       spotify.NewEnricher(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret),
		Notifier:       notifier,
		Focus:          FocusQueue,
		QueueVisible:   true,
		LibrarySources: cfg.LibrarySources,
		Spinner:        sp,
		Scanning:       service.QueueIsEmpty() && len(cfg.LibrarySources) > 0,
		sub:            service.Subscribe(),
		resolver:       keymap.NewResolver(keymap.All),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		vizTickCmd(m.Scheduler.Interval()),
		waitEventCmd(m.sub),
		waitStderrCmd(),
	}
	if m.Scanning {
		cmds = append(cmds, loadLibraryCmd(m.LibrarySources, m.Enricher), m.Spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Shutdown persists everything and tears down the audio stack. Called
// on quit.
func (m *Model) Shutdown() {
	m.savePlayerStateNow()
	_ = m.StateMgr.SaveQueue(queueAsPlaylist(m.Service.QueueTracks()))

	if m.Mpris != nil {
		_ = m.Mpris.Close()
	}
	_ = m.Service.Close()
	_ = m.StateMgr.Close()
}

func (m *Model) playerState() state.PlayerState {
	return state.PlayerState{
		Volume:          m.Service.Volume(),
		Muted:           m.Service.Muted(),
		VisualizerStyle: m.Scheduler.Style().String(),
		RepeatMode:      int(m.Service.RepeatMode()),
		Shuffle:         m.Service.Shuffle(),
		CurrentIndex:    m.Service.QueueCurrentIndex(),
	}
}

func (m *Model) savePlayerState() {
	m.StateMgr.SavePlayer(m.playerState())
}

func (m *Model) savePlayerStateNow() {
	_ = m.StateMgr.SavePlayerNow(m.playerState())
}

func queueAsPlaylist(tracks []playback.Track) []playlist.Track {
	result := make([]playlist.Track, len(tracks))
	for i, t := range tracks {
		result[i] = playlist.Track{
			Path:        t.Path,
			Title:       t.Title,
			Artist:      t.Artist,
			Album:       t.Album,
			TrackNumber: t.TrackNumber,
			Duration:    t.Duration,
		}
	}
	return result
}
