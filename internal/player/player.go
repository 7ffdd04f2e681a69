package player

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/muker/internal/tags"
)

// tapFrames is the sample-tap capacity in stereo frames, roughly the
// last 190ms of output at 44.1kHz. Large enough for a 4096-point FFT.
const tapFrames = 8192

// speakerInitTimeout bounds the device claim so a hung audio backend
// surfaces as ErrDeviceLost instead of blocking the controller.
const speakerInitTimeout = 5 * time.Second

// StreamInfo describes the decoded stream attributes of the loaded
// track. These are fixed at load time and never change.
type StreamInfo struct {
	Path       string
	Codec      string
	SampleRate int
	Channels   int
	Duration   time.Duration
	Bitrate    int // kbps, averaged over the whole file
}

// newStreamInfo derives the stream attributes from the decoded format
// and stream length in samples.
func newStreamInfo(path, codec string, format beep.Format, lengthSamples int) *StreamInfo {
	duration := format.SampleRate.D(lengthSamples)
	return &StreamInfo{
		Path:       path,
		Codec:      codec,
		SampleRate: int(format.SampleRate),
		Channels:   format.NumChannels,
		Duration:   duration,
		Bitrate:    tags.EstimateBitrate(path, duration),
	}
}

// Player owns the decode-to-output audio pipeline for one track at a
// time. The pipeline is decode → resample → volume → tap → ctrl →
// speaker, with the tap placed at the submission point so it mirrors
// what the device is pulling rather than decode-ahead.
type Player struct {
	state    State
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	tap      *Tap
	streamer beep.StreamSeekCloser
	format   beep.Format
	file     *os.File
	info     *StreamInfo

	volumeLevel float64
	muted       bool

	done       chan struct{}
	finishedCh chan struct{}
	seekCh     chan time.Duration
	onFinished func()
}

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// New creates a stopped player. The audio device is claimed lazily on
// the first Play.
func New() *Player {
	p := &Player{
		state:       Stopped,
		tap:         NewTap(tapFrames),
		volumeLevel: 1.0,
		done:        make(chan struct{}),
		finishedCh:  make(chan struct{}, 1),
		seekCh:      make(chan time.Duration, 1),
	}
	close(p.done)
	go p.seekLoop()
	return p
}

// Play starts playback of the given audio file, releasing any current
// session first.
func (p *Player) Play(path string) error {
	p.Stop()

	// Let any pending end-of-stream callback settle after speaker.Clear()
	time.Sleep(10 * time.Millisecond)

	// Drain a stale finish signal from the previous track
	select {
	case <-p.finishedCh:
	default:
	}

	f, streamer, format, codec, err := openStream(path)
	if err != nil {
		return err
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		if err := initSpeaker(speakerSampleRate); err != nil {
			streamer.Close()
			f.Close()
			return err
		}
		speakerInitialized = true
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.info = newStreamInfo(path, codec, format, streamer.Len())

	// Later tracks may not match the rate the device was opened at
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}

	// The tap wraps the volume stage so it mirrors what actually reaches
	// the device, silence included.
	p.tap.Reset()
	p.volume = &effects.Volume{Streamer: playStreamer, Base: 2, Volume: levelToVolume(p.volumeLevel), Silent: p.muted}
	p.ctrl = &beep.Ctrl{Streamer: &tapped{s: p.volume, tap: p.tap}, Paused: false}

	p.state = Playing
	p.done = make(chan struct{})

	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		close(p.done)
		select {
		case p.finishedCh <- struct{}{}:
		default:
		}
		if p.onFinished != nil {
			p.onFinished()
		}
	})))

	return nil
}

// initSpeaker claims the audio device with a bounded timeout.
func initSpeaker(rate beep.SampleRate) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- speaker.Init(rate, rate.N(time.Second/10))
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDeviceLost, err)
		}
		return nil
	case <-time.After(speakerInitTimeout):
		return fmt.Errorf("%w: device claim timed out after %s", ErrDeviceLost, speakerInitTimeout)
	}
}

// State returns the current playback state.
func (p *Player) State() State { return p.state }

// Info returns the loaded track's stream attributes, or nil when stopped.
func (p *Player) Info() *StreamInfo { return p.info }

// Duration returns the loaded track's total duration.
func (p *Player) Duration() time.Duration {
	if p.info == nil {
		return 0
	}
	return p.info.Duration
}

// Tap exposes the sample ring mirroring device output, for the
// visualizer's snapshot reads.
func (p *Player) Tap() *Tap { return p.tap }

// OnFinished registers a callback invoked when the stream ends.
func (p *Player) OnFinished(fn func()) { p.onFinished = fn }

// FinishedChan signals end-of-stream. Buffered; the send never blocks
// the audio callback.
func (p *Player) FinishedChan() <-chan struct{} { return p.finishedCh }

// Done is closed when the current session ends, by completion or Stop.
func (p *Player) Done() <-chan struct{} { return p.done }
