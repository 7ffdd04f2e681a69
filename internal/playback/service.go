package playback

import (
	"time"

	"github.com/llehouerou/muker/internal/player"
	"github.com/llehouerou/muker/internal/playlist"
)

// Service defines the playback service contract.
type Service interface {
	// Playback control
	Play() error
	PlayIndex(index int) error
	Pause() error
	Resume() error
	Toggle() error
	Stop() error
	Next() error
	Previous() error
	Seek(delta time.Duration) error
	SeekTo(position time.Duration) error

	// Volume control
	SetVolume(level float64)
	Volume() float64
	SetMuted(muted bool)
	Muted() bool
	ToggleMute() bool

	// Queue manipulation
	AddTracks(tracks ...playlist.Track)
	ReplaceTracks(tracks ...playlist.Track)
	RemoveTrack(index int) error
	MoveTrack(from, to int) bool
	ClearQueue()

	// State queries
	State() State
	IsPlaying() bool
	IsPaused() bool
	IsStopped() bool
	Position() time.Duration
	Duration() time.Duration
	CurrentTrack() *Track
	StreamInfo() *player.StreamInfo
	Player() player.Interface // Direct player access (tap reads for the visualizer)

	// Queue queries
	QueueTracks() []Track
	QueueCurrentIndex() int
	QueueLen() int
	QueueIsEmpty() bool
	QueueHasNext() bool

	// Mode control
	RepeatMode() playlist.RepeatMode
	SetRepeatMode(mode playlist.RepeatMode)
	CycleRepeatMode() playlist.RepeatMode
	Shuffle() bool
	SetShuffle(enabled bool)
	ToggleShuffle() bool

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
