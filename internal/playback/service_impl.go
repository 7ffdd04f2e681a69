// internal/playback/service_impl.go
package playback

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/llehouerou/muker/internal/player"
	"github.com/llehouerou/muker/internal/playlist"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	mu sync.RWMutex

	player player.Interface
	queue  *playlist.Queue
	state  State

	subs   []*Subscription
	subsMu sync.RWMutex

	done   chan struct{}
	closed bool
}

// New creates a playback service over the given player and queue and
// starts watching for end-of-stream to drive automatic track advance.
func New(p player.Interface, q *playlist.Queue) Service {
	s := &serviceImpl{
		player: p,
		queue:  q,
		state:  StateStopped,
		done:   make(chan struct{}),
	}
	go s.watchFinished()
	return s
}

// watchFinished advances the queue when a track plays to its end.
func (s *serviceImpl) watchFinished() {
	for {
		select {
		case <-s.done:
			return
		case <-s.player.FinishedChan():
			s.handleTrackFinished()
		}
	}
}

func (s *serviceImpl) handleTrackFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying {
		return
	}

	prev, prevIdx := s.currentTrackLocked(), s.queue.CurrentIndex()
	if next := s.queue.Next(); next == nil {
		s.stopLocked()
		return
	}
	_ = s.playCurrentLocked(prev, prevIdx)
}

// Play starts playback of the current queue track. From Paused it
// resumes; while Playing it is a no-op.
func (s *serviceImpl) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StatePlaying, StateLoading:
		return nil
	case StatePaused:
		return s.resumeLocked()
	}

	if s.queue.IsEmpty() {
		return nil
	}
	prev, prevIdx := s.currentTrackLocked(), s.queue.CurrentIndex()
	return s.playCurrentLocked(prev, prevIdx)
}

// PlayIndex jumps the queue to index and starts playback there.
func (s *serviceImpl) PlayIndex(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, prevIdx := s.currentTrackLocked(), s.queue.CurrentIndex()
	if s.queue.JumpTo(index) == nil {
		return fmt.Errorf("queue index %d out of range", index)
	}
	return s.playCurrentLocked(prev, prevIdx)
}

// playCurrentLocked loads and plays the queue's current track. On load
// failure the previous session is already released and the controller
// stays Stopped; on device loss it parks in Paused so the user can
// retry without losing the session.
func (s *serviceImpl) playCurrentLocked(prev *Track, prevIdx int) error {
	t := s.queue.Current()
	if t == nil {
		return s.stopLocked()
	}

	s.setStateLocked(StateLoading)

	if err := s.player.Play(t.Path); err != nil {
		wrapped := fmt.Errorf("%w: %w", player.ErrLoadFailed, err)
		if errors.Is(err, player.ErrDeviceLost) {
			s.setStateLocked(StatePaused)
		} else {
			s.setStateLocked(StateStopped)
		}
		s.broadcastError("play", t.Path, wrapped)
		return wrapped
	}

	s.setStateLocked(StatePlaying)
	s.broadcastTrack(TrackChange{
		Previous:      prev,
		Current:       s.currentTrackLocked(),
		PreviousIndex: prevIdx,
		Index:         s.queue.CurrentIndex(),
	})
	return nil
}

// Pause pauses playback. Tolerant no-op unless Playing.
func (s *serviceImpl) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying {
		return nil
	}
	s.player.Pause()
	s.setStateLocked(StatePaused)
	return nil
}

// Resume resumes paused playback. Tolerant no-op unless Paused.
func (s *serviceImpl) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resumeLocked()
}

func (s *serviceImpl) resumeLocked() error {
	if s.state != StatePaused {
		return nil
	}
	s.player.Resume()
	s.setStateLocked(StatePlaying)
	return nil
}

// Toggle toggles between playing and paused; starts playback if stopped.
func (s *serviceImpl) Toggle() error {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()

	switch state {
	case StatePlaying:
		return s.Pause()
	case StatePaused:
		return s.Resume()
	default:
		return s.Play()
	}
}

// Stop stops playback and releases the session.
func (s *serviceImpl) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopLocked()
}

func (s *serviceImpl) stopLocked() error {
	s.player.Stop()
	s.setStateLocked(StateStopped)
	return nil
}

// Next advances per the repeat/shuffle policy. No next track stops
// playback.
func (s *serviceImpl) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, prevIdx := s.currentTrackLocked(), s.queue.CurrentIndex()
	if s.queue.Next() == nil {
		return s.stopLocked()
	}
	if s.state.IsActive() {
		return s.playCurrentLocked(prev, prevIdx)
	}
	s.broadcastQueueLocked()
	return nil
}

// Previous moves back per the repeat/shuffle policy.
func (s *serviceImpl) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, prevIdx := s.currentTrackLocked(), s.queue.CurrentIndex()
	if s.queue.Previous() == nil {
		return nil
	}
	if s.state.IsActive() {
		return s.playCurrentLocked(prev, prevIdx)
	}
	s.broadcastQueueLocked()
	return nil
}

// Seek moves playback by a relative delta.
func (s *serviceImpl) Seek(delta time.Duration) error {
	return s.SeekTo(s.Position() + delta)
}

// SeekTo moves playback to an absolute position, clamped to
// [0, duration].
func (s *serviceImpl) SeekTo(position time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsActive() {
		return nil
	}

	if position < 0 {
		position = 0
	}
	if d := s.player.Duration(); position > d {
		position = d
	}

	s.player.SeekTo(position)
	s.broadcastPosition(position)
	return nil
}

// SetVolume sets the volume level, clamped to [0, 1].
func (s *serviceImpl) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.SetVolume(level)
	s.broadcastVolume()
}

// Volume returns the current volume level.
func (s *serviceImpl) Volume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Volume()
}

// SetMuted sets the muted state.
func (s *serviceImpl) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.SetMuted(muted)
	s.broadcastVolume()
}

// Muted returns true if audio is muted.
func (s *serviceImpl) Muted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Muted()
}

// ToggleMute flips the muted state and returns it.
func (s *serviceImpl) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	muted := !s.player.Muted()
	s.player.SetMuted(muted)
	s.broadcastVolume()
	return muted
}

// AddTracks appends tracks to the queue.
func (s *serviceImpl) AddTracks(tracks ...playlist.Track) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Add(tracks...)
	s.broadcastQueueLocked()
}

// ReplaceTracks replaces the queue contents.
func (s *serviceImpl) ReplaceTracks(tracks ...playlist.Track) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Replace(tracks...)
	s.broadcastQueueLocked()
}

// RemoveTrack removes the track at index. Removing the playing track
// starts the track that takes its place, or stops when the queue
// empties.
func (s *serviceImpl) RemoveTrack(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasCurrent := index == s.queue.CurrentIndex()
	wasActive := s.state.IsActive()
	prev, prevIdx := s.currentTrackLocked(), s.queue.CurrentIndex()

	if !s.queue.RemoveAt(index) {
		return fmt.Errorf("queue index %d out of range", index)
	}
	s.broadcastQueueLocked()

	if !wasCurrent {
		return nil
	}
	if s.queue.IsEmpty() {
		return s.stopLocked()
	}
	if wasActive {
		return s.playCurrentLocked(prev, prevIdx)
	}
	return nil
}

// MoveTrack relocates a track within the queue.
func (s *serviceImpl) MoveTrack(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.queue.Move(from, to) {
		return false
	}
	s.broadcastQueueLocked()
	return true
}

// ClearQueue stops playback and empties the queue.
func (s *serviceImpl) ClearQueue() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.stopLocked()
	s.queue.Clear()
	s.broadcastQueueLocked()
}

// State returns the controller state.
func (s *serviceImpl) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *serviceImpl) IsPlaying() bool { return s.State() == StatePlaying }

func (s *serviceImpl) IsPaused() bool { return s.State() == StatePaused }

func (s *serviceImpl) IsStopped() bool { return s.State() == StateStopped }

// Position returns the current playback position.
func (s *serviceImpl) Position() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Position()
}

// Duration returns the current track duration.
func (s *serviceImpl) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Duration()
}

// CurrentTrack returns the current track, or nil if none.
func (s *serviceImpl) CurrentTrack() *Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTrackLocked()
}

func (s *serviceImpl) currentTrackLocked() *Track {
	t := s.queue.Current()
	if t == nil {
		return nil
	}
	c := toTrack(*t)
	return &c
}

func toTrack(t playlist.Track) Track {
	return Track{
		Path:        t.Path,
		Title:       t.Title,
		Artist:      t.Artist,
		Album:       t.Album,
		TrackNumber: t.TrackNumber,
		Duration:    t.Duration,
	}
}

// StreamInfo returns decoded-stream attributes of the loaded track.
func (s *serviceImpl) StreamInfo() *player.StreamInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player.Info()
}

// Player exposes the underlying player for UI rendering (tap reads).
func (s *serviceImpl) Player() player.Interface {
	return s.player
}

// QueueTracks returns a copy of all tracks in the queue.
func (s *serviceImpl) QueueTracks() []Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tracks := s.queue.Tracks()
	result := make([]Track, len(tracks))
	for i, t := range tracks {
		result[i] = toTrack(t)
	}
	return result
}

// QueueCurrentIndex returns the current queue index (-1 if none).
func (s *serviceImpl) QueueCurrentIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.CurrentIndex()
}

// QueueLen returns the number of tracks in the queue.
func (s *serviceImpl) QueueLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Len()
}

// QueueIsEmpty returns true if the queue has no tracks.
func (s *serviceImpl) QueueIsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.IsEmpty()
}

// QueueHasNext returns true if the queue has a next track.
func (s *serviceImpl) QueueHasNext() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.HasNext()
}

// RepeatMode returns the current repeat mode.
func (s *serviceImpl) RepeatMode() playlist.RepeatMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.RepeatMode()
}

// SetRepeatMode sets the repeat mode.
func (s *serviceImpl) SetRepeatMode(mode playlist.RepeatMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.SetRepeatMode(mode)
	s.broadcastModeLocked()
}

// CycleRepeatMode advances the repeat mode and returns it.
func (s *serviceImpl) CycleRepeatMode() playlist.RepeatMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	mode := s.queue.CycleRepeatMode()
	s.broadcastModeLocked()
	return mode
}

// Shuffle returns whether shuffle is enabled.
func (s *serviceImpl) Shuffle() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Shuffle()
}

// SetShuffle enables or disables shuffle.
func (s *serviceImpl) SetShuffle(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.SetShuffle(enabled)
	s.broadcastModeLocked()
}

// ToggleShuffle flips shuffle and returns the new state.
func (s *serviceImpl) ToggleShuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	enabled := s.queue.ToggleShuffle()
	s.broadcastModeLocked()
	return enabled
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close shuts down the service and releases the player.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	s.player.Stop()
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return nil
}

// setStateLocked updates the state and notifies subscribers on change.
func (s *serviceImpl) setStateLocked(next State) {
	if s.state == next {
		return
	}
	prev := s.state
	s.state = next
	s.forEachSub(func(sub *Subscription) {
		sub.sendState(StateChange{Previous: prev, Current: next})
	})
}

func (s *serviceImpl) broadcastTrack(e TrackChange) {
	s.forEachSub(func(sub *Subscription) { sub.sendTrack(e) })
}

func (s *serviceImpl) broadcastPosition(pos time.Duration) {
	s.forEachSub(func(sub *Subscription) { sub.sendPosition(pos) })
}

func (s *serviceImpl) broadcastQueueLocked() {
	e := QueueChange{Index: s.queue.CurrentIndex()}
	for _, t := range s.queue.Tracks() {
		e.Tracks = append(e.Tracks, toTrack(t))
	}
	s.forEachSub(func(sub *Subscription) { sub.sendQueue(e) })
}

func (s *serviceImpl) broadcastModeLocked() {
	e := ModeChange{RepeatMode: s.queue.RepeatMode(), Shuffle: s.queue.Shuffle()}
	s.forEachSub(func(sub *Subscription) { sub.sendMode(e) })
}

func (s *serviceImpl) broadcastVolume() {
	e := VolumeChange{Level: s.player.Volume(), Muted: s.player.Muted()}
	s.forEachSub(func(sub *Subscription) { sub.sendVolume(e) })
}

func (s *serviceImpl) broadcastError(op, path string, err error) {
	e := ErrorEvent{Operation: op, Path: path, Err: err}
	s.forEachSub(func(sub *Subscription) { sub.sendError(e) })
}

func (s *serviceImpl) forEachSub(fn func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		fn(sub)
	}
}
