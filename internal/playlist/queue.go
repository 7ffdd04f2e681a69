package playlist

import "math/rand/v2"

// RepeatMode defines the repeat behavior.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "Off"
	case RepeatAll:
		return "All"
	case RepeatOne:
		return "One"
	default:
		return "Unknown"
	}
}

// Cycle returns the next repeat mode: Off -> All -> One -> Off.
func (m RepeatMode) Cycle() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatOff
	}
}

// Queue wraps a Playlist with a playback cursor, shuffle and repeat state.
//
// The cursor always holds a canonical index (or -1 when empty). Shuffle is
// realized as a derived traversal permutation over canonical indices,
// recomputed when shuffle is toggled on or the track collection changes;
// the canonical order itself is never mutated. Because the cursor stays
// canonical, toggling shuffle off restores the canonical position for free.
type Queue struct {
	playlist *Playlist
	current  int // canonical index, -1 if empty
	repeat   RepeatMode
	shuffle  bool
	order    []int // traversal permutation, populated while shuffle is on
}

// NewQueue creates a new empty queue.
func NewQueue() *Queue {
	return &Queue{
		playlist: NewPlaylist(),
		current:  -1,
	}
}

// Current returns the currently selected track, or nil if none.
func (q *Queue) Current() *Track {
	if q.current < 0 || q.current >= q.playlist.Len() {
		return nil
	}
	return q.playlist.Track(q.current)
}

// CurrentIndex returns the canonical index of the current track (-1 if none).
func (q *Queue) CurrentIndex() int {
	return q.current
}

// Next advances the cursor per the repeat/shuffle policy and returns the
// new current track. Returns nil (cursor unmoved) when there is no next
// track, which happens only with repeat off at the end of the traversal.
func (q *Queue) Next() *Track {
	if q.playlist.Len() == 0 {
		return nil
	}
	if q.repeat == RepeatOne {
		return q.Current()
	}

	if q.shuffle {
		pos := q.orderPos()
		switch {
		case pos+1 < len(q.order):
			q.current = q.order[pos+1]
		case q.repeat == RepeatAll:
			q.current = q.order[0]
		default:
			return nil
		}
		return q.Current()
	}

	switch {
	case q.current+1 < q.playlist.Len():
		q.current++
	case q.repeat == RepeatAll:
		q.current = 0
	default:
		return nil
	}
	return q.Current()
}

// Previous moves the cursor backwards per the repeat/shuffle policy and
// returns the new current track. Returns nil (cursor unmoved) when there
// is no previous track.
func (q *Queue) Previous() *Track {
	if q.playlist.Len() == 0 {
		return nil
	}
	if q.repeat == RepeatOne {
		return q.Current()
	}

	if q.shuffle {
		pos := q.orderPos()
		switch {
		case pos > 0:
			q.current = q.order[pos-1]
		case q.repeat == RepeatAll:
			q.current = q.order[len(q.order)-1]
		default:
			return nil
		}
		return q.Current()
	}

	switch {
	case q.current > 0:
		q.current--
	case q.repeat == RepeatAll:
		q.current = q.playlist.Len() - 1
	default:
		return nil
	}
	return q.Current()
}

// HasNext returns true if Next would return a track.
func (q *Queue) HasNext() bool {
	if q.playlist.Len() == 0 {
		return false
	}
	if q.repeat != RepeatOff {
		return true
	}
	if q.shuffle {
		return q.orderPos()+1 < len(q.order)
	}
	return q.current+1 < q.playlist.Len()
}

// JumpTo sets the cursor to the given canonical index.
// Returns the track at that position, or nil if invalid.
func (q *Queue) JumpTo(index int) *Track {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.current = index
	return q.Current()
}

// Add appends tracks without changing which track is current.
// An empty queue gets its cursor placed on the first added track.
func (q *Queue) Add(tracks ...Track) {
	if len(tracks) == 0 {
		return
	}
	q.playlist.Add(tracks...)
	if q.current < 0 {
		q.current = 0
	}
	q.refreshOrder()
}

// Replace clears the queue, adds tracks, and sets the cursor to 0.
// Returns the first track, or nil when called with no tracks.
func (q *Queue) Replace(tracks ...Track) *Track {
	q.playlist.Clear()
	q.current = -1
	if len(tracks) == 0 {
		q.order = nil
		return nil
	}
	q.playlist.Add(tracks...)
	q.current = 0
	q.refreshOrder()
	return q.Current()
}

// RemoveAt removes the track at the given canonical index, keeping the
// cursor on the same logical track when possible. Removing the current
// track leaves the cursor pointing at the next valid track.
func (q *Queue) RemoveAt(index int) bool {
	if !q.playlist.Remove(index) {
		return false
	}

	switch {
	case q.playlist.Len() == 0:
		q.current = -1
	case q.current > index:
		q.current--
	case q.current == index && q.current >= q.playlist.Len():
		q.current = q.playlist.Len() - 1
	}

	q.refreshOrder()
	return true
}

// Move relocates a track within the canonical order, keeping the
// cursor on the same logical track.
func (q *Queue) Move(from, to int) bool {
	if !q.playlist.Move(from, to) {
		return false
	}

	switch {
	case q.current == from:
		q.current = to
	case from < q.current && to >= q.current:
		q.current--
	case from > q.current && to <= q.current:
		q.current++
	}

	q.refreshOrder()
	return true
}

// Clear removes all tracks and resets the cursor.
func (q *Queue) Clear() {
	q.playlist.Clear()
	q.current = -1
	q.order = nil
}

// Tracks returns a copy of all tracks in canonical order.
func (q *Queue) Tracks() []Track {
	return q.playlist.Tracks()
}

// Len returns the number of tracks in the queue.
func (q *Queue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return q.playlist.Len() == 0
}

// RepeatMode returns the current repeat mode.
func (q *Queue) RepeatMode() RepeatMode {
	return q.repeat
}

// SetRepeatMode sets the repeat mode.
func (q *Queue) SetRepeatMode(mode RepeatMode) {
	q.repeat = mode
}

// CycleRepeatMode advances to the next repeat mode and returns it.
func (q *Queue) CycleRepeatMode() RepeatMode {
	q.repeat = q.repeat.Cycle()
	return q.repeat
}

// Shuffle returns whether shuffle is enabled.
func (q *Queue) Shuffle() bool {
	return q.shuffle
}

// SetShuffle enables or disables shuffle. Enabling computes a fresh
// traversal permutation; disabling drops it. The cursor keeps pointing
// at the same track either way.
func (q *Queue) SetShuffle(enabled bool) {
	if q.shuffle == enabled {
		return
	}
	q.shuffle = enabled
	if enabled {
		q.reshuffle()
	} else {
		q.order = nil
	}
}

// ToggleShuffle flips shuffle and returns the new state.
func (q *Queue) ToggleShuffle() bool {
	q.SetShuffle(!q.shuffle)
	return q.shuffle
}

// reshuffle recomputes the traversal permutation. The current track is
// pinned to the front so every other track is still ahead of it; a
// random pin position would strand the tracks drawn before it when
// repeat is off.
func (q *Queue) reshuffle() {
	n := q.playlist.Len()
	q.order = rand.Perm(n)
	if q.current < 0 {
		return
	}
	for i, idx := range q.order {
		if idx == q.current {
			q.order[0], q.order[i] = q.order[i], q.order[0]
			break
		}
	}
}

// refreshOrder recomputes the permutation after a content change.
func (q *Queue) refreshOrder() {
	if q.shuffle {
		q.reshuffle()
	}
}

// orderPos returns the position of the current canonical index within the
// traversal permutation, or 0 if not found.
func (q *Queue) orderPos() int {
	for i, idx := range q.order {
		if idx == q.current {
			return i
		}
	}
	return 0
}
