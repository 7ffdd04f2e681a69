package playback

import (
	"testing"
	"time"
)

func TestSubscription_NonBlockingSend(t *testing.T) {
	sub := newSubscription()

	// Overfill the buffer; sends must drop, never block
	for range eventBufferSize + 5 {
		sub.sendState(StateChange{Previous: StateStopped, Current: StatePlaying})
	}

	received := 0
	for {
		select {
		case <-sub.StateChanged:
			received++
		default:
			if received != eventBufferSize {
				t.Errorf("received %d events, want buffer size %d", received, eventBufferSize)
			}
			return
		}
	}
}

func TestSubscription_Close(t *testing.T) {
	sub := newSubscription()
	sub.close()

	select {
	case <-sub.Done:
	case <-time.After(time.Second):
		t.Error("Done not signalled after close")
	}
}

func TestSubscription_AllChannels(t *testing.T) {
	sub := newSubscription()

	sub.sendTrack(TrackChange{Index: 2})
	sub.sendPosition(3 * time.Second)
	sub.sendQueue(QueueChange{Index: 1})
	sub.sendMode(ModeChange{Shuffle: true})
	sub.sendVolume(VolumeChange{Level: 0.5})
	sub.sendError(ErrorEvent{Operation: "play"})

	if e := <-sub.TrackChanged; e.Index != 2 {
		t.Errorf("TrackChange.Index = %d, want 2", e.Index)
	}
	if e := <-sub.PositionChanged; e.Position != 3*time.Second {
		t.Errorf("PositionChange = %v, want 3s", e.Position)
	}
	if e := <-sub.QueueChanged; e.Index != 1 {
		t.Errorf("QueueChange.Index = %d, want 1", e.Index)
	}
	if e := <-sub.ModeChanged; !e.Shuffle {
		t.Error("ModeChange.Shuffle = false, want true")
	}
	if e := <-sub.VolumeChanged; e.Level != 0.5 {
		t.Errorf("VolumeChange.Level = %v, want 0.5", e.Level)
	}
	if e := <-sub.Error; e.Operation != "play" {
		t.Errorf("ErrorEvent.Operation = %q, want play", e.Operation)
	}
}
