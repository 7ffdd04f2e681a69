package player

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_IsActive(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsActive(); got != tt.want {
				t.Errorf("State.IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_CanPause(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.CanPause(); got != tt.want {
				t.Errorf("State.CanPause() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_CanResume(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, false},
		{Paused, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.CanResume(); got != tt.want {
				t.Errorf("State.CanResume() = %v, want %v", got, tt.want)
			}
		})
	}
}
