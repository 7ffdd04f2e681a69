package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 3},
		{"playback context", "playback", 8},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestByContextGlobalBindings(t *testing.T) {
	globalBindings := ByContext("global")

	expectedActions := []Action{
		ActionQuit,
		ActionSwitchFocus,
		ActionToggleQueue,
	}

	for _, action := range expectedActions {
		found := false
		for _, b := range globalBindings {
			if b.Action == action {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected action %q in global bindings", action)
		}
	}
}

func TestByContextPlaybackBindings(t *testing.T) {
	playbackBindings := ByContext("playback")

	expectedActions := []Action{
		ActionPlayPause,
		ActionStop,
		ActionNext,
		ActionPrevious,
		ActionCycleStyle,
	}

	for _, action := range expectedActions {
		found := false
		for _, b := range playbackBindings {
			if b.Action == action {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected action %q in playback bindings", action)
		}
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range All {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
		if b.Context == "" {
			t.Errorf("binding[%d] (%s) has empty Context", i, b.Action)
		}
	}
}

func TestNoDuplicateKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, key := range b.Keys {
			if prev, ok := seen[key]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q", key, prev, b.Action)
			}
			seen[key] = b.Action
		}
	}
}
