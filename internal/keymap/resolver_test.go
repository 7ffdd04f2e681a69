package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
		{[]string{" "}, ActionPlayPause, "Play/pause", "playback"},
		{[]string{"n", "pgdown"}, ActionNext, "Next track", "playback"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"n", ActionNext},
		{"pgdown", ActionNext},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
		{[]string{"m"}, ActionToggleMute, "Toggle mute", "playback"},
	}

	r := NewResolver(bindings)

	quitKeys := r.KeysFor(ActionQuit)
	if !slices.Contains(quitKeys, "q") || !slices.Contains(quitKeys, "ctrl+c") {
		t.Errorf("KeysFor(ActionQuit) = %v, expected 'q' and 'ctrl+c'", quitKeys)
	}

	if keys := r.KeysFor(Action("unknown")); keys != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", keys)
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	bindings := []Binding{
		{[]string{"v", "V"}, ActionCycleStyle, "Cycle style", "playback"},
		{[]string{"v"}, ActionCycleStyle, "Cycle style", "global"},
	}

	r := NewResolver(bindings)

	keys := r.KeysFor(ActionCycleStyle)
	count := 0
	for _, k := range keys {
		if k == "v" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected 'v' once after deduplication, got %d times in %v", count, keys)
	}
}

func TestResolver_WithAllBindings(t *testing.T) {
	r := NewResolver(All)

	if action := r.Resolve("q"); action != ActionQuit {
		t.Errorf("Resolve('q') = %q, want %q", action, ActionQuit)
	}
	if action := r.Resolve("tab"); action != ActionSwitchFocus {
		t.Errorf("Resolve('tab') = %q, want %q", action, ActionSwitchFocus)
	}
	if action := r.Resolve(" "); action != ActionPlayPause {
		t.Errorf("Resolve(' ') = %q, want %q", action, ActionPlayPause)
	}
}

func TestResolver_KeysFor_DeduplicatesAcrossBindings(t *testing.T) {
	r := NewResolver([]Binding{
		{Keys: []string{"q", "ctrl+c"}, Action: ActionQuit},
		{Keys: []string{"ctrl+c", "esc"}, Action: ActionQuit},
	})

	got := r.KeysFor(ActionQuit)
	want := []string{"q", "ctrl+c", "esc"}
	if !slices.Equal(got, want) {
		t.Errorf("KeysFor(ActionQuit) = %v, want %v", got, want)
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver([]Binding{})

	if action := r.Resolve("q"); action != "" {
		t.Errorf("Resolve on empty resolver should return empty, got %q", action)
	}
	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor on empty resolver should return nil, got %v", keys)
	}
}
