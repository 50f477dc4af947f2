package game

import "testing"

func TestInputFrame(t *testing.T) {
	frame := NewInputFrame(ActionMoveUp, ActionSelect7)

	if !frame.Has(ActionMoveUp) {
		t.Error("expected MoveUp held")
	}
	if !frame.Has(ActionSelect7) {
		t.Error("expected Select7 held")
	}
	if frame.Has(ActionMoveDown) {
		t.Error("MoveDown should not be held")
	}
	if frame.Empty() {
		t.Error("frame with actions should not be empty")
	}

	var empty InputFrame
	if !empty.Empty() {
		t.Error("zero frame should be empty")
	}
	for a := ActionMoveUp; a <= ActionQuit; a++ {
		if empty.Has(a) {
			t.Errorf("zero frame should not hold %v", a)
		}
	}
}

func TestAction_String(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionMoveUp, "MoveUp"},
		{ActionMoveDown, "MoveDown"},
		{ActionSelect3, "Select3"},
		{ActionSelect5, "Select5"},
		{ActionSelect7, "Select7"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}
