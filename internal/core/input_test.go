package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionFire) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionMoveLeft)

	if !f.Has(ActionFire) || !f.Has(ActionMoveLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionMoveRight) {
		t.Error("Unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionFire) || f.Has(ActionMoveLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionFire) {
		t.Error("Zero-value frame should have no actions")
	}

	// Set on a zero-value frame must not panic
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set on zero-value frame should work")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionFire) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionMoveLeft, "MoveLeft"},
		{ActionMoveRight, "MoveRight"},
		{ActionFire, "Fire"},
		{ActionPause, "Pause"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.action, got, tc.want)
		}
	}
}
