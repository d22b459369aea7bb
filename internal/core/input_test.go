package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone) // ignored
	f.Set(ActionLeft)
	f.Set(ActionRotate)

	expected := []Action{ActionLeft, ActionLeft, ActionRotate}
	if len(f.Actions) != len(expected) {
		t.Fatalf("len(Actions) = %d, expected %d", len(f.Actions), len(expected))
	}
	for i, a := range expected {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}

	if !f.Has(ActionRotate) {
		t.Error("Has(ActionRotate) should be true")
	}
	if f.Has(ActionSoftDrop) {
		t.Error("Has(ActionSoftDrop) should be false")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionPause) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionSoftDrop, "SoftDrop"},
		{ActionBuySkin, "BuySkin"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tc.action), got, tc.expected)
		}
	}
}
