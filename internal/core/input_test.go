package core

import "testing"

func TestInputFrameFirst(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Set(ActionRight)
	f.Set(ActionUp)
	f.Set(ActionRight)

	got := f.First(ActionUp, ActionDown, ActionLeft, ActionRight)
	if got != ActionRight {
		t.Errorf("First() = %v, want Right", got)
	}
	if !f.Has(ActionPause) {
		t.Error("Has(Pause) should be true")
	}
	if f.Has(ActionQuit) {
		t.Error("Has(Quit) should be false")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	c := f.Clone()
	f.Clear()

	if f.Has(ActionLeft) || f.First(ActionLeft) != ActionNone {
		t.Error("Clear should drop all actions")
	}
	if !c.Has(ActionLeft) || c.First(ActionLeft) != ActionLeft {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should work")
	}
}

func TestActionString(t *testing.T) {
	if ActionNewGame.String() != "NewGame" || Action(99).String() != "Unknown" {
		t.Error("unexpected Action names")
	}
}
