package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() || f.Has(ActionConfirm) {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionConfirm)
	f.Set(ActionLeft)
	f.Set(ActionNone)
	if !f.Has(ActionConfirm) || !f.Has(ActionLeft) {
		t.Error("set actions missing")
	}
	if f.Has(ActionRight) || f.Has(ActionNone) {
		t.Error("unset actions reported")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}

	var zero InputFrame
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("zero value frame should be usable")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionConfirm: "Confirm",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", a, got, want)
		}
	}
}
