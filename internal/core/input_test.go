package core

import "testing"

func TestInputFramePushClear(t *testing.T) {
	f := NewInputFrame()
	f.Push(PressEvent(KeyLeft, false))
	f.Push(ReleaseEvent(KeyLeft))

	if f.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", f.Len())
	}
	if f.Events[0].Type != EventKeyDown || f.Events[1].Type != EventKeyUp {
		t.Errorf("events out of order: %+v", f.Events)
	}

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
}

func TestEventStrings(t *testing.T) {
	if KeyEscape.String() != "Escape" || Key(99).String() != "Unknown" {
		t.Error("Key.String mismatch")
	}
	if EventKeyUp.String() != "KeyUp" || EventType(99).String() != "Unknown" {
		t.Error("EventType.String mismatch")
	}
}
