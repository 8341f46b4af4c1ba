package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-roids/internal/core"
)

func held(tr *KeyTracker, k core.Key) bool {
	_, ok := tr.down[k]
	return ok
}

func TestSimKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.KeyLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.KeyUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.KeySpace},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.KeyEscape},
		{"q is host-only", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.KeyNone},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.SimKey(tt.msg); got != tt.want {
				t.Errorf("SimKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyTrackerRepeat(t *testing.T) {
	tr := NewKeyTracker(500 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	first := tr.Press(core.KeyLeft, t0)
	if len(first) != 1 || first[0] != core.PressEvent(core.KeyLeft, false) {
		t.Errorf("first press = %+v, want non-repeat PressEvent", first)
	}

	second := tr.Press(core.KeyLeft, t0.Add(30*time.Millisecond))
	if len(second) != 1 || !second[0].Repeat {
		t.Errorf("second press = %+v, want repeat", second)
	}

	other := tr.Press(core.KeyUp, t0.Add(40*time.Millisecond))
	if len(other) != 1 || other[0].Repeat {
		t.Errorf("different key flagged as repeat: %+v", other)
	}
}

func TestKeyTrackerTapsWhileHeld(t *testing.T) {
	tr := NewKeyTracker(500 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	tr.Press(core.KeySpace, t0)
	for i := 1; i < 5; i++ {
		got := tr.Press(core.KeySpace, t0.Add(time.Duration(i)*250*time.Millisecond))
		want := []core.Event{core.ReleaseEvent(core.KeySpace), core.PressEvent(core.KeySpace, false)}
		if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("tap %d = %+v, want %+v", i, got, want)
		}
	}
	if !held(tr, core.KeySpace) {
		t.Error("key released by a tap")
	}
}

func TestKeyTrackerExpire(t *testing.T) {
	tr := NewKeyTracker(500 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	tr.Press(core.KeyUp, t0)
	tr.Press(core.KeyLeft, t0.Add(100*time.Millisecond))

	if got := tr.Expire(t0.Add(499 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("released early: %+v", got)
	}

	got := tr.Expire(t0.Add(500 * time.Millisecond))
	if len(got) != 1 || got[0] != core.ReleaseEvent(core.KeyUp) {
		t.Fatalf("Expire = %+v, want ReleaseEvent(Up)", got)
	}
	if held(tr, core.KeyUp) || !held(tr, core.KeyLeft) {
		t.Error("held state wrong after first release")
	}

	// A refreshed key stays down.
	tr.Press(core.KeyLeft, t0.Add(550*time.Millisecond))
	if got := tr.Expire(t0.Add(700 * time.Millisecond)); len(got) != 0 {
		t.Errorf("refreshed key released: %+v", got)
	}

	// Pressing after release starts a new, non-repeat press.
	if e := tr.Press(core.KeyUp, t0.Add(800*time.Millisecond)); len(e) != 1 || e[0].Repeat {
		t.Error("press after release flagged as repeat")
	}
}

func TestKeyTrackerExpireOrder(t *testing.T) {
	tr := NewKeyTracker(time.Millisecond)
	t0 := time.Unix(0, 0)
	for _, k := range []core.Key{core.KeySpace, core.KeyLeft, core.KeyDown} {
		tr.Press(k, t0)
	}

	got := tr.Expire(t0.Add(time.Second))
	want := []core.Key{core.KeyLeft, core.KeyDown, core.KeySpace}
	if len(got) != len(want) {
		t.Fatalf("got %d releases, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Key != k || got[i].Type != core.EventKeyUp {
			t.Errorf("release %d = %+v, want ReleaseEvent(%v)", i, got[i], k)
		}
	}
}

func TestKeyTrackerReset(t *testing.T) {
	tr := NewKeyTracker(0)
	tr.Press(core.KeyLeft, time.Unix(0, 0))
	tr.Reset()
	if held(tr, core.KeyLeft) {
		t.Error("key still held after Reset")
	}
	if got := tr.Expire(time.Unix(100, 0)); len(got) != 0 {
		t.Errorf("Reset should not emit releases, got %+v", got)
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 10 {
		t.Errorf("full help lists %d bindings, want 10", n)
	}
}
