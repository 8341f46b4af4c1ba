package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-roids/internal/core"
)

// KeyMap defines the bindings for the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Thrust     key.Binding
	Reverse    key.Binding
	Fire       key.Binding
	Escape     key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Thrust, k.Fire, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Thrust, k.Reverse},
		{k.Fire, k.Restart, k.Screenshot},
		{k.Help, k.Escape, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "turn right"),
		),
		Thrust: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "thrust"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "reverse"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end game"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SimKey translates a key message to a simulation key.
// Returns core.KeyNone for keys the simulation does not see.
func (k KeyMap) SimKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	case key.Matches(msg, k.Thrust):
		return core.KeyUp
	case key.Matches(msg, k.Reverse):
		return core.KeyDown
	case key.Matches(msg, k.Fire):
		return core.KeySpace
	case key.Matches(msg, k.Escape):
		return core.KeyEscape
	}
	return core.KeyNone
}

// DefaultHoldTimeout covers the typical delay before terminal auto-repeat
// starts, so a held key keeps refreshing before it times out.
const DefaultHoldTimeout = 550 * time.Millisecond

// DefaultRepeatGap is the longest gap between two presses of the same key
// that still counts as auto-repeat. Terminals repeat every 30-50 ms.
const DefaultRepeatGap = 100 * time.Millisecond

// KeyTracker synthesizes key state from a terminal, which reports presses
// and auto-repeats but never releases. A press arriving within the repeat
// gap of the previous one is flagged as a repeat; a key not seen for the
// hold timeout is released.
type KeyTracker struct {
	hold time.Duration
	gap  time.Duration
	down map[core.Key]time.Time
}

// NewKeyTracker creates a tracker releasing keys after hold.
func NewKeyTracker(hold time.Duration) *KeyTracker {
	if hold <= 0 {
		hold = DefaultHoldTimeout
	}
	return &KeyTracker{
		hold: hold,
		gap:  min(DefaultRepeatGap, hold),
		down: make(map[core.Key]time.Time),
	}
}

// Press records a key press at now and returns the events it produces.
//
// A fresh press yields one PressEvent. Auto-repeat yields a repeat
// PressEvent. A new tap on a key still considered held is released first,
// so every physical press reaches the simulation exactly once.
func (t *KeyTracker) Press(k core.Key, now time.Time) []core.Event {
	last, held := t.down[k]
	t.down[k] = now
	switch {
	case !held:
		return []core.Event{core.PressEvent(k, false)}
	case now.Sub(last) < t.gap:
		return []core.Event{core.PressEvent(k, true)}
	default:
		return []core.Event{core.ReleaseEvent(k), core.PressEvent(k, false)}
	}
}

// Expire releases every key not pressed within the hold timeout.
// Events are ordered by key so frames stay reproducible.
func (t *KeyTracker) Expire(now time.Time) []core.Event {
	var released []core.Key
	for k, last := range t.down {
		if now.Sub(last) >= t.hold {
			released = append(released, k)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })

	events := make([]core.Event, 0, len(released))
	for _, k := range released {
		delete(t.down, k)
		events = append(events, core.ReleaseEvent(k))
	}
	return events
}

// Reset forgets all held keys without emitting releases.
func (t *KeyTracker) Reset() {
	clear(t.down)
}
