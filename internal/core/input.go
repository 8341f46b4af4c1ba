package core

// Key identifies one of the physical controls the simulation understands.
type Key int

const (
	KeyNone   Key = iota
	KeyLeft       // turn counter-clockwise
	KeyRight      // turn clockwise
	KeyUp         // thrust forward
	KeyDown       // thrust backward
	KeySpace      // fire
	KeyEscape     // quit
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// EventType distinguishes the discrete input events a host can deliver.
type EventType int

const (
	EventQuit EventType = iota
	EventKeyDown
	EventKeyUp
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	default:
		return "Unknown"
	}
}

// Event is a single discrete input event.
// Repeat is only meaningful for EventKeyDown and marks OS auto-repeat.
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool
}

// QuitEvent returns a window-close style quit request.
func QuitEvent() Event {
	return Event{Type: EventQuit}
}

// PressEvent returns a key press event.
func PressEvent(k Key, repeat bool) Event {
	return Event{Type: EventKeyDown, Key: k, Repeat: repeat}
}

// ReleaseEvent returns a key release event.
func ReleaseEvent(k Key) Event {
	return Event{Type: EventKeyUp, Key: k}
}

// InputFrame holds the ordered input events delivered during one tick.
// Order matters: a press followed by a release in the same frame nets out.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Events: make([]Event, 0, 4),
	}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(e Event) {
	f.Events = append(f.Events, e)
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear drops all events for the next frame, keeping capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
