package core

// Event is the single discrete input produced by the joystick sampler for
// one tick. Simultaneous deflections collapse to one event.
type Event uint8

const (
	EventNone Event = iota
	EventLeft
	EventRight
	EventUp
	EventDown
	EventPress
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventLeft:
		return "Left"
	case EventRight:
		return "Right"
	case EventUp:
		return "Up"
	case EventDown:
		return "Down"
	case EventPress:
		return "Press"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction carried by a directional event.
// The second result is false for None and Press.
func (e Event) Direction() (Direction, bool) {
	switch e {
	case EventUp:
		return Up, true
	case EventDown:
		return Down, true
	case EventLeft:
		return Left, true
	case EventRight:
		return Right, true
	default:
		return Up, false
	}
}

// EventFor returns the directional event for d.
func EventFor(d Direction) Event {
	switch d {
	case Up:
		return EventUp
	case Down:
		return EventDown
	case Left:
		return EventLeft
	default:
		return EventRight
	}
}
