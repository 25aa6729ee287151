package event

// EventType tags a scene interaction event
type EventType uint8

const (
	EventNone EventType = iota

	// EventPointerMoved carries the latest pointer x within the viewport
	EventPointerMoved

	// EventFrameClicked carries the picked frame's stable id
	EventFrameClicked

	// EventEmptyClicked reports a click that hit no frame
	EventEmptyClicked

	// EventWheelUp reports an upward wheel gesture (negative delta)
	EventWheelUp
)

// String returns the event name for diagnostics
func (t EventType) String() string {
	switch t {
	case EventPointerMoved:
		return "PointerMoved"
	case EventFrameClicked:
		return "FrameClicked"
	case EventEmptyClicked:
		return "EmptyClicked"
	case EventWheelUp:
		return "WheelUp"
	default:
		return "None"
	}
}

// SceneEvent is a discrete interaction message consumed once per render tick
type SceneEvent struct {
	Type EventType

	// FrameID is set for EventFrameClicked
	FrameID string

	// X and Width carry the viewport pointer sample for EventPointerMoved
	X     int
	Width int
}
