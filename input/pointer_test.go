package input

import (
	"testing"

	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/render"
	"github.com/lixenwraith/vista/scene"
	"github.com/lixenwraith/vista/vmath"
)

func pickScene(t *testing.T) (*scene.Camera, *scene.Arena) {
	t.Helper()
	frames := scene.NewArena()
	add := func(id string, pos, normal vmath.Vec3) {
		if err := frames.Add(scene.Frame{ID: id, Key: id, Position: pos, Normal: normal}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	// Two frames facing the camera, one facing away
	add("left", vmath.Vec3{X: -1.5}, vmath.Vec3{Z: 1})
	add("right", vmath.Vec3{X: 1.5}, vmath.Vec3{Z: 1})
	add("back", vmath.Vec3{}, vmath.Vec3{Z: -1})

	cam := scene.NewCamera()
	cam.Position = vmath.Vec3{Z: 5}
	cam.Rotation = vmath.QLookAt(cam.Position, vmath.Vec3{}, vmath.Vec3{Y: 1})
	return cam, frames
}

func pickSceneStraight(t *testing.T) (*Picker, render.Viewport) {
	t.Helper()
	cam, frames := pickScene(t)
	return NewPicker(frames, cam, 100), render.Viewport{Width: 800, Height: 600}
}

func TestPickNearestFrame(t *testing.T) {
	picker, vp := pickSceneStraight(t)

	// Far left of the viewport is closest to the left frame's projection
	if id, ok := picker.Pick(150, 300, vp); !ok || id != "left" {
		t.Errorf("pick = (%q, %v), want left", id, ok)
	}
	if id, ok := picker.Pick(650, 300, vp); !ok || id != "right" {
		t.Errorf("pick = (%q, %v), want right", id, ok)
	}
}

func TestPickBackFacingExcluded(t *testing.T) {
	picker, vp := pickSceneStraight(t)

	// Dead center lands exactly on the back-facing frame's projection; the
	// pick must fall through to a front-facing neighbor or miss, never "back"
	if id, ok := picker.Pick(400, 300, vp); ok && id == "back" {
		t.Error("picked a back-facing frame")
	}
}

func TestPickEmptySpace(t *testing.T) {
	picker, vp := pickSceneStraight(t)

	if id, ok := picker.Pick(400, 10, vp); ok {
		t.Errorf("top edge click resolved to %q, want miss", id)
	}
}

func TestAdapterClickEvents(t *testing.T) {
	cam, frames := pickScene(t)
	q := event.NewQueue()
	picker := NewPicker(frames, cam, 100)
	adapter := NewAdapter(q, picker, nil)
	vp := render.Viewport{Width: 800, Height: 600}

	adapter.Click(150, 300, vp)
	adapter.Click(400, 10, vp)

	events := q.Consume()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Type != event.EventFrameClicked || events[0].FrameID != "left" {
		t.Errorf("first event = %v/%q, want FrameClicked/left", events[0].Type, events[0].FrameID)
	}
	if events[1].Type != event.EventEmptyClicked {
		t.Errorf("second event = %v, want EmptyClicked", events[1].Type)
	}
}

func TestAdapterWheelGating(t *testing.T) {
	q := event.NewQueue()
	active := false
	adapter := NewAdapter(q, nil, func() bool { return active })

	tests := []struct {
		name     string
		deltaY   float64
		active   bool
		consumed bool
	}{
		{"up while idle", -1, false, false},
		{"down while active", 1, true, false},
		{"zero delta", 0, true, false},
		{"up while active", -1, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active = tt.active
			if got := adapter.Wheel(tt.deltaY); got != tt.consumed {
				t.Errorf("consumed = %v, want %v", got, tt.consumed)
			}
		})
	}

	events := q.Consume()
	if len(events) != 1 || events[0].Type != event.EventWheelUp {
		t.Fatalf("queue holds %v, want exactly one WheelUp", events)
	}
}

func TestAdapterPointerMoved(t *testing.T) {
	q := event.NewQueue()
	adapter := NewAdapter(q, nil, nil)

	adapter.PointerMoved(123, 800)
	events := q.Consume()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Type != event.EventPointerMoved || ev.X != 123 || ev.Width != 800 {
		t.Errorf("event = %+v", ev)
	}
}
