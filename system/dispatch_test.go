package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/vista/event"
)

func TestDispatchRoutesEvents(t *testing.T) {
	machine, camera, _ := newTestMachine(t)
	parallax := NewMouseParallaxController(func() bool { return machine.Phase() == PhaseIdle })
	parallax.Attach(camera)
	q := event.NewQueue()

	q.Push(event.SceneEvent{Type: event.EventPointerMoved, X: 600, Width: 800})
	Dispatch(q, machine, parallax)
	if math.Abs(parallax.NormalizedX()-0.5) > 1e-12 {
		t.Errorf("normalized = %v, want 0.5", parallax.NormalizedX())
	}

	q.Push(event.SceneEvent{Type: event.EventFrameClicked, FrameID: "f1"})
	Dispatch(q, machine, parallax)
	if machine.Phase() != PhaseZoomIn || machine.SelectedID() != "f1" {
		t.Errorf("machine = %v/%q after click", machine.Phase(), machine.SelectedID())
	}

	q.Push(event.SceneEvent{Type: event.EventWheelUp})
	Dispatch(q, machine, parallax)
	if machine.Phase() != PhaseZoomingOut {
		t.Errorf("phase = %v after wheel, want ZoomingOut", machine.Phase())
	}
}

func TestDispatchEmptyClickZoomsOut(t *testing.T) {
	machine, _, _ := newTestMachine(t)
	q := event.NewQueue()

	machine.Select("f2")
	q.Push(event.SceneEvent{Type: event.EventEmptyClicked})
	Dispatch(q, machine, nil)

	if machine.Phase() != PhaseZoomingOut {
		t.Errorf("phase = %v, want ZoomingOut", machine.Phase())
	}
}

func TestDispatchBatchOrder(t *testing.T) {
	machine, _, _ := newTestMachine(t)
	q := event.NewQueue()

	// Click then immediate empty click within one tick: select fires, then
	// zoom-out fires against the fresh selection
	q.Push(event.SceneEvent{Type: event.EventFrameClicked, FrameID: "f1"})
	q.Push(event.SceneEvent{Type: event.EventEmptyClicked})
	Dispatch(q, machine, nil)

	if machine.Phase() != PhaseZoomingOut {
		t.Errorf("phase = %v, want ZoomingOut", machine.Phase())
	}
	if machine.SelectedID() != "f1" {
		t.Errorf("selected = %q, want f1 until settle completes", machine.SelectedID())
	}
}

func TestDispatchEmptyQueueNoOp(t *testing.T) {
	machine, _, _ := newTestMachine(t)
	Dispatch(event.NewQueue(), machine, nil)
	if machine.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want Idle", machine.Phase())
	}
}
