package system

import (
	"github.com/lixenwraith/vista/event"
)

// Dispatch drains the scene event queue and routes each event into the camera
// machine and parallax controller. Called once per render tick, before the
// per-frame updates, so triggers and continuous evaluation stay ordered
// within the same tick
func Dispatch(queue *event.Queue, camera *CameraStateMachine, parallax *MouseParallaxController) {
	for _, ev := range queue.Consume() {
		switch ev.Type {
		case event.EventPointerMoved:
			parallax.PointerMoved(ev.X, ev.Width)

		case event.EventFrameClicked:
			camera.Select(ev.FrameID)

		case event.EventEmptyClicked, event.EventWheelUp:
			camera.TriggerZoomOut()
		}
	}
}
