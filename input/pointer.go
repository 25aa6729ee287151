package input

import (
	"math"

	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/render"
	"github.com/lixenwraith/vista/scene"
	"github.com/lixenwraith/vista/vmath"
)

// Picker resolves viewport clicks against projected frame centers
type Picker struct {
	frames *scene.Arena
	camera *scene.Camera
	radius float64
}

// NewPicker creates a picker with the given hit radius in viewport units
func NewPicker(frames *scene.Arena, camera *scene.Camera, radius float64) *Picker {
	return &Picker{
		frames: frames,
		camera: camera,
		radius: radius,
	}
}

// Pick returns the nearest front-facing frame within the hit radius of the
// click point, or false when the click lands on empty space
func (p *Picker) Pick(x, y int, vp render.Viewport) (string, bool) {
	bestID := ""
	bestDist := p.radius

	for _, f := range p.frames.All() {
		// Back side of a frame is not selectable
		toCamera := vmath.V3Sub(p.camera.Position, f.Position)
		if vmath.V3Dot(f.Normal, toCamera) <= 0 {
			continue
		}

		sx, sy, _, ok := render.Project(p.camera, f.Position, vp)
		if !ok {
			continue
		}

		dist := math.Hypot(sx-float64(x), sy-float64(y))
		if dist <= bestDist {
			bestDist = dist
			bestID = f.ID
		}
	}

	return bestID, bestID != ""
}

// Adapter translates host pointer events into scene events
// Producers may run off the render goroutine (terminal poll loop); the queue
// crossing keeps all state mutation inside the render tick
type Adapter struct {
	queue  *event.Queue
	picker *Picker

	// selectionActive gates wheel handling: only an upward wheel while a
	// selection is active becomes a zoom-out gesture
	selectionActive func() bool
}

// NewAdapter creates an adapter pushing into the given queue
func NewAdapter(queue *event.Queue, picker *Picker, selectionActive func() bool) *Adapter {
	return &Adapter{
		queue:           queue,
		picker:          picker,
		selectionActive: selectionActive,
	}
}

// PointerMoved forwards a pointer sample
func (a *Adapter) PointerMoved(x, width int) {
	a.queue.Push(event.SceneEvent{
		Type:  event.EventPointerMoved,
		X:     x,
		Width: width,
	})
}

// Click resolves a press into a frame or empty-space event
func (a *Adapter) Click(x, y int, vp render.Viewport) {
	if id, ok := a.picker.Pick(x, y, vp); ok {
		a.queue.Push(event.SceneEvent{
			Type:    event.EventFrameClicked,
			FrameID: id,
		})
		return
	}
	a.queue.Push(event.SceneEvent{Type: event.EventEmptyClicked})
}

// Wheel handles a scroll sample. Returns true when the event was consumed as
// a zoom-out gesture, in which case the host must suppress its default scroll
func (a *Adapter) Wheel(deltaY float64) bool {
	if deltaY >= 0 {
		return false
	}
	if a.selectionActive != nil && !a.selectionActive() {
		return false
	}
	a.queue.Push(event.SceneEvent{Type: event.EventWheelUp})
	return true
}
