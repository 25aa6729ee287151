package system

import (
	"github.com/lixenwraith/vista/engine"
	"github.com/lixenwraith/vista/parameter"
	"github.com/lixenwraith/vista/scene"
	"github.com/lixenwraith/vista/vmath"
)

// MouseParallaxController blends the idle camera laterally from pointer input
// Attached once per camera lifetime; the base position is captured at attach
// time and never mutated afterward. Writes are gated by the ownership rule:
// the camera state machine takes precedence whenever it is not idle, so at
// most one writer touches the camera transform per tick
type MouseParallaxController struct {
	camera   *scene.Camera
	attached bool

	basePosition vmath.Vec3
	normalizedX  float64 // Latest pointer sample mapped to [-1, 1]

	maxOffset float64
	blend     float64
	lookAt    vmath.Vec3

	// canWrite reports whether this controller owns the camera this tick
	// (nil means always)
	canWrite func() bool
}

// NewMouseParallaxController creates a detached controller
// canWrite gates per-tick ownership; pass the state machine's idle check
func NewMouseParallaxController(canWrite func() bool) *MouseParallaxController {
	return &MouseParallaxController{
		maxOffset: parameter.ParallaxMaxOffset,
		blend:     parameter.ParallaxBlend,
		lookAt:    parameter.ParallaxLookTarget,
		canWrite:  canWrite,
	}
}

// Attach binds the controller to a camera, capturing its current position as
// the parallax base. Attaching while already attached is a no-op
func (c *MouseParallaxController) Attach(camera *scene.Camera) {
	if c.attached {
		return
	}
	c.camera = camera
	c.basePosition = camera.Position
	c.normalizedX = 0
	c.attached = true
}

// Detach releases the camera; idempotent
func (c *MouseParallaxController) Detach() {
	c.attached = false
	c.camera = nil
}

// Attached reports whether the controller currently drives a camera
func (c *MouseParallaxController) Attached() bool {
	return c.attached
}

// PointerMoved records a pointer sample: x relative to viewport width mapped
// onto [-1, 1]. Non-positive widths are ignored
func (c *MouseParallaxController) PointerMoved(x, width int) {
	if width <= 0 {
		return
	}
	c.normalizedX = vmath.Clamp(float64(x)/float64(width)*2-1, -1, 1)
}

// NormalizedX returns the latest normalized pointer coordinate
func (c *MouseParallaxController) NormalizedX() float64 {
	return c.normalizedX
}

// Update blends the camera toward base position plus pointer offset and
// re-applies the look-at toward the fixed reference point
// The blend factor is a fixed per-tick fraction (frame-rate dependent,
// matching the source feel); see parameter.ParallaxBlend
func (c *MouseParallaxController) Update(sample engine.ClockSample) {
	if !c.attached {
		return
	}
	if c.canWrite != nil && !c.canWrite() {
		return
	}

	targetX := c.basePosition.X + c.normalizedX*c.maxOffset
	c.camera.Position.X += (targetX - c.camera.Position.X) * c.blend
	c.camera.Rotation = vmath.QLookAt(c.camera.Position, c.lookAt, parameter.CameraWorldUp)
}
