package scene

import (
	"github.com/lixenwraith/vista/parameter"
	"github.com/lixenwraith/vista/vmath"
)

// Camera is the shared camera transform read once per frame by the renderer
// Single-writer rule: at most one of the camera state machine and the parallax
// controller mutates it in a given tick, with the state machine taking
// precedence whenever it is not idle
type Camera struct {
	Position vmath.Vec3
	Rotation vmath.Quat
	Fov      float64 // Vertical field of view, degrees
}

// NewCamera creates a camera at the overview viewpoint facing the scene
func NewCamera() *Camera {
	pos := parameter.CameraOverviewPosition
	return &Camera{
		Position: pos,
		Rotation: vmath.QLookAt(pos, parameter.CameraOverviewTarget, parameter.CameraWorldUp),
		Fov:      parameter.CameraFovInitial,
	}
}

// Forward returns the camera's view direction
func (c *Camera) Forward() vmath.Vec3 {
	return vmath.QForward(c.Rotation)
}
