package parameter

import "github.com/lixenwraith/vista/vmath"

// Camera zoom choreography
const (
	// CameraEyeDistance is the camera offset along the frame normal when zoomed in
	CameraEyeDistance = 2.2

	// CameraLookDistance is the look-at point offset along the frame normal,
	// closer to the frame than the eye so the view centers on the frame face
	CameraLookDistance = 0.8

	// CameraFovInitial is the resting vertical field of view in degrees
	CameraFovInitial = 50.0

	// CameraFovZoomed is the field of view target while zoomed into a frame
	CameraFovZoomed = 70.0

	// CameraFovEpsilon gates fov damping; below this delta the fov is left
	// untouched to avoid needless projection matrix recomputation
	CameraFovEpsilon = 0.05

	// CameraFovHalfLife is the exponential damping half-life for fov (seconds)
	CameraFovHalfLife = 0.15

	// CameraPosHalfLife is the position damping half-life while zooming in
	CameraPosHalfLife = 0.22

	// CameraRotHalfLife is the orientation damping half-life (spherical)
	CameraRotHalfLife = 0.22

	// CameraZoomOutDuration is the fixed length of the zoom-out position tween
	CameraZoomOutDuration = 1.2

	// CameraZoomOutSettleDelay is the pause after the tween completes before
	// the selection is cleared and collaborators are notified
	CameraZoomOutSettleDelay = 0.5
)

// Overview viewpoint the zoom-out tween returns to
var (
	CameraOverviewPosition = vmath.Vec3{X: 0, Y: 1.4, Z: 6.5}
	CameraOverviewTarget   = vmath.Vec3{X: 0, Y: 1.0, Z: 0}
	CameraWorldUp          = vmath.Vec3{X: 0, Y: 1, Z: 0}
)
