package parameter

import "github.com/lixenwraith/vista/vmath"

// Pointer Parallax
const (
	// ParallaxMaxOffset is the lateral camera travel in world units at full
	// pointer deflection (normalized x = ±1)
	ParallaxMaxOffset = 0.6

	// ParallaxBlend is the fixed per-tick lerp fraction toward the offset
	// target. Deliberately frame-rate dependent to match the source feel;
	// hosts ticking far from 60 FPS should scale it accordingly
	ParallaxBlend = 0.04
)

// ParallaxLookTarget is the fixed reference point the idle camera faces
var ParallaxLookTarget = vmath.Vec3{X: 0, Y: 1.0, Z: 0}
