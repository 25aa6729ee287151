package parameter

// Projection & Picking
const (
	// RenderNearPlane is the minimum view-space depth for projection
	RenderNearPlane = 0.05

	// PickRadius is the hit-test radius around a projected frame center,
	// in viewport pixels (terminal hosts scale it down by cell size)
	PickRadius = 48.0
)
