package parameter

import "time"

// Frame Loop & Engine Timing
const (
	// FrameUpdateInterval is the host render frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SimulationRateHz is the logical update rate for rate-limited subsystems
	// (particle simulation); decoupled from the render tick rate
	SimulationRateHz = 30.0
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the scene event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
