package system

import (
	"log"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/vista/engine"
	"github.com/lixenwraith/vista/parameter"
	"github.com/lixenwraith/vista/scene"
	"github.com/lixenwraith/vista/status"
	"github.com/lixenwraith/vista/vmath"
)

// CameraPhase is the interaction state of the camera machine
type CameraPhase uint8

const (
	// PhaseIdle leaves the camera to the parallax controller
	PhaseIdle CameraPhase = iota

	// PhaseZoomIn damps position and orientation toward the selected frame
	PhaseZoomIn

	// PhaseZoomingOut tweens position back to the overview viewpoint while
	// damping orientation toward it
	PhaseZoomingOut
)

// String returns the phase name
func (p CameraPhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseZoomIn:
		return "ZoomIn"
	case PhaseZoomingOut:
		return "ZoomingOut"
	default:
		return "Unknown"
	}
}

// CameraStateMachine owns the camera transform targets and transitions between
// interaction states through its public triggers. Per-frame evaluation runs on
// every render tick, not rate-limited, so the camera stays responsive.
// Exactly one selection is active at a time; selecting a new frame while
// zoomed retargets directly without passing through Idle
type CameraStateMachine struct {
	camera  *scene.Camera
	frames  *scene.Arena
	content scene.ContentRegistry

	phase      CameraPhase
	selectedID string

	targetPosition vmath.Vec3
	targetRotation vmath.Quat
	targetFov      float64

	// Zoom-out choreography: tween owns position during ZoomingOut, then the
	// settle task clears the selection after a fixed delay
	zoomOutTween *engine.Tween
	settleTask   *engine.DelayedTask

	// Optional hook observing phase transitions (audio cues, diagnostics)
	onTransition func(from, to CameraPhase)

	// Telemetry
	statPhase    *atomic.Int64
	statZoomIns  *atomic.Int64
	statZoomOuts *atomic.Int64
}

// NewCameraStateMachine creates the machine over the shared camera transform,
// the frame arena resolving selection ids, and the content registry collaborator
func NewCameraStateMachine(camera *scene.Camera, frames *scene.Arena, content scene.ContentRegistry, statusReg *status.Registry) *CameraStateMachine {
	s := &CameraStateMachine{
		camera:       camera,
		frames:       frames,
		content:      content,
		phase:        PhaseIdle,
		targetFov:    parameter.CameraFovInitial,
		statPhase:    statusReg.Ints.Get("camera.phase"),
		statZoomIns:  statusReg.Ints.Get("camera.zoom_ins"),
		statZoomOuts: statusReg.Ints.Get("camera.zoom_outs"),
	}
	return s
}

// SetTransitionHook registers a callback invoked on every phase change
func (s *CameraStateMachine) SetTransitionHook(fn func(from, to CameraPhase)) {
	s.onTransition = fn
}

// Phase returns the current interaction state
func (s *CameraStateMachine) Phase() CameraPhase {
	return s.phase
}

// SelectedID returns the active selection, or "" when none
func (s *CameraStateMachine) SelectedID() string {
	return s.selectedID
}

// TargetPosition returns the current position target (eye point while zoomed)
func (s *CameraStateMachine) TargetPosition() vmath.Vec3 {
	return s.targetPosition
}

// TargetRotation returns the current orientation target
func (s *CameraStateMachine) TargetRotation() vmath.Quat {
	return s.targetRotation
}

// Select zooms the camera onto the frame with the given id
// Unknown ids are a no-op. Selecting the currently zoomed frame again triggers
// zoom-out. Selections arriving while the machine is animating out are ignored
func (s *CameraStateMachine) Select(frameID string) {
	if s.phase == PhaseZoomingOut {
		return
	}
	if s.phase == PhaseZoomIn && frameID == s.selectedID {
		s.TriggerZoomOut()
		return
	}

	frame, ok := s.frames.Get(frameID)
	if !ok {
		// Invalid input is normalized to a no-op, never a failure
		return
	}

	s.cancelPending()

	eye := vmath.V3Add(frame.Position, vmath.V3Scale(frame.Normal, parameter.CameraEyeDistance))
	lookAt := vmath.V3Add(frame.Position, vmath.V3Scale(frame.Normal, parameter.CameraLookDistance))

	s.targetPosition = eye
	s.targetRotation = vmath.QLookAt(eye, lookAt, parameter.CameraWorldUp)
	s.targetFov = parameter.CameraFovZoomed
	s.selectedID = frameID
	s.setPhase(PhaseZoomIn)
	s.statZoomIns.Add(1)

	if idx := s.content.SetActiveByKey(frame.Key); idx < 0 {
		log.Printf("camera: no content entry for key %q (frame %s)", frame.Key, frameID)
	}
}

// TriggerZoomOut starts the return to the overview viewpoint
// Fired by clicking the zoomed frame again, clicking empty space, or an upward
// wheel gesture while zoomed. No-op while Idle or already ZoomingOut
func (s *CameraStateMachine) TriggerZoomOut() {
	if s.phase != PhaseZoomIn {
		return
	}

	s.cancelPending()

	overview := parameter.CameraOverviewPosition
	s.targetRotation = vmath.QLookAt(overview, parameter.CameraOverviewTarget, parameter.CameraWorldUp)
	s.targetFov = parameter.CameraFovInitial

	s.zoomOutTween = engine.NewTween(
		s.camera.Position,
		overview,
		parameter.CameraZoomOutDuration,
		vmath.EaseInOutCubic,
		func() {
			s.settleTask = engine.NewDelayedTask(parameter.CameraZoomOutSettleDelay, s.finishZoomOut)
		},
	)

	s.setPhase(PhaseZoomingOut)
	s.statZoomOuts.Add(1)
}

// finishZoomOut completes the ZoomingOut → Idle transition after the settle
// delay: collaborators are notified exactly once and the selection clears
func (s *CameraStateMachine) finishZoomOut() {
	s.content.ClearActiveMarkers()
	s.selectedID = ""
	s.settleTask = nil
	s.zoomOutTween = nil
	s.setPhase(PhaseIdle)
}

// Update evaluates one render tick
func (s *CameraStateMachine) Update(sample engine.ClockSample) {
	dt := sample.Delta

	// Fov damping is epsilon-gated to avoid needless projection recomputation
	if math.Abs(s.camera.Fov-s.targetFov) > parameter.CameraFovEpsilon {
		s.camera.Fov = vmath.Lerp(s.camera.Fov, s.targetFov,
			vmath.DampFactor(parameter.CameraFovHalfLife, dt))
	}

	switch s.phase {
	case PhaseZoomIn:
		s.camera.Position = vmath.V3DampTo(s.camera.Position, s.targetPosition, parameter.CameraPosHalfLife, dt)
		s.camera.Rotation = vmath.QDampTo(s.camera.Rotation, s.targetRotation, parameter.CameraRotHalfLife, dt)

	case PhaseZoomingOut:
		s.camera.Rotation = vmath.QDampTo(s.camera.Rotation, s.targetRotation, parameter.CameraRotHalfLife, dt)

		// Settle countdown advances before the tween so a tween completing
		// this tick starts its delay on the next one
		if s.settleTask != nil {
			s.settleTask.Update(dt)
		} else if s.zoomOutTween != nil {
			s.zoomOutTween.Update(dt)
			if s.zoomOutTween != nil {
				s.camera.Position = s.zoomOutTween.Value()
			}
		}

	case PhaseIdle:
		// Ownership passes to the parallax controller
	}
}

// cancelPending cancels any in-flight zoom-out choreography so a stale
// completion never fires into a new state
func (s *CameraStateMachine) cancelPending() {
	if s.zoomOutTween != nil {
		s.zoomOutTween.Cancel()
		s.zoomOutTween = nil
	}
	if s.settleTask != nil {
		s.settleTask.Cancel()
		s.settleTask = nil
	}
}

// setPhase records a transition and notifies the hook
func (s *CameraStateMachine) setPhase(next CameraPhase) {
	if next == s.phase {
		return
	}
	prev := s.phase
	s.phase = next
	s.statPhase.Store(int64(next))
	if s.onTransition != nil {
		s.onTransition(prev, next)
	}
}
