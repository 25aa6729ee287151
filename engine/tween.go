package engine

import (
	"github.com/lixenwraith/vista/vmath"
)

// EaseFunc maps normalized tween progress [0,1] to an eased fraction
type EaseFunc func(float64) float64

// Tween is a finite-duration Vec3 interpolation with an explicit easing curve
// and completion callback. Advanced cooperatively from its owner's update,
// never from a background timer. Cancel suppresses the completion callback
type Tween struct {
	from, to vmath.Vec3
	duration float64
	elapsed  float64

	ease       EaseFunc
	onComplete func()

	done      bool
	cancelled bool
}

// NewTween creates a tween from one point to another over duration seconds
// A nil ease runs linear; a non-positive duration completes on the first update
func NewTween(from, to vmath.Vec3, duration float64, ease EaseFunc, onComplete func()) *Tween {
	return &Tween{
		from:       from,
		to:         to,
		duration:   duration,
		ease:       ease,
		onComplete: onComplete,
	}
}

// Update advances the tween by dt seconds and returns true once finished
// The completion callback runs exactly once, on the update that crosses the
// end of the duration, and never after Cancel
func (t *Tween) Update(dt float64) bool {
	if t.done || t.cancelled {
		return t.done
	}

	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.done = true
		if t.onComplete != nil {
			t.onComplete()
		}
	}
	return t.done
}

// Value returns the current interpolated position
func (t *Tween) Value() vmath.Vec3 {
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.to
	}
	progress := t.elapsed / t.duration
	if t.ease != nil {
		progress = t.ease(progress)
	}
	return vmath.V3Lerp(t.from, t.to, progress)
}

// Cancel stops the tween; the completion callback will not be invoked
// Idempotent; cancelling a finished tween is a no-op
func (t *Tween) Cancel() {
	if !t.done {
		t.cancelled = true
	}
}

// Done reports whether the tween ran to completion
func (t *Tween) Done() bool {
	return t.done
}

// DelayedTask runs a callback after a fixed delay of cooperative updates
// Same cancellation contract as Tween: cancelling never invokes the callback
type DelayedTask struct {
	remaining float64
	fn        func()
	done      bool
	cancelled bool
}

// NewDelayedTask creates a task firing after delay seconds of updates
func NewDelayedTask(delay float64, fn func()) *DelayedTask {
	return &DelayedTask{
		remaining: delay,
		fn:        fn,
	}
}

// Update counts down by dt seconds and returns true once fired
func (d *DelayedTask) Update(dt float64) bool {
	if d.done || d.cancelled {
		return d.done
	}

	d.remaining -= dt
	if d.remaining <= 0 {
		d.done = true
		if d.fn != nil {
			d.fn()
		}
	}
	return d.done
}

// Cancel stops the countdown; the callback will not be invoked
func (d *DelayedTask) Cancel() {
	if !d.done {
		d.cancelled = true
	}
}

// Done reports whether the task fired
func (d *DelayedTask) Done() bool {
	return d.done
}
