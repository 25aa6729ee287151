package engine

import (
	"testing"

	"github.com/lixenwraith/vista/vmath"
)

func TestTweenCompletesOnce(t *testing.T) {
	completions := 0
	tw := NewTween(vmath.Vec3{}, vmath.Vec3{X: 10}, 1.0, nil, func() { completions++ })

	for i := 0; i < 20; i++ {
		tw.Update(0.1)
	}

	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
	if !tw.Done() {
		t.Error("tween not done after full duration")
	}
	if got := tw.Value(); got != (vmath.Vec3{X: 10}) {
		t.Errorf("final value = %v, want {10 0 0}", got)
	}
}

func TestTweenCancelSuppressesCompletion(t *testing.T) {
	completions := 0
	tw := NewTween(vmath.Vec3{}, vmath.Vec3{X: 10}, 1.0, nil, func() { completions++ })

	tw.Update(0.5)
	tw.Cancel()
	for i := 0; i < 20; i++ {
		tw.Update(0.1)
	}

	if completions != 0 {
		t.Errorf("completion fired after cancel: %d", completions)
	}
	if tw.Done() {
		t.Error("cancelled tween reported done")
	}
}

func TestTweenEasedMidpoint(t *testing.T) {
	tw := NewTween(vmath.Vec3{}, vmath.Vec3{X: 10}, 2.0, vmath.EaseInOutCubic, nil)

	// Ease-in-out is symmetric: the midpoint sits exactly halfway
	tw.Update(1.0)
	if got := tw.Value().X; !near(got, 5, 1e-9) {
		t.Errorf("midpoint = %v, want 5", got)
	}
}

func TestTweenZeroDuration(t *testing.T) {
	done := false
	tw := NewTween(vmath.Vec3{}, vmath.Vec3{X: 1}, 0, nil, func() { done = true })

	if tw.Update(0.001) != true {
		t.Error("zero-duration tween did not complete on first update")
	}
	if !done {
		t.Error("completion not invoked")
	}
}

func TestDelayedTask(t *testing.T) {
	fired := 0
	task := NewDelayedTask(0.5, func() { fired++ })

	task.Update(0.3)
	if fired != 0 {
		t.Error("task fired early")
	}
	task.Update(0.3)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	task.Update(0.3)
	if fired != 1 {
		t.Errorf("fired = %d after extra update, want 1", fired)
	}
}

func TestDelayedTaskCancel(t *testing.T) {
	fired := 0
	task := NewDelayedTask(0.2, func() { fired++ })

	task.Cancel()
	task.Update(1.0)

	if fired != 0 {
		t.Errorf("cancelled task fired: %d", fired)
	}
}
