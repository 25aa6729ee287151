package engine

import (
	"testing"
	"time"
)

func TestFrameClockSamples(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tp := NewManualTimeProvider(start)
	fc := NewFrameClock(tp)

	// First advance establishes the epoch
	s := fc.Advance()
	if s.Elapsed != 0 || s.Delta != 0 {
		t.Errorf("first sample = {%v %v}, want {0 0}", s.Elapsed, s.Delta)
	}

	tp.Advance(16 * time.Millisecond)
	s = fc.Advance()
	if got, want := s.Elapsed, 0.016; !near(got, want, 1e-9) {
		t.Errorf("Elapsed = %v, want %v", got, want)
	}
	if got, want := s.Delta, 0.016; !near(got, want, 1e-9) {
		t.Errorf("Delta = %v, want %v", got, want)
	}

	tp.Advance(50 * time.Millisecond)
	s = fc.Advance()
	if got, want := s.Elapsed, 0.066; !near(got, want, 1e-9) {
		t.Errorf("Elapsed = %v, want %v", got, want)
	}
	if got, want := s.Delta, 0.050; !near(got, want, 1e-9) {
		t.Errorf("Delta = %v, want %v", got, want)
	}
}

func TestFrameClockSubscriberOrder(t *testing.T) {
	fc := NewFrameClock(NewMonotonicTimeProvider())

	var order []int
	fc.Subscribe(func(ClockSample) { order = append(order, 1) })
	fc.Subscribe(func(ClockSample) { order = append(order, 2) })
	fc.Subscribe(func(ClockSample) { order = append(order, 3) })

	fc.Tick(ClockSample{})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("subscriber order = %v, want [1 2 3]", order)
	}
}

func TestFrameClockUnsubscribe(t *testing.T) {
	fc := NewFrameClock(NewMonotonicTimeProvider())

	calls := 0
	id := fc.Subscribe(func(ClockSample) { calls++ })

	fc.Tick(ClockSample{})
	fc.Unsubscribe(id)
	fc.Tick(ClockSample{})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	// Double-unsubscribe is a no-op
	fc.Unsubscribe(id)
	fc.Tick(ClockSample{})
	if calls != 1 {
		t.Errorf("calls after double-unsubscribe = %d, want 1", calls)
	}
}

func TestFrameClockUnsubscribeMidTick(t *testing.T) {
	fc := NewFrameClock(NewMonotonicTimeProvider())

	var secondCalls int
	var id2 ClockSubscription
	fc.Subscribe(func(ClockSample) { fc.Unsubscribe(id2) })
	id2 = fc.Subscribe(func(ClockSample) { secondCalls++ })

	// Removal takes effect before the next tick; the current tick still
	// saw the subscriber registered when iteration started
	fc.Tick(ClockSample{})
	fc.Tick(ClockSample{})

	if secondCalls > 1 {
		t.Errorf("unsubscribed callback fired on a later tick: calls = %d", secondCalls)
	}
}

func TestPausableClockExcludesPause(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tp := NewManualTimeProvider(start)
	pc := NewPausableClock(tp)

	tp.Advance(time.Second)
	pc.Pause()
	tp.Advance(10 * time.Second)
	pc.Resume()
	tp.Advance(time.Second)

	sceneElapsed := pc.Now().Sub(start)
	if sceneElapsed != 2*time.Second {
		t.Errorf("scene elapsed = %v, want 2s", sceneElapsed)
	}
	if got := pc.TotalPauseDuration(); got != 10*time.Second {
		t.Errorf("TotalPauseDuration = %v, want 10s", got)
	}
}

func TestPausableClockFrozenWhilePaused(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tp := NewManualTimeProvider(start)
	pc := NewPausableClock(tp)

	tp.Advance(time.Second)
	pc.Pause()
	frozen := pc.Now()
	tp.Advance(5 * time.Second)

	if !pc.Now().Equal(frozen) {
		t.Errorf("paused clock moved: %v -> %v", frozen, pc.Now())
	}
}

func near(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
