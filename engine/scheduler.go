package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/vista/status"
)

// SubscriptionHandle identifies a scheduler subscription for removal
type SubscriptionHandle uint64

// subscription is owned exclusively by the scheduler and mutated only inside
// its tick handler
type subscription struct {
	id       SubscriptionHandle
	callback func(ClockSample)

	interval    float64 // Seconds between fires; 0 fires every render tick
	accumulated float64 // Render time accrued since last fire
	lastFire    float64 // Clock elapsed at last fire
	primed      bool    // lastFire initialized from the first observed sample
	removed     bool
}

// RateLimitedScheduler decouples logical update rates from the render tick rate
// Each subscription accumulates render deltas and fires once its target
// interval has elapsed, receiving the true wall-clock delta since its last
// fire rather than the nominal interval, so simulation accuracy survives
// render jitter. Single-threaded cooperative: Tick runs on the host's render
// goroutine and subscribers execute synchronously
type RateLimitedScheduler struct {
	subscriptions []*subscription
	index         map[SubscriptionHandle]*subscription
	nextID        SubscriptionHandle
	dirty         bool

	// Telemetry
	statFires  *atomic.Int64
	statActive *atomic.Int64
}

// NewRateLimitedScheduler creates a scheduler reporting into the given registry
func NewRateLimitedScheduler(statusReg *status.Registry) *RateLimitedScheduler {
	return &RateLimitedScheduler{
		index:      make(map[SubscriptionHandle]*subscription),
		statFires:  statusReg.Ints.Get("scheduler.fires"),
		statActive: statusReg.Ints.Get("scheduler.subscriptions"),
	}
}

// Subscribe registers a callback fired at approximately rateHz
// A rate ≤ 0 is normalized to the render tick rate (fires every tick)
func (s *RateLimitedScheduler) Subscribe(callback func(ClockSample), rateHz float64) SubscriptionHandle {
	interval := 0.0
	if rateHz > 0 {
		interval = 1.0 / rateHz
	}

	s.nextID++
	sub := &subscription{
		id:       s.nextID,
		callback: callback,
		interval: interval,
	}
	s.subscriptions = append(s.subscriptions, sub)
	s.index[sub.id] = sub
	s.statActive.Store(int64(len(s.index)))
	return sub.id
}

// Unsubscribe removes a subscription; effective before the next tick
// Safe to call from inside a subscriber callback; double-unsubscribe is a no-op
func (s *RateLimitedScheduler) Unsubscribe(handle SubscriptionHandle) {
	sub, ok := s.index[handle]
	if !ok {
		return
	}
	sub.removed = true
	delete(s.index, handle)
	s.dirty = true
	s.statActive.Store(int64(len(s.index)))
}

// Tick advances all subscriptions by one render frame
// Invoked once per render frame by the host; subscriptions are independent
// and a slow subscriber never blocks the others beyond its own synchronous run
func (s *RateLimitedScheduler) Tick(sample ClockSample) {
	s.compact()

	for _, sub := range s.subscriptions {
		if sub.removed {
			// Unsubscribed by an earlier callback this tick
			continue
		}

		if !sub.primed {
			sub.lastFire = sample.Elapsed - sample.Delta
			sub.primed = true
		}

		sub.accumulated += sample.Delta
		if sub.interval > 0 && sub.accumulated < sub.interval {
			continue
		}

		fired := ClockSample{
			Elapsed: sample.Elapsed,
			Delta:   sample.Elapsed - sub.lastFire,
		}
		sub.accumulated = 0
		sub.lastFire = sample.Elapsed

		sub.callback(fired)
		s.statFires.Add(1)
	}
}

// compact drops removed subscriptions before a tick begins
func (s *RateLimitedScheduler) compact() {
	if !s.dirty {
		return
	}
	kept := s.subscriptions[:0]
	for _, sub := range s.subscriptions {
		if !sub.removed {
			kept = append(kept, sub)
		}
	}
	s.subscriptions = kept
	s.dirty = false
}
