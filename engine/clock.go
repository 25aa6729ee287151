package engine

import (
	"time"
)

// ClockSample is the per-frame time observation passed by value to subscribers
// Immutable once produced; one sample per render tick
type ClockSample struct {
	Elapsed float64 // Seconds since the clock started
	Delta   float64 // Seconds since the previous render tick
}

// ClockSubscription identifies a frame clock subscriber for removal
type ClockSubscription uint64

type clockSubscriber struct {
	id       ClockSubscription
	callback func(ClockSample)
	removed  bool
}

// FrameClock wraps the host render loop's per-tick callback
// The host calls Advance once per frame; subscribers receive the resulting
// sample synchronously in registration order. Owner-thread only: all calls
// must come from the host's render goroutine
type FrameClock struct {
	provider TimeProvider

	started bool
	start   time.Time
	last    time.Time

	subscribers []*clockSubscriber
	nextID      ClockSubscription
	dirty       bool // True when removed entries need compaction
}

// NewFrameClock creates a frame clock over the given time provider
func NewFrameClock(provider TimeProvider) *FrameClock {
	return &FrameClock{
		provider: provider,
	}
}

// Subscribe registers a callback invoked on every render tick
func (fc *FrameClock) Subscribe(callback func(ClockSample)) ClockSubscription {
	fc.nextID++
	fc.subscribers = append(fc.subscribers, &clockSubscriber{
		id:       fc.nextID,
		callback: callback,
	})
	return fc.nextID
}

// Unsubscribe removes a subscriber; effective before the next tick
// Unknown or already-removed ids are a no-op
func (fc *FrameClock) Unsubscribe(id ClockSubscription) {
	for _, sub := range fc.subscribers {
		if sub.id == id && !sub.removed {
			sub.removed = true
			fc.dirty = true
			return
		}
	}
}

// Advance produces the next sample from the time provider and ticks subscribers
func (fc *FrameClock) Advance() ClockSample {
	now := fc.provider.Now()
	if !fc.started {
		fc.started = true
		fc.start = now
		fc.last = now
	}

	sample := ClockSample{
		Elapsed: now.Sub(fc.start).Seconds(),
		Delta:   now.Sub(fc.last).Seconds(),
	}
	fc.last = now

	fc.Tick(sample)
	return sample
}

// Tick distributes a sample to all subscribers; synthetic drivers may call it
// directly instead of Advance
func (fc *FrameClock) Tick(sample ClockSample) {
	fc.compact()

	for _, sub := range fc.subscribers {
		if sub.removed {
			continue
		}
		sub.callback(sample)
	}
}

// compact drops removed subscribers before a tick begins
func (fc *FrameClock) compact() {
	if !fc.dirty {
		return
	}
	kept := fc.subscribers[:0]
	for _, sub := range fc.subscribers {
		if !sub.removed {
			kept = append(kept, sub)
		}
	}
	fc.subscribers = kept
	fc.dirty = false
}
