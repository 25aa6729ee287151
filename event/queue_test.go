package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/vista/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 10; i++ {
		q.Push(SceneEvent{Type: EventPointerMoved, X: i})
	}

	events := q.Consume()
	if len(events) != 10 {
		t.Fatalf("consumed %d events, want 10", len(events))
	}
	for i, ev := range events {
		if ev.X != i {
			t.Errorf("event %d has X=%d, want %d", i, ev.X, i)
		}
	}

	if again := q.Consume(); again != nil {
		t.Errorf("second consume returned %d events, want none", len(again))
	}
}

func TestQueueEmptyConsume(t *testing.T) {
	q := NewQueue()
	if events := q.Consume(); events != nil {
		t.Errorf("empty queue returned %d events", len(events))
	}
	if q.Len() != 0 {
		t.Errorf("empty queue Len = %d", q.Len())
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 50
	for i := 0; i < total; i++ {
		q.Push(SceneEvent{Type: EventFrameClicked, X: i})
	}

	events := q.Consume()
	if len(events) > parameter.EventQueueSize {
		t.Fatalf("consumed %d events, capacity %d", len(events), parameter.EventQueueSize)
	}
	// Overflow drops the oldest; whatever survives must be the newest window
	last := events[len(events)-1]
	if last.X != total-1 {
		t.Errorf("newest event X=%d, want %d", last.X, total-1)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const producers = 4
	const perProducer = 32 // Total stays under capacity

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(SceneEvent{Type: EventPointerMoved, FrameID: "", X: id*1000 + i})
			}
		}(p)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, ev := range q.Consume() {
		if seen[ev.X] {
			t.Errorf("duplicate event X=%d", ev.X)
		}
		seen[ev.X] = true
	}
	if len(seen) != producers*perProducer {
		t.Errorf("consumed %d unique events, want %d", len(seen), producers*perProducer)
	}
}

func TestQueueLen(t *testing.T) {
	q := NewQueue()
	q.Push(SceneEvent{Type: EventWheelUp})
	q.Push(SceneEvent{Type: EventEmptyClicked})
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}
	q.Consume()
	if q.Len() != 0 {
		t.Errorf("Len after consume = %d, want 0", q.Len())
	}
}
