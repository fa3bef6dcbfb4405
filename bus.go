package kiban

import "sync"

// Bus queues events ahead of a System so they can be submitted from
// anywhere and dispatched in one place, typically once per frame. Send is
// safe for concurrent use; DispatchAll drains the queue on the goroutine
// that owns the shared state.
type Bus[S any] struct {
	mu     sync.Mutex
	queue  []any
	system *System[S]
}

// NewBus creates a Bus feeding the given System.
func NewBus[S any](system *System[S]) *Bus[S] {
	return &Bus[S]{system: system}
}

// Send queues an event for the next DispatchAll. It may be called from any
// goroutine.
func (b *Bus[S]) Send(event any) {
	b.mu.Lock()
	b.queue = append(b.queue, event)
	b.mu.Unlock()
}

// DispatchAll dispatches queued events in order until the queue is empty.
// Events sent while dispatching, including by handlers, are picked up in
// the same call. Events whose type has no handlers are dropped and chain
// outputs are discarded. It returns the number of events that reached a
// handler.
func (b *Bus[S]) DispatchAll(state *S) int {
	handled := 0
	for {
		b.mu.Lock()
		if len(b.queue) == 0 {
			b.queue = nil
			b.mu.Unlock()
			return handled
		}
		event := b.queue[0]
		b.queue = b.queue[1:]
		b.mu.Unlock()
		if _, err := b.system.DispatchAny(event, state); err == nil {
			handled++
		}
	}
}
