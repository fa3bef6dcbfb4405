package kiban

import (
	"sync"
	"testing"
)

func TestBusDispatchAll(t *testing.T) {
	sys := &System[gameState]{}
	var got []int
	HandlersFor[eventA, float32](sys).Append(func(e eventA, _ *Context[eventA, float32, gameState]) float32 {
		got = append(got, e.N)
		return 0
	})

	bus := NewBus(sys)
	bus.Send(eventA{N: 1})
	bus.Send(eventA{N: 2})
	bus.Send(eventA{N: 3})

	state := gameState{}
	if handled := bus.DispatchAll(&state); handled != 3 {
		t.Errorf("expected 3 handled, got %d", handled)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected events in send order, got %v", got)
	}
	if handled := bus.DispatchAll(&state); handled != 0 {
		t.Errorf("expected an empty queue, got %d handled", handled)
	}
}

func TestBusDropsUnhandled(t *testing.T) {
	sys := &System[gameState]{}
	HandlersFor[eventA, float32](sys).Append(func(e eventA, _ *Context[eventA, float32, gameState]) float32 {
		return float32(e.N)
	})

	bus := NewBus(sys)
	bus.Send(eventC{Flag: true})
	bus.Send(eventA{N: 5})
	bus.Send(eventC{})

	state := gameState{}
	if handled := bus.DispatchAll(&state); handled != 1 {
		t.Errorf("expected 1 handled, got %d", handled)
	}
	if handled := bus.DispatchAll(&state); handled != 0 {
		t.Errorf("expected dropped events to leave the queue, got %d handled", handled)
	}
}

func TestBusHandlerSends(t *testing.T) {
	sys := &System[gameState]{}
	bus := NewBus(sys)
	HandlersFor[eventA, float32](sys).Append(func(e eventA, _ *Context[eventA, float32, gameState]) float32 {
		bus.Send(eventB{Text: "chained"})
		return 0
	})
	var texts []string
	HandlersFor[eventB, int](sys).Append(func(e eventB, _ *Context[eventB, int, gameState]) int {
		texts = append(texts, e.Text)
		return len(e.Text)
	})

	bus.Send(eventA{N: 1})
	state := gameState{}
	if handled := bus.DispatchAll(&state); handled != 2 {
		t.Errorf("expected the chained event in the same drain, got %d handled", handled)
	}
	if len(texts) != 1 || texts[0] != "chained" {
		t.Errorf("expected the chained event, got %v", texts)
	}
}

func TestBusConcurrentSend(t *testing.T) {
	sys := &System[gameState]{}
	HandlersFor[eventA, float32](sys).Append(func(e eventA, ctx *Context[eventA, float32, gameState]) float32 {
		ctx.State().Score++
		return 0
	})

	bus := NewBus(sys)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				bus.Send(eventA{N: i})
			}
		}()
	}
	wg.Wait()

	state := gameState{}
	if handled := bus.DispatchAll(&state); handled != 800 {
		t.Errorf("expected 800 handled, got %d", handled)
	}
	if state.Score != 800 {
		t.Errorf("expected score 800, got %d", state.Score)
	}
}
