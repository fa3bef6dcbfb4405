package kiban

import (
	"fmt"
	"reflect"
)

// anyHandlers is the type-erased face of a handler chain, letting one
// System hold chains whose event and output types are unrelated.
type anyHandlers[S any] interface {
	dispatchAny(event any, state *S) (any, bool)
}

// dispatchAny recovers the chain's concrete event type from the boxed event
// and runs the chain. It reports false when the concrete type does not
// match or the chain is empty.
func (h *Handlers[E, O, S]) dispatchAny(event any, state *S) (any, bool) {
	e, ok := event.(E)
	if !ok {
		return nil, false
	}
	out, ok := h.Handle(e, state)
	if !ok {
		return nil, false
	}
	return out, true
}

// System routes events to the handler chain registered for their type. One
// System hosts chains for any number of unrelated event kinds; each chain
// fixes its event, output, and shared-state types when it is first created
// with HandlersFor, and lives for the System's lifetime.
//
// The zero value is an empty System ready to use.
type System[S any] struct {
	chains map[reflect.Type]anyHandlers[S]
}

// HandlersFor returns the handler chain for event kind E, creating an empty
// chain on first use. Repeated calls with the same E return the same chain,
// so registration can happen in stages.
//
// HandlersFor panics if E's chain was created with a different output type.
//
// Parameters:
//   - sys: The System hosting the chain.
//
// Returns:
//   - The chain for events of type E with outputs of type O.
func HandlersFor[E, O, S any](sys *System[S]) *Handlers[E, O, S] {
	t := reflect.TypeFor[E]()
	if sys.chains == nil {
		sys.chains = make(map[reflect.Type]anyHandlers[S])
	}
	if c, ok := sys.chains[t]; ok {
		h, ok := c.(*Handlers[E, O, S])
		if !ok {
			panic(fmt.Sprintf("kiban: handlers for %s registered with a different output type", t))
		}
		return h
	}
	h := &Handlers[E, O, S]{}
	sys.chains[t] = h
	return h
}

// Dispatch routes one event to the chain registered for its type and
// returns the chain's output. It returns false when no chain was ever
// created for E or the chain is empty; the caller keeps the event and can
// fall back to another system.
//
// Dispatch panics if E's chain was created with a different output type.
//
// Parameters:
//   - sys: The System to dispatch into.
//   - event: The event to dispatch.
//   - state: The shared state threaded through the chain.
//
// Returns:
//   - The chain's output and true, or the zero output and false if nothing
//     handled the event.
func Dispatch[E, O, S any](sys *System[S], event E, state *S) (O, bool) {
	t := reflect.TypeFor[E]()
	c, ok := sys.chains[t]
	if !ok {
		var zero O
		return zero, false
	}
	h, ok := c.(*Handlers[E, O, S])
	if !ok {
		panic(fmt.Sprintf("kiban: handlers for %s registered with a different output type", t))
	}
	return h.Handle(event, state)
}

// DispatchAny routes an event whose concrete type is only known at runtime,
// as when events arrive from a platform loop. On success it returns the
// matching chain's output, boxed. It returns an *UnhandledEventError
// carrying the original event when no chain exists for the event's dynamic
// type, when the chain's concrete event type does not match, or when the
// chain is empty.
func (sys *System[S]) DispatchAny(event any, state *S) (any, error) {
	c, ok := sys.chains[reflect.TypeOf(event)]
	if !ok {
		return nil, &UnhandledEventError{Event: event}
	}
	out, ok := c.dispatchAny(event, state)
	if !ok {
		return nil, &UnhandledEventError{Event: event}
	}
	return out, nil
}

// UnhandledEventError reports an event no chain handled. It carries the
// event so the caller can reroute it.
type UnhandledEventError struct {
	Event any
}

func (e *UnhandledEventError) Error() string {
	return fmt.Sprintf("kiban: no handlers for event %T", e.Event)
}
