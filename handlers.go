package kiban

// Handler processes one event of type E, producing an output of type O. The
// context gives it the shared state of type S and the option to delegate
// the event to the next handler in its chain.
type Handler[E, O, S any] func(event E, ctx *Context[E, O, S]) O

// Handlers is the ordered handler chain for one event kind. The first
// handler receives the event; each handler chooses whether to pass it on
// through its context, and the chain stops the moment a handler returns
// without delegating. The zero value is an empty chain ready to use.
type Handlers[E, O, S any] struct {
	handlers []Handler[E, O, S]
}

// Append adds a handler that runs after all currently registered handlers.
func (h *Handlers[E, O, S]) Append(fn Handler[E, O, S]) {
	h.handlers = append(h.handlers, fn)
}

// Prepend adds a handler that runs before all currently registered handlers.
func (h *Handlers[E, O, S]) Prepend(fn Handler[E, O, S]) {
	h.handlers = append(h.handlers, nil)
	copy(h.handlers[1:], h.handlers)
	h.handlers[0] = fn
}

// Handle runs the chain for one event. It returns false without invoking
// anything when the chain is empty, so the caller keeps the event and can
// fall back to another dispatch path. Otherwise the first handler is
// invoked with a context covering the rest of the chain, and its output is
// returned; how far the chain runs is up to each handler's delegation.
//
// Parameters:
//   - event: The event to handle.
//   - state: The shared state threaded through the chain.
//
// Returns:
//   - The first handler's output and true, or the zero output and false if
//     the chain has no handlers.
func (h *Handlers[E, O, S]) Handle(event E, state *S) (O, bool) {
	if len(h.handlers) == 0 {
		var zero O
		return zero, false
	}
	ctx := &Context[E, O, S]{chain: h, next: 1, state: state}
	return h.handlers[0](event, ctx), true
}

// Context is handed to each handler invocation. It carries the shared state
// and a cursor over the handlers remaining in the chain. A context is
// single-use: once its handler has delegated through it, neither the state
// nor a second delegation is reachable. A handler either works with the
// state itself or hands the event on and works with the returned output,
// never both through the same context.
type Context[E, O, S any] struct {
	chain     *Handlers[E, O, S]
	next      int
	state     *S
	delegated bool
}

// State returns the shared state. It panics if this context has already
// delegated.
func (c *Context[E, O, S]) State() *S {
	if c.delegated {
		panic("kiban: context state accessed after delegating")
	}
	return c.state
}

// Delegate passes the event to the next handler in the chain and returns
// that handler's output. It returns false if no handlers remain, leaving
// the caller to produce its own output. Delegating twice through the same
// context panics.
func (c *Context[E, O, S]) Delegate(event E) (O, bool) {
	if c.delegated {
		panic("kiban: context has already delegated")
	}
	c.delegated = true
	if c.next >= len(c.chain.handlers) {
		var zero O
		return zero, false
	}
	ctx := &Context[E, O, S]{chain: c.chain, next: c.next + 1, state: c.state}
	return c.chain.handlers[c.next](event, ctx), true
}
