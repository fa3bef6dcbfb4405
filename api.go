package kiban

import (
	"reflect"
	"sync"
)

// RegisterComponent registers component kind T with the world, creating an
// empty store for it. Registering a kind that is already registered replaces
// its store and discards any component data held for that kind;
// registration is a setup-time operation.
//
// All component kinds must be registered before Components or ComponentsMut
// is called for them.
//
// Parameters:
//   - w: The World to register the component kind with.
func RegisterComponent[T any](w *World) {
	if w.stores == nil {
		w.stores = make(map[reflect.Type]*registeredStore)
	}
	w.stores[reflect.TypeFor[T]()] = &registeredStore{store: &Store[T]{}}
}

// Components acquires the read lock for component kind T and returns a read
// view of its store. Any number of read views of the same kind may be held
// at once; a write view excludes them. The view must be released with Close
// exactly once.
//
// Components panics if T was never registered with the world.
//
// Parameters:
//   - w: The World to read from.
//
// Returns:
//   - A read view of the store for component kind T.
func Components[T any](w *World) View[T] {
	r := w.registered(reflect.TypeFor[T]())
	r.mu.RLock()
	return View[T]{store: r.store.(*Store[T]), mu: &r.mu}
}

// ComponentsMut acquires the write lock for component kind T and returns a
// write view of its store. A write view excludes every other view of the
// same kind. The view must be released with Close exactly once; pointers
// obtained from it are valid only until then.
//
// ComponentsMut panics if T was never registered with the world.
//
// Parameters:
//   - w: The World to write to.
//
// Returns:
//   - A write view of the store for component kind T.
func ComponentsMut[T any](w *World) MutView[T] {
	r := w.registered(reflect.TypeFor[T]())
	r.mu.Lock()
	return MutView[T]{store: r.store.(*Store[T]), mu: &r.mu}
}

// View is a shared view of one component kind's store. It holds the kind's
// read lock from creation until Close.
type View[T any] struct {
	store *Store[T]
	mu    *sync.RWMutex
}

// Get returns a copy of the component for e and whether one is present.
func (v View[T]) Get(e Entity) (T, bool) {
	p := v.store.Get(e)
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Has reports whether a component is present for e.
func (v View[T]) Has(e Entity) bool {
	return v.store.Has(e)
}

// Close releases the read lock.
func (v View[T]) Close() {
	v.mu.RUnlock()
}

// MutView is an exclusive view of one component kind's store. It holds the
// kind's write lock from creation until Close.
type MutView[T any] struct {
	store *Store[T]
	mu    *sync.RWMutex
}

// Get returns a pointer to the component for e, or nil if none is present.
// The pointer is valid until the view is closed.
func (v MutView[T]) Get(e Entity) *T {
	return v.store.Get(e)
}

// Put stores val as e's component, replacing any previous value.
func (v MutView[T]) Put(e Entity, val T) {
	v.store.Put(e, val)
}

// Remove deletes e's component and returns it, or returns false if e has
// none.
func (v MutView[T]) Remove(e Entity) (T, bool) {
	return v.store.Remove(e)
}

// Has reports whether a component is present for e.
func (v MutView[T]) Has(e Entity) bool {
	return v.store.Has(e)
}

// Close releases the write lock.
func (v MutView[T]) Close() {
	v.mu.Unlock()
}
