package kiban

import (
	"fmt"
	"reflect"
	"sync"
)

// registeredStore pairs one component kind's type-erased store with the
// reader-writer lock that guards it.
type registeredStore struct {
	mu    sync.RWMutex
	store any
}

// World owns the entity table and one generational component store per
// registered component kind. Entities are allocated and dropped through the
// World; component data is reached through locked views obtained with
// Components and ComponentsMut.
//
// The entity table itself is not synchronized: allocate, drop, and iterate
// entities from the goroutine that owns the World. Each component kind
// carries its own reader-writer lock, so views of different kinds can be
// held concurrently and any number of read views of one kind can coexist.
// Nothing orders lock acquisition across kinds; callers holding views of
// several kinds at once must pick a consistent acquisition order themselves.
type World struct {
	entities []entityState
	stores   map[reflect.Type]*registeredStore
}

// NewWorld creates an empty World with memory for the given number of
// entities pre-allocated.
//
// Parameters:
//   - capacity: The number of entity slots to pre-allocate memory for.
//     Choosing a suitable capacity can prevent re-allocations during runtime.
//
// Returns:
//   - The newly created World.
func NewWorld(capacity int) *World {
	return &World{
		entities: make([]entityState, 0, capacity),
		stores:   make(map[reflect.Type]*registeredStore),
	}
}

// NewEntity allocates an entity and returns its handle. The first dead slot
// in the table is reused with a bumped version; when every slot is alive the
// table grows by one slot at version 0. The linear scan trades allocation
// speed for a table bounded by the peak alive count.
func (w *World) NewEntity() Entity {
	for i := range w.entities {
		if !w.entities[i].alive {
			w.entities[i].version++
			w.entities[i].alive = true
			return Entity{ID: uint32(i), Version: w.entities[i].version}
		}
	}
	w.entities = append(w.entities, entityState{alive: true})
	return Entity{ID: uint32(len(w.entities) - 1)}
}

// IsAlive reports whether e refers to a currently alive entity: the slot at
// e's ID must be alive and its current version must equal e's.
func (w *World) IsAlive(e Entity) bool {
	i := int(e.ID)
	if i >= len(w.entities) {
		return false
	}
	s := w.entities[i]
	return s.alive && s.version == e.Version
}

// IsDead reports whether e does not refer to a currently alive entity. A
// stale handle to a recycled slot is dead even though the slot itself is
// alive again under a newer version.
func (w *World) IsDead(e Entity) bool {
	return !w.IsAlive(e)
}

// DropEntity kills the entity e refers to. The slot keeps its version until
// it is reused, so every handle to the dropped entity reads as dead without
// aliasing the slot's next occupant. Dropping a dead, stale, or
// out-of-range handle is a no-op.
func (w *World) DropEntity(e Entity) {
	if !w.IsAlive(e) {
		return
	}
	w.entities[e.ID].alive = false
}

// Entities returns a cursor over the handles of all currently alive
// entities in table order.
func (w *World) Entities() *EntityIter {
	return &EntityIter{w: w, i: -1}
}

// registered returns the registry entry for component type t, panicking if
// the kind was never registered with the world.
func (w *World) registered(t reflect.Type) *registeredStore {
	r, ok := w.stores[t]
	if !ok {
		panic(fmt.Sprintf("kiban: component type %s not registered", t))
	}
	return r
}

// EntityIter iterates over the alive entities of a World in ascending slot
// order. Call Next to advance; Entity is valid after Next reports true.
// Reset rewinds the cursor for another pass.
type EntityIter struct {
	w *World
	i int
}

// Reset rewinds the iterator to the start of the entity table.
func (it *EntityIter) Reset() {
	it.i = -1
}

// Next advances to the next alive entity. It returns false when the table
// is exhausted.
func (it *EntityIter) Next() bool {
	for it.i+1 < len(it.w.entities) {
		it.i++
		if it.w.entities[it.i].alive {
			return true
		}
	}
	return false
}

// Entity returns the handle of the current entity.
func (it *EntityIter) Entity() Entity {
	return Entity{ID: uint32(it.i), Version: it.w.entities[it.i].version}
}
