package kiban

// versioned pairs a component value with the entity version it was written
// under.
type versioned[T any] struct {
	version uint32
	value   T
}

// Store maps entity slots to component values of one kind, remembering the
// entity version each value was written under. Reads and removals succeed
// only when the stored version matches the handle's version, so a stale
// handle whose slot has been recycled can never observe the data of the
// slot's new occupant.
//
// Store performs no locking and no liveness checks of its own; the World
// wraps each registered store in a reader-writer lock and gates access
// through live handles.
//
// The zero value is an empty store ready to use.
type Store[T any] struct {
	slots SparseArray[versioned[T]]
}

// Get returns a pointer to the component for e, or nil if e's slot is empty
// or holds a value written under a different version.
func (s *Store[T]) Get(e Entity) *T {
	v := s.slots.Get(int(e.ID))
	if v == nil || v.version != e.Version {
		return nil
	}
	return &v.value
}

// Put stores val for e, overwriting whatever the slot held before. The
// write always lands under e's version, even when the slot holds a value
// written under a newer one; callers are expected to reach Put only through
// live handles.
func (s *Store[T]) Put(e Entity, val T) {
	s.slots.Set(int(e.ID), versioned[T]{version: e.Version, value: val})
}

// Remove deletes the component for e and returns it. It returns false
// without removing anything when e's slot is empty or holds a value written
// under a different version.
func (s *Store[T]) Remove(e Entity) (T, bool) {
	v, ok := s.slots.RemoveIf(int(e.ID), func(v versioned[T]) bool {
		return v.version == e.Version
	})
	if !ok {
		var zero T
		return zero, false
	}
	return v.value, true
}

// Has reports whether a component is present for e.
func (s *Store[T]) Has(e Entity) bool {
	return s.Get(e) != nil
}
