package kiban

// Handle refers to a value stored in an Arena. It stays valid until the
// value is removed; a handle to a removed value never resolves again, even
// after the slot is reused.
type Handle[T any] struct {
	index   int
	version uint32
}

// arenaEntry is one Arena slot. The version is bumped when the slot's value
// is removed, so outstanding handles to it go stale.
type arenaEntry[T any] struct {
	version uint32
	value   T
	present bool
}

// Arena stores values of one type in recyclable slots addressed by
// generational handles, for engine data that needs stable references
// without pointers. The zero value is an empty arena ready to use.
type Arena[T any] struct {
	entries []arenaEntry[T]
}

// Add stores v in the first free slot, or a fresh slot if every one is
// occupied, and returns its handle.
func (a *Arena[T]) Add(v T) Handle[T] {
	for i := range a.entries {
		if !a.entries[i].present {
			a.entries[i].value = v
			a.entries[i].present = true
			return Handle[T]{index: i, version: a.entries[i].version}
		}
	}
	a.entries = append(a.entries, arenaEntry[T]{value: v, present: true})
	return Handle[T]{index: len(a.entries) - 1}
}

// Get returns a pointer to the value h refers to, or nil if the value was
// removed or the slot has been reused.
func (a *Arena[T]) Get(h Handle[T]) *T {
	e := a.entry(h)
	if e == nil || !e.present {
		return nil
	}
	return &e.value
}

// Remove deletes the value h refers to, invalidating every outstanding
// handle to it. Removing through a stale handle is a no-op.
func (a *Arena[T]) Remove(h Handle[T]) {
	if e := a.entry(h); e != nil {
		var zero T
		e.version++
		e.present = false
		e.value = zero
	}
}

// Take removes the value h refers to and returns it, invalidating every
// outstanding handle to it. It returns false for a stale handle.
func (a *Arena[T]) Take(h Handle[T]) (T, bool) {
	var zero T
	e := a.entry(h)
	if e == nil {
		return zero, false
	}
	e.version++
	if !e.present {
		return zero, false
	}
	v := e.value
	e.present = false
	e.value = zero
	return v, true
}

// entry resolves h to its slot, or nil when the index is out of range or
// the slot has moved on to a newer version.
func (a *Arena[T]) entry(h Handle[T]) *arenaEntry[T] {
	if h.index < 0 || h.index >= len(a.entries) || a.entries[h.index].version != h.version {
		return nil
	}
	return &a.entries[h.index]
}
