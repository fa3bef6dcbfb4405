package kiban

// sparseSlot is one cell of a SparseArray: a value plus a presence flag.
type sparseSlot[T any] struct {
	value   T
	present bool
}

// SparseArray is a growable, index-addressable sequence of optional slots.
// Reads outside the current length report absent rather than failing; a
// write beyond the current length grows the array, leaving the intermediate
// slots absent. The array never shrinks.
//
// The zero value is an empty array ready to use.
type SparseArray[T any] struct {
	slots []sparseSlot[T]
}

// Get returns a pointer to the value stored at index i, or nil if the index
// is out of range or the slot is unset.
func (s *SparseArray[T]) Get(i int) *T {
	if i < 0 || i >= len(s.slots) || !s.slots[i].present {
		return nil
	}
	return &s.slots[i].value
}

// Set stores v at index i, growing the array as needed. It returns the
// value previously stored at i and whether one was present.
func (s *SparseArray[T]) Set(i int, v T) (T, bool) {
	if i < 0 {
		panic("kiban: negative index in SparseArray.Set")
	}
	if i >= len(s.slots) {
		s.slots = extendSlice(s.slots, i+1-len(s.slots))
	}
	prev := s.slots[i]
	s.slots[i] = sparseSlot[T]{value: v, present: true}
	if !prev.present {
		var zero T
		return zero, false
	}
	return prev.value, true
}

// Remove takes the value at index i out of the array, leaving the slot
// absent. It returns the removed value and whether one was present.
func (s *SparseArray[T]) Remove(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(s.slots) || !s.slots[i].present {
		return zero, false
	}
	v := s.slots[i].value
	s.slots[i] = sparseSlot[T]{}
	return v, true
}

// RemoveIf removes the value at index i only if pred holds for it. It
// returns the removed value and whether a removal happened.
func (s *SparseArray[T]) RemoveIf(i int, pred func(T) bool) (T, bool) {
	var zero T
	if i < 0 || i >= len(s.slots) || !s.slots[i].present {
		return zero, false
	}
	if !pred(s.slots[i].value) {
		return zero, false
	}
	v := s.slots[i].value
	s.slots[i] = sparseSlot[T]{}
	return v, true
}

// Has reports whether a value is present at index i.
func (s *SparseArray[T]) Has(i int) bool {
	return i >= 0 && i < len(s.slots) && s.slots[i].present
}

// Iter returns a cursor over all present values in ascending index order.
func (s *SparseArray[T]) Iter() *SparseIter[T] {
	return &SparseIter[T]{s: s, i: -1}
}

// SparseIter iterates over the present slots of a SparseArray in index
// order, skipping absent slots. Call Next to advance; Index and Value are
// valid after Next reports true. Reset rewinds the cursor for another pass.
type SparseIter[T any] struct {
	s *SparseArray[T]
	i int
}

// Reset rewinds the iterator to the start of the array.
func (it *SparseIter[T]) Reset() {
	it.i = -1
}

// Next advances to the next present slot. It returns false when the array
// is exhausted.
func (it *SparseIter[T]) Next() bool {
	for it.i+1 < len(it.s.slots) {
		it.i++
		if it.s.slots[it.i].present {
			return true
		}
	}
	return false
}

// Index returns the index of the current slot.
func (it *SparseIter[T]) Index() int {
	return it.i
}

// Value returns a pointer to the current slot's value.
func (it *SparseIter[T]) Value() *T {
	return &it.s.slots[it.i].value
}
