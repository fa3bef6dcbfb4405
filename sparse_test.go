package kiban

import "testing"

type sparsePayload struct {
	N int
}

func TestSparseArray(t *testing.T) {
	t.Run("Get empty", func(t *testing.T) {
		s := &SparseArray[sparsePayload]{}
		if s.Get(0) != nil {
			t.Error("expected nil")
		}
		if s.Get(100) != nil {
			t.Error("expected nil")
		}
		if s.Get(-1) != nil {
			t.Error("expected nil")
		}
	})

	t.Run("Set and Get", func(t *testing.T) {
		s := &SparseArray[sparsePayload]{}
		s.Set(0, sparsePayload{N: 1})
		s.Set(2, sparsePayload{N: 3})
		if v := s.Get(0); v == nil || v.N != 1 {
			t.Errorf("expected 1, got %v", v)
		}
		if v := s.Get(2); v == nil || v.N != 3 {
			t.Errorf("expected 3, got %v", v)
		}
		if s.Get(1) != nil {
			t.Error("expected nil for intermediate slot")
		}
	})

	t.Run("Set returns previous", func(t *testing.T) {
		s := &SparseArray[sparsePayload]{}
		if _, ok := s.Set(4, sparsePayload{N: 1}); ok {
			t.Error("expected no previous value")
		}
		prev, ok := s.Set(4, sparsePayload{N: 2})
		if !ok || prev.N != 1 {
			t.Errorf("expected previous 1, got %v ok %v", prev, ok)
		}
		if v := s.Get(4); v.N != 2 {
			t.Errorf("expected 2, got %d", v.N)
		}
	})

	t.Run("Set grows", func(t *testing.T) {
		s := &SparseArray[sparsePayload]{}
		s.Set(10, sparsePayload{N: 10})
		for i := 0; i < 10; i++ {
			if s.Has(i) {
				t.Errorf("expected slot %d absent", i)
			}
		}
		if !s.Has(10) {
			t.Error("expected slot 10 present")
		}
	})

	t.Run("Remove", func(t *testing.T) {
		s := &SparseArray[sparsePayload]{}
		s.Set(1, sparsePayload{N: 7})
		v, ok := s.Remove(1)
		if !ok || v.N != 7 {
			t.Errorf("expected 7, got %v ok %v", v, ok)
		}
		if s.Has(1) {
			t.Error("expected slot absent after remove")
		}
		if _, ok := s.Remove(1); ok {
			t.Error("expected second remove to find nothing")
		}
		if _, ok := s.Remove(99); ok {
			t.Error("expected false")
		}
	})

	t.Run("RemoveIf", func(t *testing.T) {
		s := &SparseArray[sparsePayload]{}
		s.Set(3, sparsePayload{N: 5})
		if _, ok := s.RemoveIf(3, func(v sparsePayload) bool { return v.N == 6 }); ok {
			t.Error("expected predicate to block removal")
		}
		if !s.Has(3) {
			t.Error("expected value to survive failed predicate")
		}
		v, ok := s.RemoveIf(3, func(v sparsePayload) bool { return v.N == 5 })
		if !ok || v.N != 5 {
			t.Errorf("expected 5, got %v ok %v", v, ok)
		}
		if s.Has(3) {
			t.Error("expected slot absent")
		}
		if _, ok := s.RemoveIf(3, func(sparsePayload) bool { return true }); ok {
			t.Error("expected false on empty slot")
		}
	})

	t.Run("negative Set panics", func(t *testing.T) {
		s := &SparseArray[sparsePayload]{}
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		s.Set(-1, sparsePayload{})
	})
}

func TestSparseIter(t *testing.T) {
	s := &SparseArray[sparsePayload]{}
	s.Set(0, sparsePayload{N: 0})
	s.Set(3, sparsePayload{N: 3})
	s.Set(7, sparsePayload{N: 7})
	s.Remove(0)
	s.Set(0, sparsePayload{N: 0})

	collect := func(it *SparseIter[sparsePayload]) []int {
		var got []int
		for it.Next() {
			if it.Value().N != it.Index() {
				t.Errorf("expected value %d at index %d", it.Index(), it.Value().N)
			}
			got = append(got, it.Index())
		}
		return got
	}

	it := s.Iter()
	got := collect(it)
	want := []int{0, 3, 7}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	it.Reset()
	if again := collect(it); len(again) != len(want) {
		t.Errorf("expected Reset to restart iteration, got %v", again)
	}

	it.Reset()
	if !it.Next() {
		t.Fatal("expected a first slot")
	}
	it.Value().N = 42
	if s.Get(0).N != 42 {
		t.Error("expected iterator Value to point into the array")
	}
}

func TestSparseIterEmpty(t *testing.T) {
	s := &SparseArray[sparsePayload]{}
	if s.Iter().Next() {
		t.Error("expected no slots")
	}
	s.Set(1, sparsePayload{N: 1})
	s.Remove(1)
	if s.Iter().Next() {
		t.Error("expected no present slots")
	}
}
