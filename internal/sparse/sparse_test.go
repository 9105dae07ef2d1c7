package sparse

import "testing"

func TestSparseSetInsertContains(t *testing.T) {
	s := NewSparseSet(10)
	if s.Contains(3) {
		t.Fatal("empty set should not contain 3")
	}
	s.Insert(3)
	s.Insert(7)
	s.Insert(3) // duplicate insert is a no-op
	if s.Len() != 2 {
		t.Fatalf("len should be 2, got %d", s.Len())
	}
	if !s.Contains(3) || !s.Contains(7) {
		t.Fatal("expected 3 and 7 to be members")
	}
	if s.Contains(4) {
		t.Fatal("4 was never inserted")
	}
}

func TestSparseSetRemove(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	s.Remove(2)
	if s.Len() != 2 {
		t.Fatalf("len should be 2 after remove, got %d", s.Len())
	}
	if s.Contains(2) {
		t.Fatal("2 should have been removed")
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Fatal("remove must not disturb other members")
	}
	s.Remove(2) // removing an absent value is a no-op
	if s.Len() != 2 {
		t.Fatal("removing an absent value should not change len")
	}
}

func TestSparseSetClear(t *testing.T) {
	s := NewSparseSet(5)
	s.Insert(0)
	s.Insert(4)
	s.Clear()
	if !s.IsEmpty() {
		t.Fatal("expected empty set after Clear")
	}
	if s.Contains(0) || s.Contains(4) {
		t.Fatal("Clear must remove all members")
	}
	s.Insert(2)
	if s.Len() != 1 {
		t.Fatalf("set should be reusable after Clear, got len=%d", s.Len())
	}
}

func TestSparseSetValuesAndIter(t *testing.T) {
	s := NewSparseSet(10)
	want := map[uint32]bool{1: true, 4: true, 9: true}
	for v := range want {
		s.Insert(v)
	}

	got := map[uint32]bool{}
	for _, v := range s.Values() {
		got[v] = true
	}
	if len(got) != len(want) {
		t.Fatalf("Values returned %d entries, want %d", len(got), len(want))
	}

	iterGot := map[uint32]bool{}
	s.Iter(func(v uint32) { iterGot[v] = true })
	for v := range want {
		if !iterGot[v] {
			t.Fatalf("Iter missed member %d", v)
		}
	}
}

func TestSparseSetClone(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(2)
	s.Insert(5)

	clone := s.Clone()
	clone.Insert(8)

	if s.Contains(8) {
		t.Fatal("mutating the clone must not affect the original")
	}
	if !clone.Contains(2) || !clone.Contains(5) || !clone.Contains(8) {
		t.Fatal("clone should contain original members plus its own inserts")
	}
	if s.Len() != 2 {
		t.Fatalf("original set len should stay 2, got %d", s.Len())
	}
}
