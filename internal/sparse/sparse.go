// Package sparse provides a sparse set data structure for efficient
// membership testing over a bounded universe of small integers.
//
// A sparse set supports O(1) insertion, membership testing, and clearing
// while maintaining a dense list of its members for iteration. It is used
// throughout the automaton packages to track sets of NFA state IDs: the
// states reachable by an epsilon-closure (which also serves as the
// closure worklist's guard against epsilon cycles), the live states of the
// NFA recognizer, and the states making up a DFA subset during the
// powerset construction.
package sparse

// SparseSet is a set of uint32 values drawn from [0, capacity) that
// supports O(1) insertion, membership testing, and clearing. The sparse
// array maps values to indices in the dense array; a value is a member
// iff its sparse-array slot points back into the live prefix of dense.
type SparseSet struct {
	sparse []uint32 // sparse[v] = index of v in dense, if v is a member
	dense  []uint32 // dense[:size] holds the current members
	size   uint32
}

// NewSparseSet creates a new sparse set over the universe [0, capacity).
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, capacity),
		size:   0,
	}
}

// Insert adds a value to the set. A no-op if already present.
// Panics if value >= capacity.
func (s *SparseSet) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense[s.size] = value
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is a member of the set.
func (s *SparseSet) Contains(value uint32) bool {
	if int(value) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Remove removes a value from the set. A no-op if absent.
func (s *SparseSet) Remove(value uint32) {
	if !s.Contains(value) {
		return
	}
	idx := s.sparse[value]
	last := s.dense[s.size-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.size--
}

// Clear empties the set in O(1) time. Previously inserted values remain
// in the backing dense array past size but are no longer members.
func (s *SparseSet) Clear() {
	s.size = 0
}

// Len returns the number of members currently in the set.
func (s *SparseSet) Len() int {
	return int(s.size)
}

// Size is an alias for Len, kept for callers that read more naturally with
// a capacity-flavored name (e.g. "how big is this subset").
func (s *SparseSet) Size() int {
	return s.Len()
}

// IsEmpty reports whether the set has no members.
func (s *SparseSet) IsEmpty() bool {
	return s.size == 0
}

// Values returns the current members in unspecified order. The returned
// slice aliases the set's internal storage and is only valid until the
// next mutating call.
func (s *SparseSet) Values() []uint32 {
	return s.dense[:s.size]
}

// Iter calls f once for every member, in unspecified order.
func (s *SparseSet) Iter(f func(uint32)) {
	for i := uint32(0); i < s.size; i++ {
		f(s.dense[i])
	}
}

// Clone returns an independent copy of the set.
func (s *SparseSet) Clone() *SparseSet {
	c := &SparseSet{
		sparse: make([]uint32, len(s.sparse)),
		dense:  make([]uint32, len(s.dense)),
		size:   s.size,
	}
	copy(c.sparse, s.sparse)
	copy(c.dense, s.dense)
	return c
}
