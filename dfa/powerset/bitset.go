package powerset

import "encoding/binary"

// bitset is an arbitrary-width (not capped at 64 states) canonical
// representation of a subset of NFA state IDs, used as the map key that
// drives DFA state coalescing during subset construction. A word-slice
// bitset sized to the NFA's actual state count has no state-id cap, so
// no sorted-list fallback is needed for large automata.
type bitset []uint64

// newBitset allocates a bitset wide enough to hold numStates bits.
func newBitset(numStates int) bitset {
	words := (numStates + 63) / 64
	if words == 0 {
		words = 1
	}
	return make(bitset, words)
}

// set marks bit i as a member.
func (b bitset) set(i uint32) {
	b[i/64] |= 1 << (i % 64)
}

// key returns a byte string uniquely determined by the set of bits that
// are set, suitable as a map key. Two bitsets with the same members,
// however they were built, produce identical keys — this is what makes
// subset identity well defined regardless of discovery order.
func (b bitset) key() string {
	buf := make([]byte, 8*len(b))
	for i, w := range b {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return string(buf)
}
