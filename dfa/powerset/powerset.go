// Package powerset converts a Thompson ε-NFA into a total DFA by the
// subset (powerset) construction: each DFA state is the ε-closure of a
// set of NFA states, discovered breadth-first from the NFA's start
// closure, with trap completion applied once exploration is exhausted.
package powerset

import (
	"github.com/corefsm/automaton/dfa"
	"github.com/corefsm/automaton/internal/conv"
	"github.com/corefsm/automaton/internal/sparse"
	"github.com/corefsm/automaton/nfa"
)

// Build runs the subset construction over n, producing a total DFA. DFA
// id 0 is always the start state; ids are assigned in discovery order.
// A trap state is appended only if
// the subset construction left any (state, symbol) pair without a
// successor.
func Build(n *nfa.NFA) *dfa.DFA {
	alphabet := n.Alphabet()
	closure := nfa.NewClosure(n)

	var subsets []*sparse.SparseSet
	canonical := make(map[string]dfa.StateID)

	allocate := func(set *sparse.SparseSet) (dfa.StateID, bool) {
		key := toBitset(set, n.States()).key()
		if id, ok := canonical[key]; ok {
			return id, false
		}
		id := dfa.StateID(len(subsets))
		subsets = append(subsets, set)
		canonical[key] = id
		return id, true
	}

	startID, _ := allocate(closure.Of(n.Start()))

	transitions := make(map[dfa.StateID]map[rune]dfa.StateID)
	accepting := make(map[dfa.StateID]struct{})

	queue := []dfa.StateID{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		set := subsets[id]

		if set.Contains(uint32(n.AcceptState())) {
			accepting[id] = struct{}{}
		}

		row := make(map[rune]dfa.StateID, len(alphabet))
		for _, sigma := range alphabet {
			reached := sparse.NewSparseSet(uint32(n.States()))
			set.Iter(func(v uint32) {
				s := n.State(nfa.StateID(v))
				if s == nil || s.Kind() != nfa.StateLiteral {
					return
				}
				symbol, target := s.Literal()
				if symbol == sigma && target != nfa.InvalidState {
					reached.Insert(uint32(target))
				}
			})
			if reached.IsEmpty() {
				// No successor on this symbol from this subset; trap
				// completion fills it in once exploration is done.
				continue
			}

			next := closure.OfSet(reached)
			nextID, isNew := allocate(next)
			row[sigma] = nextID
			if isNew {
				queue = append(queue, nextID)
			}
		}
		transitions[id] = row
	}

	trap := completeTraps(transitions, alphabet, conv.IntToUint32(len(subsets)))

	return dfa.New(len(subsets)+trapCount(trap), alphabet, transitions, startID, accepting, trap)
}

// completeTraps scans every discovered state's row for a missing
// (state, symbol) entry. If any exist, it allocates one fresh trap state
// with a self-loop on every symbol and redirects every missing edge to
// it; if the subset construction already happened to be total, no trap
// state is introduced and InvalidState is returned.
func completeTraps(transitions map[dfa.StateID]map[rune]dfa.StateID, alphabet []rune, nextID uint32) dfa.StateID {
	trap := dfa.InvalidState
	for _, row := range transitions {
		for _, sigma := range alphabet {
			if _, ok := row[sigma]; ok {
				continue
			}
			if trap == dfa.InvalidState {
				trap = dfa.StateID(nextID)
				self := make(map[rune]dfa.StateID, len(alphabet))
				for _, s := range alphabet {
					self[s] = trap
				}
				transitions[trap] = self
			}
			row[sigma] = trap
		}
	}
	return trap
}

func trapCount(trap dfa.StateID) int {
	if trap == dfa.InvalidState {
		return 0
	}
	return 1
}

// toBitset renders set as a canonical bitset keyed independent of
// discovery order; subset identity is what coalesces DFA states.
func toBitset(set *sparse.SparseSet, numNFAStates int) bitset {
	b := newBitset(numNFAStates)
	set.Iter(func(v uint32) { b.set(v) })
	return b
}
