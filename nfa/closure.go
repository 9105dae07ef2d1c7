package nfa

import "github.com/corefsm/automaton/internal/sparse"

// Closure computes and memoizes epsilon-closures over a single NFA. A
// Closure is cheap to create and is meant to live for the duration of one
// consumer (a single Accept call, or the entire lifetime of a powerset
// conversion), so repeated closure requests for the same state are O(1)
// after the first.
type Closure struct {
	nfa   *NFA
	cache map[StateID]*sparse.SparseSet
}

// NewClosure creates a closure calculator for nfa.
func NewClosure(nfa *NFA) *Closure {
	return &Closure{nfa: nfa, cache: make(map[StateID]*sparse.SparseSet)}
}

// Of returns the set of states reachable from state via zero or more
// epsilon transitions, including state itself.
//
// The traversal is an explicit worklist rather than recursion: cycles in
// the epsilon graph (every star and plus builds one) are handled by the
// result set itself, since a state already collected is never enqueued
// again. Only the complete result is cached. An intermediate state's
// closure is never written to the cache here: a partial set observed
// mid-traversal is not that state's closure, and caching it would
// poison later lookups that reach the state through a different edge.
func (c *Closure) Of(state StateID) *sparse.SparseSet {
	if cached, ok := c.cache[state]; ok {
		return cached
	}

	result := sparse.NewSparseSet(uint32(c.nfa.States()))
	result.Insert(uint32(state))
	work := []StateID{state}

	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]

		if s != state {
			if cached, ok := c.cache[s]; ok {
				cached.Iter(func(v uint32) { result.Insert(v) })
				continue
			}
		}

		for _, target := range c.epsilonTargets(s) {
			if target == InvalidState || result.Contains(uint32(target)) {
				continue
			}
			result.Insert(uint32(target))
			work = append(work, target)
		}
	}

	c.cache[state] = result
	return result
}

// OfSet returns the union of Of(s) over every member of states.
func (c *Closure) OfSet(states *sparse.SparseSet) *sparse.SparseSet {
	result := sparse.NewSparseSet(uint32(c.nfa.States()))
	states.Iter(func(v uint32) {
		c.Of(StateID(v)).Iter(func(w uint32) { result.Insert(w) })
	})
	return result
}

// epsilonTargets returns the states reachable from s by a single epsilon
// transition. Literal and Match states have none.
func (c *Closure) epsilonTargets(s StateID) []StateID {
	st := c.nfa.State(s)
	if st == nil {
		return nil
	}
	switch st.Kind() {
	case StateEpsilon:
		return []StateID{st.Epsilon()}
	case StateSplit:
		left, right := st.Split()
		return []StateID{left, right}
	default:
		return nil
	}
}
