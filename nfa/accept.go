package nfa

import (
	"github.com/corefsm/automaton/internal/sparse"
	"github.com/corefsm/automaton/normalize"
)

// Accept runs the NFA recognizer over input: it tracks the set of live
// states (closed under epsilon transitions) and advances it one input
// symbol at a time, accepting iff the NFA's accept state is live once
// input is exhausted.
//
// It is an error for input to contain the ε meta-symbol, or any symbol
// outside the NFA's alphabet.
func Accept(n *NFA, input string) (bool, error) {
	return n.Accept(input)
}

// Accept is the method form of the package-level Accept, letting callers
// treat NFAs and DFAs uniformly through a shared recognition interface.
func (n *NFA) Accept(input string) (bool, error) {
	closure := NewClosure(n)
	current := closure.Of(n.Start())

	for _, r := range input {
		if r == normalize.Null {
			return false, &AcceptError{Input: input, Err: ErrNullSymbolInInput}
		}
		if !n.HasSymbol(r) {
			return false, &AcceptError{Input: input, Err: ErrUnknownSymbol}
		}

		moved := sparse.NewSparseSet(uint32(n.States()))
		current.Iter(func(v uint32) {
			s := n.State(StateID(v))
			if s == nil || s.Kind() != StateLiteral {
				return
			}
			symbol, target := s.Literal()
			if symbol == r && target != InvalidState {
				moved.Insert(uint32(target))
			}
		})
		current = closure.OfSet(moved)
	}

	return current.Contains(uint32(n.AcceptState())), nil
}
