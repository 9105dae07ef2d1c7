package dfa

import (
	"errors"
	"fmt"
)

// Sentinel errors for the InternalInvariantBroken and recognizer-input
// causes that can originate against a DFA.
var (
	// ErrMissingTransition indicates a (state, symbol) pair had no
	// successor on an automaton that trap completion was supposed to
	// have made total. This signals a bug in the powerset or minimize
	// stage, not bad caller input.
	ErrMissingTransition = errors.New("missing transition on a total DFA")

	// ErrNullSymbolInInput indicates Accept was given an input string
	// containing the reserved ε meta-symbol.
	ErrNullSymbolInInput = errors.New("input contains null symbol ε")

	// ErrUnknownSymbol indicates Accept was given an input symbol outside
	// the DFA's alphabet.
	ErrUnknownSymbol = errors.New("input symbol outside alphabet")
)

// AcceptError reports a recognizer-input violation: ε in the input, or a
// symbol outside the automaton's alphabet.
type AcceptError struct {
	Input string
	Err   error
}

// Error implements the error interface.
func (e *AcceptError) Error() string {
	return fmt.Sprintf("dfa: cannot accept %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *AcceptError) Unwrap() error {
	return e.Err
}

// InvariantError reports a broken totality invariant discovered at
// recognition time.
type InvariantError struct {
	State StateID
	Err   error
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("dfa: invariant broken at state %d: %v", e.State, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *InvariantError) Unwrap() error {
	return e.Err
}
