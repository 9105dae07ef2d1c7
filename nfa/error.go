// Package nfa builds and runs Thompson epsilon-NFAs over a postfix token
// sequence produced by the normalize package. A fragment stack evaluator
// folds each token into a composite automaton. States are never
// renumbered: a single shared builder hands out monotonically increasing
// ids, so fragments occupy disjoint ranges and no two live fragments ever
// collide.
package nfa

import (
	"errors"
	"fmt"
)

// Sentinel errors for the MalformedRegex and InternalInvariantBroken causes
// that can originate in this package.
var (
	// ErrStackUnderflow indicates an operator was applied with too few
	// fragments on the evaluator's stack.
	ErrStackUnderflow = errors.New("fragment stack underflow")

	// ErrMalformedPostfix indicates the postfix token sequence left more
	// than one fragment on the stack, or none at all, once exhausted.
	ErrMalformedPostfix = errors.New("malformed postfix sequence")

	// ErrNullSymbolInInput indicates Accept was given an input string
	// containing the reserved ε meta-symbol.
	ErrNullSymbolInInput = errors.New("input contains null symbol ε")

	// ErrUnknownSymbol indicates Accept was given an input symbol outside
	// the NFA's alphabet.
	ErrUnknownSymbol = errors.New("input symbol outside alphabet")
)

// BuildError reports a builder-level invariant violation: a bad state
// reference passed to Patch/PatchSplit, or a state ID out of bounds.
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("nfa: build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("nfa: build error: %s", e.Message)
}

// CompileError reports a Thompson-construction failure, together with the
// postfix sequence being evaluated when it happened.
type CompileError struct {
	Postfix string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("nfa: cannot build from postfix %q: %v", e.Postfix, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// AcceptError reports a recognizer-input violation: ε in the input, or a
// symbol outside the automaton's alphabet.
type AcceptError struct {
	Input string
	Err   error
}

// Error implements the error interface.
func (e *AcceptError) Error() string {
	return fmt.Sprintf("nfa: cannot accept %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *AcceptError) Unwrap() error {
	return e.Err
}
