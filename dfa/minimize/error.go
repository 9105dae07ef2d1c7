package minimize

import (
	"errors"
	"fmt"

	"github.com/corefsm/automaton/dfa"
)

// Sentinel errors for the InternalInvariantBroken causes that can
// originate during partition refinement.
var (
	// ErrEmptyAutomaton indicates a DFA with zero states was passed to
	// Minimize; the initial partition step requires at least one block.
	ErrEmptyAutomaton = errors.New("cannot minimize a DFA with no states")

	// ErrMissingTransition indicates a representative state had no
	// successor on some symbol in the alphabet, which should never
	// happen for a DFA that came through trap completion.
	ErrMissingTransition = errors.New("missing transition while rebuilding minimized DFA")
)

// InvariantError reports a broken invariant discovered while refining or
// rebuilding the minimized DFA.
type InvariantError struct {
	Block dfa.StateID
	Err   error
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("minimize: invariant broken at block %d: %v", e.Block, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *InvariantError) Unwrap() error {
	return e.Err
}
