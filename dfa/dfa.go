// Package dfa defines the total, deterministic finite automaton produced
// by the powerset construction (package dfa/powerset) and, optionally,
// by partition refinement (package dfa/minimize). A DFA is immutable once
// built: every (state, symbol) pair has exactly one successor, including
// the trap state introduced to make an otherwise-partial transition
// function total.
package dfa

import (
	"fmt"
	"sort"
)

// StateID uniquely identifies a state within a single DFA.
type StateID uint32

// InvalidState is the sentinel for an unset or absent state reference.
const InvalidState StateID = 0xFFFFFFFF

// DFA is an immutable, total deterministic finite automaton: one start
// state, a set of accepting states, and a transition function with
// exactly one successor for every (state, symbol) pair.
type DFA struct {
	numStates   int
	alphabet    []rune
	transitions map[StateID]map[rune]StateID
	start       StateID
	accepting   map[StateID]struct{}

	// trap is the trap state introduced by trap completion, or
	// InvalidState if the subset construction was already total and no
	// trap was needed.
	trap StateID
}

// New assembles a DFA from its parts. Callers are expected to be the
// powerset and minimize packages, which already guarantee totality;
// New does not re-validate it.
func New(numStates int, alphabet []rune, transitions map[StateID]map[rune]StateID, start StateID, accepting map[StateID]struct{}, trap StateID) *DFA {
	return &DFA{
		numStates:   numStates,
		alphabet:    alphabet,
		transitions: transitions,
		start:       start,
		accepting:   accepting,
		trap:        trap,
	}
}

// Start returns the DFA's start state.
func (d *DFA) Start() StateID { return d.start }

// States returns the total number of states.
func (d *DFA) States() int { return d.numStates }

// HasTrap reports whether a trap state was introduced during trap
// completion. If false, the subset construction was already total.
func (d *DFA) HasTrap() bool { return d.trap != InvalidState }

// Trap returns the trap state's ID, or InvalidState if none exists.
func (d *DFA) Trap() StateID { return d.trap }

// IsAccepting reports whether state is a member of the accepting set.
func (d *DFA) IsAccepting(state StateID) bool {
	_, ok := d.accepting[state]
	return ok
}

// Accepting returns the accepting states, sorted for determinism.
func (d *DFA) Accepting() []StateID {
	out := make([]StateID, 0, len(d.accepting))
	for s := range d.accepting {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Alphabet returns Σ, sorted for determinism.
func (d *DFA) Alphabet() []rune {
	out := make([]rune, len(d.alphabet))
	copy(out, d.alphabet)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasSymbol reports whether r is in the DFA's alphabet.
func (d *DFA) HasSymbol(r rune) bool {
	for _, s := range d.alphabet {
		if s == r {
			return true
		}
	}
	return false
}

// Step returns the successor of (state, symbol). The boolean is false
// only when the automaton is not total for that pair, which should
// never happen for a DFA that has been through trap completion.
func (d *DFA) Step(state StateID, symbol rune) (StateID, bool) {
	row, ok := d.transitions[state]
	if !ok {
		return InvalidState, false
	}
	next, ok := row[symbol]
	return next, ok
}

// Transitions returns the full transition row for state, for callers
// (diagram export, minimization) that need to enumerate every outgoing
// edge rather than step one symbol at a time. The returned map must not
// be mutated.
func (d *DFA) Transitions(state StateID) map[rune]StateID {
	return d.transitions[state]
}

// String renders a short summary of the DFA.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states: %d, start: %d, accepting: %d, trap: %v}", d.numStates, d.start, len(d.accepting), d.HasTrap())
}
