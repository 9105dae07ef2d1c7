package dfa

import "github.com/corefsm/automaton/normalize"

// Accept runs the DFA recognizer over input: a single current state
// starting at the DFA's start state, advanced one input symbol at a time
// through the total transition function. Accepts iff the current state is
// accepting once input is exhausted.
//
// It is an error for input to contain the ε meta-symbol, or any symbol
// outside the DFA's alphabet.
func Accept(d *DFA, input string) (bool, error) {
	return d.Accept(input)
}

// Accept is the method form of the package-level Accept, letting callers
// treat NFAs and DFAs uniformly through a shared recognition interface.
func (d *DFA) Accept(input string) (bool, error) {
	current := d.Start()
	trapped := false

	for _, r := range input {
		if r == normalize.Null {
			return false, &AcceptError{Input: input, Err: ErrNullSymbolInInput}
		}
		if !d.HasSymbol(r) {
			return false, &AcceptError{Input: input, Err: ErrUnknownSymbol}
		}

		// The trap self-loops on every symbol and is never accepting,
		// so no later symbol can change the verdict. Input is still
		// scanned in full so an ε or out-of-alphabet symbol later on
		// still surfaces as an error rather than a partial verdict.
		if trapped {
			continue
		}

		next, ok := d.Step(current, r)
		if !ok {
			return false, &AcceptError{Input: input, Err: &InvariantError{State: current, Err: ErrMissingTransition}}
		}
		current = next
		if d.HasTrap() && current == d.Trap() {
			trapped = true
		}
	}

	return d.IsAccepting(current), nil
}
