package nfa

// Builder constructs an NFA incrementally. A single Builder is shared
// across an entire Thompson evaluation: every fragment it produces draws
// its state IDs from the same monotonically increasing counter, so any
// two fragments are automatically disjoint with no separate renumbering
// pass required before they're wired together.
type Builder struct {
	states []State
	start  StateID
	accept StateID
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{start: InvalidState, accept: InvalidState}
}

// AddLiteral adds a state that consumes symbol and transitions to next.
func (b *Builder) AddLiteral(symbol rune, next StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id, kind: StateLiteral, symbol: symbol, next: next})
	return id
}

// AddEpsilon adds a state with a single epsilon transition to next.
func (b *Builder) AddEpsilon(next StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id, kind: StateEpsilon, next: next})
	return id
}

// AddSplit adds a state offering an epsilon choice between left and
// right.
func (b *Builder) AddSplit(left, right StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id, kind: StateSplit, left: left, right: right})
	return id
}

// AddMatch adds an accepting state with no outgoing transitions.
func (b *Builder) AddMatch() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id, kind: StateMatch})
	return id
}

// Patch rewrites the target of a StateLiteral or StateEpsilon state.
// Thompson's construction builds fragments before their continuations
// exist, so a fragment's dangling exits are patched once the next
// fragment is known.
func (b *Builder) Patch(id, target StateID) error {
	if int(id) >= len(b.states) {
		return &BuildError{Message: "state ID out of bounds", StateID: id}
	}
	s := &b.states[id]
	switch s.kind {
	case StateLiteral, StateEpsilon:
		s.next = target
		return nil
	default:
		return &BuildError{Message: "cannot patch state of kind " + s.kind.String(), StateID: id}
	}
}

// PatchSplit rewrites both targets of a StateSplit state.
func (b *Builder) PatchSplit(id StateID, left, right StateID) error {
	if int(id) >= len(b.states) {
		return &BuildError{Message: "state ID out of bounds", StateID: id}
	}
	s := &b.states[id]
	if s.kind != StateSplit {
		return &BuildError{Message: "expected Split state, got " + s.kind.String(), StateID: id}
	}
	s.left, s.right = left, right
	return nil
}

// SetStart records the NFA's start state.
func (b *Builder) SetStart(start StateID) { b.start = start }

// SetAccept records the NFA's accept state.
func (b *Builder) SetAccept(accept StateID) { b.accept = accept }

// States returns the number of states added so far.
func (b *Builder) States() int { return len(b.states) }

// Validate checks that start/accept are set and that every state
// reference points within bounds.
func (b *Builder) Validate() error {
	if b.start == InvalidState {
		return &BuildError{Message: "start state not set"}
	}
	if int(b.start) >= len(b.states) {
		return &BuildError{Message: "start state out of bounds", StateID: b.start}
	}
	if b.accept == InvalidState {
		return &BuildError{Message: "accept state not set"}
	}
	if int(b.accept) >= len(b.states) {
		return &BuildError{Message: "accept state out of bounds", StateID: b.accept}
	}

	for i, s := range b.states {
		id := StateID(i)
		switch s.kind {
		case StateLiteral, StateEpsilon:
			if int(s.next) >= len(b.states) {
				return &BuildError{Message: "invalid next state reference", StateID: id}
			}
		case StateSplit:
			if int(s.left) >= len(b.states) {
				return &BuildError{Message: "invalid left state reference", StateID: id}
			}
			if int(s.right) >= len(b.states) {
				return &BuildError{Message: "invalid right state reference", StateID: id}
			}
		}
	}
	return nil
}

// Build finalizes the NFA, computing its alphabet from every literal
// state added, and validates the result.
func (b *Builder) Build() (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	alphabet := make(map[rune]struct{})
	for _, s := range b.states {
		if s.kind == StateLiteral {
			alphabet[s.symbol] = struct{}{}
		}
	}

	return &NFA{
		states:   b.states,
		start:    b.start,
		accept:   b.accept,
		alphabet: alphabet,
	}, nil
}
