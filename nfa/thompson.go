package nfa

import "github.com/corefsm/automaton/normalize"

// fragment is a partially wired piece of NFA: start is where control
// enters, accept is a dangling exit (always an AddEpsilon placeholder)
// that the surrounding construction patches once it knows what comes
// next.
type fragment struct {
	start, accept StateID
}

// BuildFromPostfix evaluates a postfix token sequence with a stack of
// fragments, folding each operator into a composite per the Thompson
// construction: each non-operator token pushes an atomic fragment, each
// operator pops its arity and pushes the result.
//
// '+' and '?' reuse a single copy of their operand rather than building
// two — A+ loops back through the one copy already built instead of
// splicing in A.A*, and A? splits directly to the existing copy or past
// it instead of constructing A|ε from scratch.
func BuildFromPostfix(postfix string) (*NFA, error) {
	b := NewBuilder()
	var stack []fragment

	pop := func() (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, ErrStackUnderflow
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for _, r := range postfix {
		switch {
		case r == normalize.Null:
			stack = append(stack, atomEpsilon(b))

		case r == normalize.Concat:
			rhs, err := pop()
			if err != nil {
				return nil, &CompileError{Postfix: postfix, Err: err}
			}
			lhs, err := pop()
			if err != nil {
				return nil, &CompileError{Postfix: postfix, Err: err}
			}
			stack = append(stack, concat(b, lhs, rhs))

		case r == '|':
			rhs, err := pop()
			if err != nil {
				return nil, &CompileError{Postfix: postfix, Err: err}
			}
			lhs, err := pop()
			if err != nil {
				return nil, &CompileError{Postfix: postfix, Err: err}
			}
			stack = append(stack, alternate(b, lhs, rhs))

		case r == '*':
			operand, err := pop()
			if err != nil {
				return nil, &CompileError{Postfix: postfix, Err: err}
			}
			stack = append(stack, star(b, operand))

		case r == '+':
			operand, err := pop()
			if err != nil {
				return nil, &CompileError{Postfix: postfix, Err: err}
			}
			stack = append(stack, plus(b, operand))

		case r == '?':
			operand, err := pop()
			if err != nil {
				return nil, &CompileError{Postfix: postfix, Err: err}
			}
			stack = append(stack, quest(b, operand))

		default: // literal symbol of Σ
			stack = append(stack, atomLiteral(b, r))
		}
	}

	if len(stack) != 1 {
		return nil, &CompileError{Postfix: postfix, Err: ErrMalformedPostfix}
	}
	result := stack[0]

	match := b.AddMatch()
	if err := b.Patch(result.accept, match); err != nil {
		return nil, &CompileError{Postfix: postfix, Err: err}
	}
	b.SetStart(result.start)
	b.SetAccept(match)

	nfa, err := b.Build()
	if err != nil {
		return nil, &CompileError{Postfix: postfix, Err: err}
	}
	return nfa, nil
}

// atomLiteral builds the two-state fragment for a single symbol: s --σ--> a.
func atomLiteral(b *Builder, symbol rune) fragment {
	accept := b.AddEpsilon(InvalidState)
	start := b.AddLiteral(symbol, accept)
	return fragment{start: start, accept: accept}
}

// atomEpsilon builds the two-state fragment for the ε atom: s --ε--> a.
func atomEpsilon(b *Builder) fragment {
	accept := b.AddEpsilon(InvalidState)
	start := b.AddEpsilon(accept)
	return fragment{start: start, accept: accept}
}

// concat identifies lhs.accept with rhs.start by patching lhs's dangling
// exit straight into rhs's entry. No new states are needed.
func concat(b *Builder, lhs, rhs fragment) fragment {
	mustPatch(b, lhs.accept, rhs.start)
	return fragment{start: lhs.start, accept: rhs.accept}
}

// alternate builds A|B: a fresh split chooses between the two starts, and
// a fresh join state merges their two dangling exits.
func alternate(b *Builder, lhs, rhs fragment) fragment {
	start := b.AddSplit(lhs.start, rhs.start)
	accept := b.AddEpsilon(InvalidState)
	mustPatch(b, lhs.accept, accept)
	mustPatch(b, rhs.accept, accept)
	return fragment{start: start, accept: accept}
}

// star builds A*: a single split state both admits entry (A or skip
// straight to exit) and serves as A's loop-back target, so besides its
// dangling exit the fragment adds only that one split state.
func star(b *Builder, operand fragment) fragment {
	loop := b.AddSplit(operand.start, InvalidState)
	mustPatch(b, operand.accept, loop)
	exit := b.AddEpsilon(InvalidState)
	mustPatchSplit(b, loop, operand.start, exit)
	return fragment{start: loop, accept: exit}
}

// plus builds A+: control enters directly into the one copy of A (it must
// run at least once), then a split after it either loops back into A or
// exits.
func plus(b *Builder, operand fragment) fragment {
	loop := b.AddSplit(operand.start, InvalidState)
	mustPatch(b, operand.accept, loop)
	exit := b.AddEpsilon(InvalidState)
	mustPatchSplit(b, loop, operand.start, exit)
	return fragment{start: operand.start, accept: exit}
}

// quest builds A?: a split in front either enters A or skips directly to
// a shared exit that A's own accept also feeds into.
func quest(b *Builder, operand fragment) fragment {
	exit := b.AddEpsilon(InvalidState)
	start := b.AddSplit(operand.start, exit)
	mustPatch(b, operand.accept, exit)
	return fragment{start: start, accept: exit}
}

// mustPatch and mustPatchSplit panic on error: every call site passes
// either a fragment's dangling exit (always an AddEpsilon placeholder) or
// a split state its own caller just created, so a failure here means the
// builder itself is broken, not that the caller passed bad input.
func mustPatch(b *Builder, id, target StateID) {
	if err := b.Patch(id, target); err != nil {
		panic(err)
	}
}

func mustPatchSplit(b *Builder, id, left, right StateID) {
	if err := b.PatchSplit(id, left, right); err != nil {
		panic(err)
	}
}
