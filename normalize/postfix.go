package normalize

// ToPostfix converts a standardized (whitespace-free, concatenation-explicit)
// infix pattern into postfix token order via a shunting-yard pass, then
// validates the result.
//
// The operator stack discipline is asymmetric by token kind:
//
//   - '(' and the binary infix operators ('.' '|') are always pushed
//     unconditionally; nothing is popped to make room for them.
//   - ')' unconditionally drains the stack down to its matching '(',
//     appending everything it pops.
//   - Unary postfix ('*' '+' '?') never touches the stack at all: it
//     applies to whatever is already at the top of the output, so it is
//     appended directly.
//   - A literal is appended to the output, and then — and only then — the
//     stack top is popped once, but only if it isn't '(' and only if the
//     token immediately following (or end of input) wouldn't bind tighter
//     than it. Apart from ')' and the final drain at end of input, this is
//     the only place a pop ever happens.
//
// Because that single conditional pop only fires right after a literal,
// an operator already on the stack can sit there across several later
// tokens before it is finally flushed — by the next literal whose
// lookahead allows it, by a ')' drain, or by the end-of-input drain. This is deliberate: it is what
// the shunting-yard pass is built on, and the exact order it produces is
// part of the normalizer's contract.
func ToPostfix(standardized string) (string, error) {
	runes := []rune(standardized)
	var output []rune
	var stack []rune

	// groupStart[i] records len(output) at the moment the i-th currently
	// open '(' was pushed, so its matching ')' can tell whether anything
	// was ever emitted inside that group.
	var groupStart []int

	for i, r := range runes {
		switch {
		case r == '(':
			stack = append(stack, r)
			groupStart = append(groupStart, len(output))

		case r == ')':
			if len(groupStart) == 0 {
				return "", &SyntaxError{Pattern: standardized, Err: ErrUnmatchedParen}
			}
			start := groupStart[len(groupStart)-1]
			groupStart = groupStart[:len(groupStart)-1]
			if len(output) == start {
				return "", &SyntaxError{Pattern: standardized, Err: ErrEmptyGroup}
			}

			for {
				if len(stack) == 0 {
					return "", &SyntaxError{Pattern: standardized, Err: ErrUnmatchedParen}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top == '(' {
					break
				}
				output = append(output, top)
			}

		case IsUnaryPostfix(r):
			output = append(output, r)

		case IsLiteral(r):
			output = append(output, r)
			if len(stack) > 0 && stack[len(stack)-1] != '(' {
				top := stack[len(stack)-1]
				topPrec, _ := precedence(top)
				atEnd := i == len(runes)-1
				nextLooser := false
				if !atEnd {
					if nextPrec, isOp := precedence(runes[i+1]); isOp {
						nextLooser = nextPrec >= topPrec
					}
				}
				if atEnd || nextLooser {
					output = append(output, top)
					stack = stack[:len(stack)-1]
				}
			}

		default: // '.' '|'
			stack = append(stack, r)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top == '(' {
			return "", &SyntaxError{Pattern: standardized, Err: ErrUnmatchedParen}
		}
		output = append(output, top)
	}

	postfix := string(output)
	if err := validateArity(postfix); err != nil {
		return "", &SyntaxError{Pattern: standardized, Err: err}
	}
	return postfix, nil
}

// validateArity walks a postfix token sequence tracking the number of
// operands a left-to-right stack evaluator would hold, to catch operators
// left without enough operands (e.g. a leading '|', a bare '*').
func validateArity(postfix string) error {
	count := 0
	for _, r := range postfix {
		switch {
		case IsUnaryPostfix(r):
			if count < 1 {
				return ErrDanglingOperator
			}
		case r == Concat || r == '|':
			if count < 2 {
				return ErrDanglingOperator
			}
			count--
		default: // literal, including ε
			count++
		}
	}
	if count != 1 {
		return ErrDanglingOperator
	}
	return nil
}

// Postfix standardizes pattern and converts it to postfix order in one
// step, for callers that don't need the intermediate standardized form.
func Postfix(pattern string) (string, error) {
	return ToPostfix(Standardize(pattern))
}
