package normalize

// Null is the distinguished empty-string atom 'ε'. It is a literal in the
// surface grammar (an atom, like any other symbol) but never a valid input
// symbol once compiled into an automaton.
const Null = 'ε'

// Concat is the explicit concatenation operator inserted by Standardize in
// place of implicit juxtaposition ("ab" -> "a.b").
const Concat = '.'

// Precedence levels. Lower binds tighter; ')' is a
// sentinel value only ever compared against, never pushed as a real
// precedence to pop through.
const (
	precGroup     = 4  // '('
	precUnary     = 5  // '*' '+' '?'
	precConcat    = 6  // '.'
	precAlternate = 8  // '|'
	precCloseParen = 10 // ')'
)

// IsUnaryPostfix reports whether r is one of the postfix unary operators.
func IsUnaryPostfix(r rune) bool {
	return r == '*' || r == '+' || r == '?'
}

// IsLiteral reports whether r is an ordinary alphabet symbol (including the
// empty-string atom ε) rather than one of the reserved operator runes.
func IsLiteral(r rune) bool {
	_, isOp := precedence(r)
	return !isOp
}

// precedence returns the binding precedence of an operator rune, and false
// if r is not one of the recognized operators.
func precedence(r rune) (int, bool) {
	switch r {
	case '(':
		return precGroup, true
	case ')':
		return precCloseParen, true
	case '*', '+', '?':
		return precUnary, true
	case Concat:
		return precConcat, true
	case '|':
		return precAlternate, true
	default:
		return 0, false
	}
}
