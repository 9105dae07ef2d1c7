// Package literal recognizes patterns whose language is a finite set of
// literal strings (flat alternations like foo|bar|baz, possibly with
// grouping and concatenation but no repetition and no ε) and builds an
// Aho-Corasick prefilter over the extracted alternatives. The automata
// remain authoritative for recognition; the prefilter only short-cuts
// verdicts it can prove on its own.
package literal

import "github.com/corefsm/automaton/normalize"

// Config limits extraction so pathological patterns don't expand into
// unbounded literal sets.
//
//   - MaxLiterals caps the number of alternatives: a cross product of
//     nested alternations like (a|b).(c|d).(e|f) doubles the set at
//     every step.
//   - MaxLiteralLen caps the length of any single alternative, since
//     very long literals make poor prefilter patterns.
type Config struct {
	MaxLiterals   int
	MaxLiteralLen int
}

// DefaultConfig returns the extraction limits used when the caller has
// no reason to pick its own.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
	}
}

// Extract attempts to recover the full set of literal alternatives from
// a postfix token sequence. It reports ok = false when the pattern's
// language is not a finite literal set (any '*', '+', '?', or ε atom
// disqualifies it), or when extraction would exceed the configured
// limits. On ok = true, the returned alternatives enumerate the
// language exactly: a string matches the pattern iff it equals one of
// them.
//
// Extraction is itself a postfix stack evaluation, mirroring the
// Thompson builder's: each operand is the set of alternatives for the
// sub-pattern built so far, concatenation is the pairwise cross
// product, and alternation is the union.
func Extract(postfix string, cfg Config) (alternatives []string, ok bool) {
	var stack [][]string

	pop := func() ([]string, bool) {
		if len(stack) == 0 {
			return nil, false
		}
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return s, true
	}

	for _, r := range postfix {
		switch {
		case r == normalize.Null || normalize.IsUnaryPostfix(r):
			return nil, false

		case r == normalize.Concat:
			rhs, okR := pop()
			lhs, okL := pop()
			if !okR || !okL {
				return nil, false
			}
			product := make([]string, 0, len(lhs)*len(rhs))
			for _, l := range lhs {
				for _, x := range rhs {
					joined := l + x
					if len(joined) > cfg.MaxLiteralLen {
						return nil, false
					}
					product = append(product, joined)
				}
			}
			if len(product) > cfg.MaxLiterals {
				return nil, false
			}
			stack = append(stack, product)

		case r == '|':
			rhs, okR := pop()
			lhs, okL := pop()
			if !okR || !okL {
				return nil, false
			}
			union := append(lhs, rhs...)
			if len(union) > cfg.MaxLiterals {
				return nil, false
			}
			stack = append(stack, union)

		default: // literal symbol of Σ
			stack = append(stack, []string{string(r)})
		}
	}

	if len(stack) != 1 {
		return nil, false
	}
	return dedupe(stack[0]), true
}

// dedupe drops repeated alternatives (e.g. from a|a) preserving
// first-occurrence order.
func dedupe(alternatives []string) []string {
	seen := make(map[string]struct{}, len(alternatives))
	out := alternatives[:0]
	for _, a := range alternatives {
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
