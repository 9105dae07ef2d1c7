// Package automaton compiles regular expressions into finite automata
// and answers membership queries against them.
//
// The pipeline has three stages, each of which can be queried on its
// own:
//
//   - Compile: surface regex → Thompson ε-NFA (implicit concatenation
//     made explicit, shunting-yard postfix conversion, fragment-stack
//     evaluation).
//   - NFAToDFA: ε-NFA → total DFA by the subset construction, with a
//     trap state added only when needed.
//   - Minimize: DFA → minimal DFA by partition refinement.
//
// Basic usage:
//
//	re, err := automaton.New("a|b")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, err := re.Accept("a") // true, nil
//
// The stages are also exposed individually for callers that want the
// intermediate automata:
//
//	n, err := automaton.Compile("(0|1)*")
//	d := automaton.NFAToDFA(n)
//	m, err := automaton.Minimize(d)
//
// Patterns that are a flat alternation of literals (foo|bar|baz) get an
// Aho-Corasick fast path in front of DFA recognition; see New and
// WithLiteralPrefilter.
package automaton

import (
	"github.com/corefsm/automaton/dfa"
	"github.com/corefsm/automaton/dfa/minimize"
	"github.com/corefsm/automaton/dfa/powerset"
	"github.com/corefsm/automaton/literal"
	"github.com/corefsm/automaton/nfa"
	"github.com/corefsm/automaton/normalize"
)

// Automaton is any stage of the pipeline that can answer a membership
// query: *nfa.NFA, *dfa.DFA, or a compiled *Regex.
type Automaton interface {
	Accept(input string) (bool, error)
}

// Compile builds a Thompson ε-NFA from a surface regex: the pattern is
// normalized to postfix form and folded by the fragment-stack
// evaluator. Concatenation may be left implicit ("ab" means "a.b"),
// and ε is accepted as the empty-string atom.
func Compile(pattern string) (*nfa.NFA, error) {
	postfix, err := normalize.Postfix(pattern)
	if err != nil {
		return nil, err
	}
	return nfa.BuildFromPostfix(postfix)
}

// NFAToDFA converts an ε-NFA to a total DFA by the subset construction.
func NFAToDFA(n *nfa.NFA) *dfa.DFA {
	return powerset.Build(n)
}

// Minimize produces the minimal DFA recognizing the same language as d.
func Minimize(d *dfa.DFA) (*dfa.DFA, error) {
	return minimize.Minimize(d)
}

// Accept runs a membership query against any stage of the pipeline.
func Accept(a Automaton, input string) (bool, error) {
	return a.Accept(input)
}

// Config tunes compilation. The zero value is not meaningful; start
// from DefaultConfig.
type Config struct {
	// LiteralPrefilter enables the Aho-Corasick fast path for patterns
	// that are a flat alternation of literals.
	LiteralPrefilter bool

	// MaxLiterals and MaxLiteralLen bound literal extraction; patterns
	// whose alternative set would exceed them skip the prefilter and
	// use the DFA alone.
	MaxLiterals   int
	MaxLiteralLen int
}

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	extract := literal.DefaultConfig()
	return Config{
		LiteralPrefilter: true,
		MaxLiterals:      extract.MaxLiterals,
		MaxLiteralLen:    extract.MaxLiteralLen,
	}
}

// Option adjusts a Config.
type Option func(*Config)

// WithLiteralPrefilter toggles the Aho-Corasick fast path.
func WithLiteralPrefilter(enabled bool) Option {
	return func(c *Config) { c.LiteralPrefilter = enabled }
}

// WithMaxLiterals bounds the number of alternatives literal extraction
// may produce before giving up on the prefilter.
func WithMaxLiterals(n int) Option {
	return func(c *Config) { c.MaxLiterals = n }
}

// Regex is a pattern compiled through the full pipeline. It holds every
// stage (the ε-NFA, the total DFA, and the minimal DFA) plus the
// literal prefilter when the pattern qualifies for one.
type Regex struct {
	pattern   string
	nfa       *nfa.NFA
	dfa       *dfa.DFA
	min       *dfa.DFA
	prefilter *literal.Prefilter
}

// New compiles pattern through the full pipeline.
func New(pattern string, opts ...Option) (*Regex, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	postfix, err := normalize.Postfix(pattern)
	if err != nil {
		return nil, err
	}

	n, err := nfa.BuildFromPostfix(postfix)
	if err != nil {
		return nil, err
	}

	d := powerset.Build(n)
	min, err := minimize.Minimize(d)
	if err != nil {
		return nil, err
	}

	re := &Regex{pattern: pattern, nfa: n, dfa: d, min: min}

	if config.LiteralPrefilter {
		extract := literal.Config{
			MaxLiterals:   config.MaxLiterals,
			MaxLiteralLen: config.MaxLiteralLen,
		}
		if alternatives, ok := literal.Extract(postfix, extract); ok {
			pf, err := literal.NewPrefilter(alternatives)
			if err == nil {
				re.prefilter = pf
			}
			// A prefilter build failure is not a compile failure; the
			// minimal DFA answers every query the prefilter would have.
		}
	}

	return re, nil
}

// MustNew is like New but panics on error, for patterns known valid at
// compile time.
func MustNew(pattern string, opts ...Option) *Regex {
	re, err := New(pattern, opts...)
	if err != nil {
		panic("automaton: New(" + pattern + "): " + err.Error())
	}
	return re
}

// Pattern returns the surface pattern the Regex was compiled from.
func (r *Regex) Pattern() string { return r.pattern }

// NFA returns the Thompson ε-NFA stage.
func (r *Regex) NFA() *nfa.NFA { return r.nfa }

// DFA returns the total DFA produced by the subset construction.
func (r *Regex) DFA() *dfa.DFA { return r.dfa }

// MinDFA returns the minimal DFA.
func (r *Regex) MinDFA() *dfa.DFA { return r.min }

// HasPrefilter reports whether the pattern qualified for the
// Aho-Corasick literal fast path.
func (r *Regex) HasPrefilter() bool { return r.prefilter != nil }

// Accept reports whether input is in the pattern's language. The
// minimal DFA is authoritative; when a literal prefilter exists and
// can prove a verdict on its own, the DFA walk is skipped.
//
// It is an error for input to contain the ε meta-symbol, or any symbol
// outside the pattern's alphabet.
func (r *Regex) Accept(input string) (bool, error) {
	if r.prefilter != nil && r.inputValid(input) {
		if accepted, definitive := r.prefilter.WholeString(input); definitive {
			return accepted, nil
		}
	}
	return r.min.Accept(input)
}

// inputValid reports whether every symbol of input is a member of Σ
// (and not ε). Invalid input is routed to the DFA recognizer so its
// error taxonomy applies; the prefilter must never return a verdict
// for input the DFA would reject with an error.
func (r *Regex) inputValid(input string) bool {
	for _, c := range input {
		if c == normalize.Null || !r.min.HasSymbol(c) {
			return false
		}
	}
	return true
}
