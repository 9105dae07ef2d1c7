package literal

import "github.com/coregx/ahocorasick"

// Prefilter answers whole-string membership questions for a finite set
// of literal alternatives using an Aho-Corasick automaton. It is a fast
// path in front of full automaton recognition, not a replacement: a
// verdict is returned only when the single match the automaton reports
// is enough to prove it.
type Prefilter struct {
	automaton *ahocorasick.Automaton
	patterns  int
}

// NewPrefilter builds a prefilter over the given alternatives. At least
// one non-empty alternative is required.
func NewPrefilter(alternatives []string) (*Prefilter, error) {
	builder := ahocorasick.NewBuilder()
	for _, alt := range alternatives {
		builder.AddPattern([]byte(alt))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Prefilter{automaton: auto, patterns: len(alternatives)}, nil
}

// Len returns the number of alternatives the prefilter was built over.
func (p *Prefilter) Len() int { return p.patterns }

// WholeString reports whether input is exactly one of the alternatives.
// The verdict is meaningful only when definitive is true:
//
//   - No alternative occurs anywhere in input: no alternative can equal
//     it either, so (false, true).
//   - The reported match spans all of input: (true, true).
//   - A match exists but doesn't span the input: inconclusive, since a
//     spanning match may or may not exist beyond the one reported, so
//     (false, false) and the caller falls back to the automaton.
func (p *Prefilter) WholeString(input string) (accepted, definitive bool) {
	m := p.automaton.Find([]byte(input), 0)
	if m == nil {
		return false, true
	}
	if m.Start == 0 && m.End == len(input) {
		return true, true
	}
	return false, false
}
