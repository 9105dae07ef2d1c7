package minimize

import (
	"testing"

	"github.com/corefsm/automaton/dfa"
	"github.com/corefsm/automaton/dfa/powerset"
	"github.com/corefsm/automaton/nfa"
)

func mustBuildDFA(t *testing.T, postfix string) *dfa.DFA {
	t.Helper()
	n, err := nfa.BuildFromPostfix(postfix)
	if err != nil {
		t.Fatalf("BuildFromPostfix(%q) returned error: %v", postfix, err)
	}
	return powerset.Build(n)
}

func mustAccept(t *testing.T, d *dfa.DFA, input string, want bool) {
	t.Helper()
	got, err := dfa.Accept(d, input)
	if err != nil {
		t.Fatalf("Accept(%q) returned error: %v", input, err)
	}
	if got != want {
		t.Errorf("Accept(%q) = %v, want %v", input, got, want)
	}
}

func TestMinimizeAltHasThreeStates(t *testing.T) {
	// Minimized a|b has exactly 3 states: start, accept, trap.
	d := mustBuildDFA(t, "ab|")
	min, err := Minimize(d)
	if err != nil {
		t.Fatalf("Minimize returned error: %v", err)
	}
	if min.States() != 3 {
		t.Errorf("Minimize(a|b) has %d states, want 3", min.States())
	}
	mustAccept(t, min, "a", true)
	mustAccept(t, min, "b", true)
	mustAccept(t, min, "", false)
	mustAccept(t, min, "ab", false)
}

func TestMinimizeNeverGrows(t *testing.T) {
	d := mustBuildDFA(t, "0101*00.*0...*1..*|*")
	min, err := Minimize(d)
	if err != nil {
		t.Fatalf("Minimize returned error: %v", err)
	}
	if min.States() > d.States() {
		t.Errorf("Minimize grew the automaton: %d -> %d states", d.States(), min.States())
	}
}

func TestMinimizeIsIdempotent(t *testing.T) {
	d := mustBuildDFA(t, "0101*00.*0...*1..*|*")
	once, err := Minimize(d)
	if err != nil {
		t.Fatalf("first Minimize returned error: %v", err)
	}
	twice, err := Minimize(once)
	if err != nil {
		t.Fatalf("second Minimize returned error: %v", err)
	}
	if once.States() != twice.States() {
		t.Errorf("Minimize is not idempotent: %d states then %d states", once.States(), twice.States())
	}
}

func TestMinimizeEquivalence(t *testing.T) {
	n, err := nfa.BuildFromPostfix("εa*b.|")
	if err != nil {
		t.Fatalf("BuildFromPostfix returned error: %v", err)
	}
	d := powerset.Build(n)
	min, err := Minimize(d)
	if err != nil {
		t.Fatalf("Minimize returned error: %v", err)
	}

	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"b", true},
		{"ab", true},
		{"aab", true},
		{"a", false},
		{"aa", false},
		{"bb", false},
	}
	for _, c := range cases {
		nfaGot, err := nfa.Accept(n, c.in)
		if err != nil {
			t.Fatalf("nfa.Accept(%q) error: %v", c.in, err)
		}
		dfaGot, err := dfa.Accept(d, c.in)
		if err != nil {
			t.Fatalf("dfa.Accept(%q) error: %v", c.in, err)
		}
		minGot, err := dfa.Accept(min, c.in)
		if err != nil {
			t.Fatalf("dfa.Accept(minimized, %q) error: %v", c.in, err)
		}
		if nfaGot != c.want || dfaGot != c.want || minGot != c.want {
			t.Errorf("%q: nfa=%v dfa=%v min=%v, want %v", c.in, nfaGot, dfaGot, minGot, c.want)
		}
	}
}

func TestMinimizeMultiplesOfThreeMyhillNerode(t *testing.T) {
	// "binary numerals divisible by 3" has Myhill-Nerode index 3 (one
	// state per remainder 0, 1, 2), and no trap is ever needed since
	// every prefix can still be extended to a multiple of 3.
	d := mustBuildDFA(t, "0101*00.*0...*1..*|*")
	min, err := Minimize(d)
	if err != nil {
		t.Fatalf("Minimize returned error: %v", err)
	}
	if min.States() != 3 {
		t.Errorf("Minimize(multiples-of-3) has %d states, want 3", min.States())
	}
}
