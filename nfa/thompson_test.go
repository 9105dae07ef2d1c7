package nfa

import "testing"

func mustBuild(t *testing.T, postfix string) *NFA {
	t.Helper()
	n, err := BuildFromPostfix(postfix)
	if err != nil {
		t.Fatalf("BuildFromPostfix(%q) returned error: %v", postfix, err)
	}
	return n
}

func TestAcceptLiteral(t *testing.T) {
	n := mustBuild(t, "a")
	mustAccept(t, n, "a", true)
	mustAccept(t, n, "", false)
	mustAccept(t, n, "aa", false)
}

func TestAcceptConcat(t *testing.T) {
	n := mustBuild(t, "ab.")
	mustAccept(t, n, "ab", true)
	mustAccept(t, n, "a", false)
	mustAccept(t, n, "b", false)
}

func TestAcceptAlternate(t *testing.T) {
	n := mustBuild(t, "ab|")
	mustAccept(t, n, "a", true)
	mustAccept(t, n, "b", true)
	mustAccept(t, n, "ab", false)
}

func TestAcceptStar(t *testing.T) {
	n := mustBuild(t, "a*")
	mustAccept(t, n, "", true)
	mustAccept(t, n, "a", true)
	mustAccept(t, n, "aaaa", true)
}

func TestAcceptPlus(t *testing.T) {
	n := mustBuild(t, "a+")
	mustAccept(t, n, "", false)
	mustAccept(t, n, "a", true)
	mustAccept(t, n, "aaa", true)
}

func TestAcceptQuest(t *testing.T) {
	n := mustBuild(t, "a?")
	mustAccept(t, n, "", true)
	mustAccept(t, n, "a", true)
	mustAccept(t, n, "aa", false)
}

func TestAcceptEpsilonAtom(t *testing.T) {
	// "ε|a" — matches empty string or "a".
	n := mustBuild(t, "εa|")
	mustAccept(t, n, "", true)
	mustAccept(t, n, "a", true)
	mustAccept(t, n, "aa", false)
}

func TestAcceptEvenNumberOfOnes(t *testing.T) {
	// (0|1.(0.1*.(0.0)*.0)*.1)* — every string over {0,1} with an even
	// number of 1s.
	n := mustBuild(t, "0101*00.*0...*1..*|*")
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"0", true},
		{"1", false},
		{"11", true},
		{"00", true},
		{"101", false},
		{"1001", true},
		{"0110", true},
		{"010101", false},
	}
	for _, c := range cases {
		mustAccept(t, n, c.in, c.want)
	}
}

func TestAcceptRejectsNullSymbolInInput(t *testing.T) {
	n := mustBuild(t, "a")
	_, err := Accept(n, "ε")
	if err == nil {
		t.Fatal("expected an error for ε in the input")
	}
}

func TestAcceptRejectsUnknownSymbol(t *testing.T) {
	n := mustBuild(t, "a")
	_, err := Accept(n, "z")
	if err == nil {
		t.Fatal("expected an error for a symbol outside the alphabet")
	}
}

func TestBuiltNFAShape(t *testing.T) {
	// Every composite keeps the Thompson shape: exactly one Match
	// state, it is the accept state, and it has no outgoing
	// transitions.
	for _, postfix := range []string{"a", "ε", "ab.", "ab|", "a*", "a+", "a?", "εa*b.|"} {
		n := mustBuild(t, postfix)

		matches := 0
		for id := 0; id < n.States(); id++ {
			if n.State(StateID(id)).IsMatch() {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("%q: %d Match states, want exactly 1", postfix, matches)
		}
		if !n.State(n.AcceptState()).IsMatch() {
			t.Errorf("%q: accept state %d is not the Match state", postfix, n.AcceptState())
		}
	}
}

func TestBuiltNFAAlphabetExcludesNull(t *testing.T) {
	n := mustBuild(t, "εa|")
	for _, r := range n.Alphabet() {
		if r == 'ε' {
			t.Fatal("alphabet contains the ε meta-symbol")
		}
	}
	if len(n.Alphabet()) != 1 {
		t.Errorf("alphabet = %q, want exactly [a]", n.Alphabet())
	}
}

func TestBuildFromPostfixStackUnderflow(t *testing.T) {
	if _, err := BuildFromPostfix("."); err == nil {
		t.Fatal("expected an error for operator with no operand")
	}
}

func TestBuildFromPostfixMalformed(t *testing.T) {
	if _, err := BuildFromPostfix("ab"); err == nil {
		t.Fatal("expected an error for two fragments left on the stack")
	}
}

func mustAccept(t *testing.T, n *NFA, input string, want bool) {
	t.Helper()
	got, err := Accept(n, input)
	if err != nil {
		t.Fatalf("Accept(%q) returned error: %v", input, err)
	}
	if got != want {
		t.Errorf("Accept(%q) = %v, want %v", input, got, want)
	}
}
