package diagram

import (
	"strings"
	"testing"

	"github.com/corefsm/automaton/dfa/powerset"
	"github.com/corefsm/automaton/nfa"
)

func TestNFAContainsAnchorAndAcceptShape(t *testing.T) {
	n, err := nfa.BuildFromPostfix("ab|")
	if err != nil {
		t.Fatalf("BuildFromPostfix returned error: %v", err)
	}
	out := NFA(n)

	if !strings.HasPrefix(out, "digraph NFA {") {
		t.Errorf("output does not start with digraph header: %q", out)
	}
	if !strings.Contains(out, `"" -> `) {
		t.Errorf("output missing anchor edge into the start state: %q", out)
	}
	if !strings.Contains(out, "doublecircle") {
		t.Errorf("output missing doublecircle accept shape: %q", out)
	}
	if !strings.Contains(out, "style=dashed") {
		t.Errorf("output missing dashed epsilon edge: %q", out)
	}
}

func TestDFAGroupsEdgesBySourceDestination(t *testing.T) {
	n, err := nfa.BuildFromPostfix("ab|")
	if err != nil {
		t.Fatalf("BuildFromPostfix returned error: %v", err)
	}
	d := powerset.Build(n)
	out := DFA(d)

	if !strings.HasPrefix(out, "digraph DFA {") {
		t.Errorf("output does not start with digraph header: %q", out)
	}
	if !strings.Contains(out, "doublecircle") {
		t.Errorf("output missing doublecircle accept shape: %q", out)
	}
	if strings.Contains(out, "dashed") {
		t.Errorf("DFA diagram should have no dashed epsilon edges: %q", out)
	}
	// The accepting states and the trap each reach the trap on both 'a'
	// and 'b', which must collapse into one edge with a joined label.
	if !strings.Contains(out, `[label="a, b"]`) {
		t.Errorf("output missing an edge grouping both symbols: %q", out)
	}
}
