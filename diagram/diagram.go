// Package diagram is a pure graph-description serializer: it renders an
// automaton to Graphviz DOT text for an external tool to lay out and
// render. This package only produces the textual description an
// external renderer consumes: an anchor node pointing at the start,
// double circles for accepting states, comma-joined sorted symbol
// labels, dashed ε-edges.
package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corefsm/automaton/dfa"
	"github.com/corefsm/automaton/nfa"
)

// edgeKey groups edges by (source, destination) so multiple symbols
// between the same pair of states collapse into one comma-joined label.
type edgeKey struct {
	src, dst string
	dashed   bool
}

// NFA renders n as a Graphviz DOT digraph. One node per state (double
// circle for the accept state), a dedicated anchor pointing at the start
// state, and edges grouped by (source, destination) with comma-joined
// sorted labels; ε-edges are dashed.
func NFA(n *nfa.NFA) string {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString("\trankdir=LR;\n")
	b.WriteString("\t\"\" [shape=point, width=0, height=0];\n")
	fmt.Fprintf(&b, "\t\"\" -> %q;\n", nodeName(uint32(n.Start())))

	for id := 0; id < n.States(); id++ {
		shape := "circle"
		if nfa.StateID(id) == n.AcceptState() {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "\t%q [shape=%s];\n", nodeName(uint32(id)), shape)
	}

	edges := make(map[edgeKey]map[string]bool)
	order := make([]edgeKey, 0)
	addEdge := func(src, dst uint32, label string, dashed bool) {
		key := edgeKey{src: nodeName(src), dst: nodeName(dst), dashed: dashed}
		if edges[key] == nil {
			edges[key] = make(map[string]bool)
			order = append(order, key)
		}
		edges[key][label] = true
	}

	for id := 0; id < n.States(); id++ {
		s := n.State(nfa.StateID(id))
		switch s.Kind() {
		case nfa.StateLiteral:
			symbol, target := s.Literal()
			if target != nfa.InvalidState {
				addEdge(uint32(id), uint32(target), string(symbol), false)
			}
		case nfa.StateEpsilon:
			if target := s.Epsilon(); target != nfa.InvalidState {
				addEdge(uint32(id), uint32(target), "ε", true)
			}
		case nfa.StateSplit:
			left, right := s.Split()
			if left != nfa.InvalidState {
				addEdge(uint32(id), uint32(left), "ε", true)
			}
			if right != nfa.InvalidState {
				addEdge(uint32(id), uint32(right), "ε", true)
			}
		}
	}

	writeEdges(&b, edges, order)
	b.WriteString("}\n")
	return b.String()
}

// DFA renders d as a Graphviz DOT digraph, with the same node/edge
// conventions as NFA. A DFA has no ε-edges; every edge carries one or
// more literal symbol labels.
func DFA(d *dfa.DFA) string {
	var b strings.Builder
	b.WriteString("digraph DFA {\n")
	b.WriteString("\trankdir=LR;\n")
	b.WriteString("\t\"\" [shape=point, width=0, height=0];\n")
	fmt.Fprintf(&b, "\t\"\" -> %q;\n", nodeName(uint32(d.Start())))

	for id := 0; id < d.States(); id++ {
		shape := "circle"
		if d.IsAccepting(dfa.StateID(id)) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "\t%q [shape=%s];\n", nodeName(uint32(id)), shape)
	}

	edges := make(map[edgeKey]map[string]bool)
	order := make([]edgeKey, 0)
	for id := 0; id < d.States(); id++ {
		for symbol, target := range d.Transitions(dfa.StateID(id)) {
			key := edgeKey{src: nodeName(uint32(id)), dst: nodeName(uint32(target))}
			if edges[key] == nil {
				edges[key] = make(map[string]bool)
				order = append(order, key)
			}
			edges[key][string(symbol)] = true
		}
	}

	writeEdges(&b, edges, order)
	b.WriteString("}\n")
	return b.String()
}

func writeEdges(b *strings.Builder, edges map[edgeKey]map[string]bool, order []edgeKey) {
	for _, key := range order {
		labels := edges[key]
		sorted := make([]string, 0, len(labels))
		for l := range labels {
			sorted = append(sorted, l)
		}
		sort.Strings(sorted)

		if key.dashed {
			fmt.Fprintf(b, "\t%q -> %q [label=%q, style=dashed];\n", key.src, key.dst, strings.Join(sorted, ", "))
		} else {
			fmt.Fprintf(b, "\t%q -> %q [label=%q];\n", key.src, key.dst, strings.Join(sorted, ", "))
		}
	}
}

func nodeName(id uint32) string {
	return fmt.Sprintf("%d", id)
}
