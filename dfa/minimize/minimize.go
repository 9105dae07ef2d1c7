// Package minimize implements Hopcroft-style partition refinement: it
// splits an initial two-block partition (accepting vs. non-accepting)
// until no block can be separated by one-symbol successor behavior, then
// rebuilds a DFA over the resulting blocks. States are split by the
// block membership of their σ-successors, never by the successors'
// immediate acceptance — the latter merges states that a longer string
// can still tell apart.
package minimize

import (
	"sort"
	"strings"

	"github.com/corefsm/automaton/dfa"
)

// Minimize produces a minimal DFA recognizing the same language as d.
// Running Minimize on an already-minimal DFA is a no-op up to state
// renumbering.
func Minimize(d *dfa.DFA) (*dfa.DFA, error) {
	alphabet := d.Alphabet()

	blocks, err := initialPartition(d)
	if err != nil {
		return nil, err
	}
	blockOf := indexBlocks(blocks)

	for {
		var refined [][]dfa.StateID
		changed := false
		for _, b := range blocks {
			groups := splitBlock(d, b, alphabet, blockOf)
			if len(groups) > 1 {
				changed = true
			}
			refined = append(refined, groups...)
		}
		blocks = refined
		blockOf = indexBlocks(blocks)
		if !changed {
			break
		}
	}

	sort.Slice(blocks, func(i, j int) bool { return leastMember(blocks[i]) < leastMember(blocks[j]) })
	blockOf = indexBlocks(blocks)

	transitions := make(map[dfa.StateID]map[rune]dfa.StateID, len(blocks))
	accepting := make(map[dfa.StateID]struct{})

	for i, b := range blocks {
		newID := dfa.StateID(i)
		rep := leastMember(b)

		row := make(map[rune]dfa.StateID, len(alphabet))
		for _, sigma := range alphabet {
			target, ok := d.Step(rep, sigma)
			if !ok {
				return nil, &InvariantError{Block: newID, Err: ErrMissingTransition}
			}
			row[sigma] = blockOf[target]
		}
		transitions[newID] = row

		if d.IsAccepting(rep) {
			accepting[newID] = struct{}{}
		}
	}

	trap := dfa.InvalidState
	if d.HasTrap() {
		trap = blockOf[d.Trap()]
	}

	return dfa.New(len(blocks), alphabet, transitions, blockOf[d.Start()], accepting, trap), nil
}

// initialPartition builds the two-block starting partition: accepting
// states and non-accepting states, omitting either block if it would be
// empty.
func initialPartition(d *dfa.DFA) ([][]dfa.StateID, error) {
	var accepting, rest []dfa.StateID
	for s := 0; s < d.States(); s++ {
		id := dfa.StateID(s)
		if d.IsAccepting(id) {
			accepting = append(accepting, id)
		} else {
			rest = append(rest, id)
		}
	}

	var blocks [][]dfa.StateID
	if len(accepting) > 0 {
		blocks = append(blocks, accepting)
	}
	if len(rest) > 0 {
		blocks = append(blocks, rest)
	}
	if len(blocks) == 0 {
		return nil, &InvariantError{Err: ErrEmptyAutomaton}
	}
	return blocks, nil
}

// indexBlocks returns the state -> block-index map implied by blocks'
// current order.
func indexBlocks(blocks [][]dfa.StateID) map[dfa.StateID]dfa.StateID {
	index := make(map[dfa.StateID]dfa.StateID)
	for i, b := range blocks {
		for _, s := range b {
			index[s] = dfa.StateID(i)
		}
	}
	return index
}

// splitBlock partitions b into sub-blocks sharing the same destination
// block on every symbol in alphabet, evaluated for all σ at once: a
// state's full successor-block vector is the conjunction of every
// per-symbol destination test.
// Sub-blocks are returned in first-occurrence order so a block that
// doesn't split at all comes back as a single slice, byte-for-byte the
// same as its input.
func splitBlock(d *dfa.DFA, b []dfa.StateID, alphabet []rune, blockOf map[dfa.StateID]dfa.StateID) [][]dfa.StateID {
	order := make([]string, 0, len(b))
	groups := make(map[string][]dfa.StateID, len(b))

	for _, s := range b {
		sig := successorSignature(d, s, alphabet, blockOf)
		if _, seen := groups[sig]; !seen {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], s)
	}

	result := make([][]dfa.StateID, 0, len(order))
	for _, sig := range order {
		result = append(result, groups[sig])
	}
	return result
}

// successorSignature encodes, for state s, which block each symbol's
// successor currently belongs to. Two states with identical signatures
// are, as far as this pass can tell, still indistinguishable.
func successorSignature(d *dfa.DFA, s dfa.StateID, alphabet []rune, blockOf map[dfa.StateID]dfa.StateID) string {
	var sb strings.Builder
	for _, sigma := range alphabet {
		target, ok := d.Step(s, sigma)
		if !ok {
			sb.WriteString("!")
			continue
		}
		sb.WriteByte(0)
		writeUint(&sb, uint64(blockOf[target]))
	}
	return sb.String()
}

func writeUint(sb *strings.Builder, v uint64) {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	sb.Write(buf[:])
}

// leastMember returns the smallest state ID in b, used both to pick the
// representative whose transitions become the merged block's transitions
// and to order blocks deterministically in the final DFA.
func leastMember(b []dfa.StateID) dfa.StateID {
	least := b[0]
	for _, s := range b[1:] {
		if s < least {
			least = s
		}
	}
	return least
}
