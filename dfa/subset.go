package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/triregex/nfa"
)

const noTransition = -1

// Build determinizes n via subset construction (§4.3): each DFA state is
// the epsilon-closure of a set of NFA states, discovered breadth-first
// from the start closure and memoized by its sorted member list so that
// two NFA-state sets that close to the same set collapse to one DFA
// state. The alphabet is the finite set of literal runes the pattern can
// actually test for equality against — the grammar has no "any
// character" construct, so any scalar outside that set can never match
// and needs no table entry.
func Build(n *nfa.NFA) *DFA {
	alphabet := collectAlphabet(n)
	classOf := make(map[rune]int, len(alphabet))
	for i, r := range alphabet {
		classOf[r] = i
	}

	startSet := canonicalize(n.EpsilonClosure([]nfa.StateID{n.Start()}))
	seen := map[string]int{key(startSet): 0}
	sets := [][]nfa.StateID{startSet}

	var table [][]int
	var accept []bool

	for i := 0; i < len(sets); i++ {
		set := sets[i]
		row := make([]int, len(alphabet))
		isAccept := false
		for _, id := range set {
			if n.IsMatch(id) {
				isAccept = true
				break
			}
		}
		for ci, c := range alphabet {
			moved := n.Move(set, c)
			if len(moved) == 0 {
				row[ci] = noTransition
				continue
			}
			closure := canonicalize(n.EpsilonClosure(moved))
			k := key(closure)
			id, ok := seen[k]
			if !ok {
				id = len(sets)
				seen[k] = id
				sets = append(sets, closure)
			}
			row[ci] = id
		}
		table = append(table, row)
		accept = append(accept, isAccept)
	}

	trap := len(sets)
	trapRow := make([]int, len(alphabet))
	for ci := range trapRow {
		trapRow[ci] = trap
	}
	for _, row := range table {
		for ci, v := range row {
			if v == noTransition {
				row[ci] = trap
			}
		}
	}
	table = append(table, trapRow)
	accept = append(accept, false)

	return &DFA{
		classOf: classOf,
		table:   table,
		accept:  accept,
		start:   0,
		trap:    trap,
	}
}

// collectAlphabet returns the sorted, deduplicated set of runes tested by
// any Char state in n.
func collectAlphabet(n *nfa.NFA) []rune {
	seen := map[rune]bool{}
	for id := 0; id < n.Len(); id++ {
		s := n.State(nfa.StateID(id))
		if s.Kind == nfa.KindChar {
			seen[s.Ch] = true
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// canonicalize sorts and dedupes ids so that sets compare equal as plain
// slices, independent of discovery order.
func canonicalize(ids []nfa.StateID) []nfa.StateID {
	out := append([]nfa.StateID(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	deduped := out[:0]
	var last nfa.StateID = -1
	for _, id := range out {
		if id != last {
			deduped = append(deduped, id)
			last = id
		}
	}
	return deduped
}

// key renders a canonical id set as a map key.
func key(ids []nfa.StateID) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}
