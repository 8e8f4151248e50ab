// Package dfa determinizes a Thompson NFA into a deterministic automaton
// with a dense transition table, giving O(1)-per-scalar matching with no
// backtracking and no per-match thread bookkeeping (§4.3).
package dfa

// DFA is a determinized automaton over a fixed, pattern-derived alphabet.
// Any input scalar outside that alphabet cannot appear in any accepted
// string, so it is rejected without a table lookup.
type DFA struct {
	classOf map[rune]int
	table   [][]int // table[state][class] -> next state
	accept  []bool
	start   int
	trap    int
}

// Match reports whether input, taken as a whole, is accepted.
func (d *DFA) Match(input []rune) bool {
	state := d.start
	for _, c := range input {
		class, ok := d.classOf[c]
		if !ok {
			return false
		}
		state = d.table[state][class]
		if state == d.trap {
			return false
		}
	}
	return d.accept[state]
}

// NumStates returns the number of states, including the trap state.
func (d *DFA) NumStates() int { return len(d.table) }
