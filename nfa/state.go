// Package nfa builds a Thompson-construction nondeterministic automaton
// from an ast.Node and exposes the ε-closure/move primitives that the
// dfa package determinizes.
//
// States are identified by dense integer StateID values and stored in
// side tables, following the tagged-struct shape the teacher uses for
// its own byte-range automaton: a state's Kind selects which fields are
// meaningful, so the whole automaton is a single flat slice of states
// rather than a pointer graph, even though the graph itself (via
// Star/Plus) is cyclic.
package nfa

import "fmt"

// StateID uniquely identifies an NFA state within one NFA.
type StateID int

// InvalidState marks the absence of a state reference.
const InvalidState StateID = -1

// Kind identifies the shape of an NFA state's transitions.
type Kind uint8

const (
	// KindChar consumes exactly one scalar equal to Ch, moving to Next.
	KindChar Kind = iota

	// KindSplit is a non-consuming fork to two states (alternation or a
	// quantifier's repeat/exit branches). Left is tried before Right,
	// which only matters for thread priority, not for membership.
	KindSplit

	// KindEpsilon is a non-consuming transition to a single state, used
	// for Empty and as the merge point after Alt and Question.
	KindEpsilon

	// KindMatch is the unique accepting state of the automaton.
	KindMatch
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindSplit:
		return "Split"
	case KindEpsilon:
		return "Epsilon"
	case KindMatch:
		return "Match"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// State is one NFA state. Only the fields relevant to Kind are valid.
type State struct {
	Kind Kind

	Ch   rune   // KindChar
	Next StateID // KindChar, KindEpsilon

	Left  StateID // KindSplit
	Right StateID // KindSplit
}
