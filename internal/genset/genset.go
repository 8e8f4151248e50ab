// Package genset implements a generation-stamped membership set over a
// dense integer universe (program counters, in the vm package). Spec
// §9 ("VM thread dedup") asks for exactly this: an array indexed by PC
// holding a generation stamp, so starting a new step costs one counter
// increment instead of an O(n) clear.
package genset

// Set tracks which of [0, n) integers have been inserted "this
// generation". Reset starts a new generation in O(1); Insert and
// Contains are O(1).
type Set struct {
	stamps []uint32
	gen    uint32
}

// New creates a Set over the universe [0, n).
func New(n int) *Set {
	// stamps is zero-initialized, so generation 0 is reserved as "never
	// stamped" and the first live generation starts at 1. Starting gen
	// at 0 would make a fresh Insert/Contains see every index as already
	// belonging to generation 0.
	return &Set{stamps: make([]uint32, n), gen: 1}
}

// Reset begins a new generation: every previously inserted value is
// considered absent again, without touching the stamps slice.
func (s *Set) Reset() {
	s.gen++
	// gen == 0 is reserved as "never stamped"; wrapping back to it would
	// resurrect every value ever inserted, so skip over it. In practice
	// a single match never runs 2^32 steps, but this keeps the
	// invariant exact rather than merely probable.
	if s.gen == 0 {
		for i := range s.stamps {
			s.stamps[i] = 0
		}
		s.gen = 1
	}
}

// Insert adds v to the current generation. It reports whether v was
// newly added, returning false if v was already present (so callers can
// skip re-processing it), matching the dedup check the VM needs at every
// add_thread call.
func (s *Set) Insert(v int) (added bool) {
	if s.stamps[v] == s.gen {
		return false
	}
	s.stamps[v] = s.gen
	return true
}

// Contains reports whether v belongs to the current generation.
func (s *Set) Contains(v int) bool {
	return s.stamps[v] == s.gen
}

// Len returns the size of the universe the set was created with.
func (s *Set) Len() int { return len(s.stamps) }
