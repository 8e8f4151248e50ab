package nfa

import "github.com/pkg/errors"

// Builder constructs an NFA incrementally. Thompson construction (thompson.go)
// emits one fragment per AST node and patches fragment boundaries together
// as it walks back up the tree.
type Builder struct {
	states []State
	start  StateID
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

// AddChar adds a state that consumes scalar c and moves to next.
func (b *Builder) AddChar(c rune, next StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Kind: KindChar, Ch: c, Next: next})
	return id
}

// AddEpsilon adds a non-consuming transition to next.
func (b *Builder) AddEpsilon(next StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Kind: KindEpsilon, Next: next})
	return id
}

// AddSplit adds a non-consuming fork to left and right.
func (b *Builder) AddSplit(left, right StateID) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Kind: KindSplit, Left: left, Right: right})
	return id
}

// AddMatch adds an accepting state.
func (b *Builder) AddMatch() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{Kind: KindMatch})
	return id
}

// Patch retargets the Next field of a Char or Epsilon state. Thompson
// construction allocates a fragment's interior before its successor
// exists, so boundary states are built with a placeholder target and
// patched once the successor is known.
func (b *Builder) Patch(id, target StateID) error {
	if int(id) < 0 || int(id) >= len(b.states) {
		return errors.Errorf("nfa: Patch: state %d out of bounds", id)
	}
	s := &b.states[id]
	switch s.Kind {
	case KindChar, KindEpsilon:
		s.Next = target
		return nil
	default:
		return errors.Errorf("nfa: Patch: state %d has kind %s, not Char/Epsilon", id, s.Kind)
	}
}

// PatchSplit retargets both branches of a Split state.
func (b *Builder) PatchSplit(id StateID, left, right StateID) error {
	if int(id) < 0 || int(id) >= len(b.states) {
		return errors.Errorf("nfa: PatchSplit: state %d out of bounds", id)
	}
	s := &b.states[id]
	if s.Kind != KindSplit {
		return errors.Errorf("nfa: PatchSplit: state %d has kind %s, not Split", id, s.Kind)
	}
	s.Left = left
	s.Right = right
	return nil
}

// PatchOut retargets a fragment's single dangling exit, whichever form it
// takes: the Next of a Char/Epsilon state, or the Right branch of a Split
// whose Left branch was already resolved when it was created. Thompson
// construction (thompson.go) never leaves a Left branch dangling, so this
// single method covers every fragment shape the compiler produces.
func (b *Builder) PatchOut(id, target StateID) error {
	if int(id) < 0 || int(id) >= len(b.states) {
		return errors.Errorf("nfa: PatchOut: state %d out of bounds", id)
	}
	s := b.states[id]
	switch s.Kind {
	case KindChar, KindEpsilon:
		return b.Patch(id, target)
	case KindSplit:
		return b.PatchSplit(id, s.Left, target)
	default:
		return errors.Errorf("nfa: PatchOut: state %d has kind %s, no dangling exit", id, s.Kind)
	}
}

// SetStart records the overall start state.
func (b *Builder) SetStart(start StateID) { b.start = start }

// Len returns the number of states allocated so far.
func (b *Builder) Len() int { return len(b.states) }

// Build finalizes the NFA, validating that every transition target is a
// state that was actually allocated.
func (b *Builder) Build() (*NFA, error) {
	if int(b.start) < 0 || int(b.start) >= len(b.states) {
		return nil, errors.New("nfa: Build: start state not set or out of bounds")
	}
	for id, s := range b.states {
		if err := validTarget(b, s); err != nil {
			return nil, errors.Wrapf(err, "nfa: Build: state %d", id)
		}
	}
	return &NFA{states: b.states, start: b.start}, nil
}

func validTarget(b *Builder, s State) error {
	inBounds := func(id StateID) error {
		if int(id) < 0 || int(id) >= len(b.states) {
			return errors.Errorf("target %d out of bounds", id)
		}
		return nil
	}
	switch s.Kind {
	case KindChar, KindEpsilon:
		return inBounds(s.Next)
	case KindSplit:
		if err := inBounds(s.Left); err != nil {
			return err
		}
		return inBounds(s.Right)
	case KindMatch:
		return nil
	default:
		return errors.Errorf("unknown state kind %s", s.Kind)
	}
}
