package nfa

import "github.com/coregx/triregex/ast"

// frag is one Thompson-construction fragment: a start state and a single
// dangling exit (see Builder.PatchOut) to be wired to whatever comes next.
type frag struct {
	start StateID
	out   StateID
}

// workItem is one node to process during the iterative post-order walk:
// children first (childrenDone == false means "not yet descended"), then
// the node's own fragment is combined from its children's fragments,
// already pushed onto the frags stack by the time childrenDone is true.
type workItem struct {
	node         *ast.Node
	childrenDone bool
}

// Compile builds a Thompson NFA for the given AST (§4.2). Construction is
// linear in AST size and walks the tree with an explicit stack instead of
// native recursion so arbitrarily deep nesting (§8) cannot overflow the
// goroutine's call stack.
func Compile(root *ast.Node) (*NFA, error) {
	b := NewBuilder()

	work := []workItem{{node: root}}
	var frags []frag

	for len(work) > 0 {
		item := work[len(work)-1]
		work = work[:len(work)-1]

		if !item.childrenDone {
			switch item.node.Kind() {
			case ast.KindConcat, ast.KindAlt:
				work = append(work,
					workItem{node: item.node, childrenDone: true},
					workItem{node: item.node.Right()},
					workItem{node: item.node.Left()},
				)
				continue
			case ast.KindStar, ast.KindPlus, ast.KindQuestion:
				work = append(work,
					workItem{node: item.node, childrenDone: true},
					workItem{node: item.node.Inner()},
				)
				continue
			}
		}

		f, err := combine(b, item.node, &frags)
		if err != nil {
			return nil, err
		}
		frags = append(frags, f)
	}

	result := frags[len(frags)-1]
	match := b.AddMatch()
	if err := b.PatchOut(result.out, match); err != nil {
		return nil, err
	}
	b.SetStart(result.start)
	return b.Build()
}

// combine builds the fragment for node, popping any child fragments it
// needs from frags (pushed in left-to-right order by the caller's walk,
// so the rightmost child is always on top).
func combine(b *Builder, node *ast.Node, frags *[]frag) (frag, error) {
	pop := func() frag {
		fs := *frags
		last := fs[len(fs)-1]
		*frags = fs[:len(fs)-1]
		return last
	}

	switch node.Kind() {
	case ast.KindChar:
		id := b.AddChar(node.Char(), InvalidState)
		return frag{start: id, out: id}, nil

	case ast.KindEmpty:
		id := b.AddEpsilon(InvalidState)
		return frag{start: id, out: id}, nil

	case ast.KindConcat:
		fb := pop() // right, pushed after left, popped first
		fa := pop()
		if err := b.PatchOut(fa.out, fb.start); err != nil {
			return frag{}, err
		}
		return frag{start: fa.start, out: fb.out}, nil

	case ast.KindAlt:
		fb := pop()
		fa := pop()
		merge := b.AddEpsilon(InvalidState)
		if err := b.PatchOut(fa.out, merge); err != nil {
			return frag{}, err
		}
		if err := b.PatchOut(fb.out, merge); err != nil {
			return frag{}, err
		}
		split := b.AddSplit(fa.start, fb.start)
		return frag{start: split, out: merge}, nil

	case ast.KindStar:
		fa := pop()
		split := b.AddSplit(fa.start, InvalidState)
		if err := b.PatchOut(fa.out, split); err != nil {
			return frag{}, err
		}
		return frag{start: split, out: split}, nil

	case ast.KindPlus:
		fa := pop()
		split := b.AddSplit(fa.start, InvalidState)
		if err := b.PatchOut(fa.out, split); err != nil {
			return frag{}, err
		}
		return frag{start: fa.start, out: split}, nil

	case ast.KindQuestion:
		fa := pop()
		merge := b.AddEpsilon(InvalidState)
		if err := b.PatchOut(fa.out, merge); err != nil {
			return frag{}, err
		}
		split := b.AddSplit(fa.start, merge)
		return frag{start: split, out: merge}, nil

	default:
		panic("nfa: Compile: unknown ast.Kind")
	}
}
