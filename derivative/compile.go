package derivative

import "github.com/coregx/triregex/ast"

// Engine is a compiled pattern ready to test inputs against via
// repeated differentiation.
type Engine struct {
	it   *interner
	root *Node
}

// Compile converts a parsed pattern into its derivative-engine
// expression, desugaring Plus (A+ = A·A*) and Question (A? = A|ε) into
// Concat/Star and Alt/Eps so the rest of the package only ever deals
// with the five canonical shapes derivatives are classically defined
// over.
func Compile(root *ast.Node) *Engine {
	it := newInterner()
	return &Engine{it: it, root: it.fromAST(root)}
}

// Match reports whether input, as a whole, is in the pattern's language:
// take successive derivatives with respect to each scalar, then ask
// whether what's left accepts the empty string (§4.5).
func (e *Engine) Match(input []rune) bool {
	// Derivatives intern new nodes, so each call works on its own copy of
	// the interner and the Engine itself is never written after Compile.
	it := &interner{
		table:  make(map[string]*Node, len(e.it.table)),
		nextID: e.it.nextID,
		nilN:   e.it.nilN,
		epsN:   e.it.epsN,
	}
	for k, v := range e.it.table {
		it.table[k] = v
	}
	cache := make(Cache)
	cur := e.root
	for _, c := range input {
		cur = it.derive(cache, cur, c)
		if cur == it.nilN {
			return false
		}
	}
	return Nullable(cur)
}

// fromAST walks the parsed AST bottom-up with an explicit stack, the
// same technique nfa.Compile uses, so patterns with hundreds of nested
// alternations or stars convert without recursing on the Go call stack.
func (it *interner) fromAST(root *ast.Node) *Node {
	type job struct {
		n            *ast.Node
		childrenDone bool
	}
	work := []job{{root, false}}
	var results []*Node

	for len(work) > 0 {
		top := work[len(work)-1]
		n := top.n

		if !top.childrenDone {
			work[len(work)-1].childrenDone = true
			switch n.Kind() {
			case ast.KindEmpty, ast.KindChar:
				// leaf
			case ast.KindConcat, ast.KindAlt:
				work = append(work, job{n.Right(), false})
				work = append(work, job{n.Left(), false})
			case ast.KindStar, ast.KindPlus, ast.KindQuestion:
				work = append(work, job{n.Inner(), false})
			}
			continue
		}

		work = work[:len(work)-1]
		var result *Node
		switch n.Kind() {
		case ast.KindEmpty:
			result = it.epsN
		case ast.KindChar:
			result = it.char(n.Char())
		case ast.KindConcat:
			r := results[len(results)-1]
			l := results[len(results)-2]
			results = results[:len(results)-2]
			result = it.concat(l, r)
		case ast.KindAlt:
			r := results[len(results)-1]
			l := results[len(results)-2]
			results = results[:len(results)-2]
			result = it.alt(l, r)
		case ast.KindStar:
			inner := results[len(results)-1]
			results = results[:len(results)-1]
			result = it.star(inner)
		case ast.KindPlus:
			inner := results[len(results)-1]
			results = results[:len(results)-1]
			result = it.concat(inner, it.star(inner))
		case ast.KindQuestion:
			inner := results[len(results)-1]
			results = results[:len(results)-1]
			result = it.alt(inner, it.epsN)
		}
		results = append(results, result)
	}

	return results[len(results)-1]
}
