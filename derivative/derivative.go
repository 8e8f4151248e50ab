package derivative

// derivKey identifies one memoized derivative result: the expression
// being differentiated (by interned identity) and the scalar consumed.
type derivKey struct {
	n *Node
	c rune
}

// Cache memoizes derivative results across the calls that make up one
// match, so a subexpression reachable by more than one path (common once
// alternations and stars start sharing structure) is differentiated once
// per scalar rather than once per path.
type Cache map[derivKey]*Node

// derive computes ∂c(root), the expression matching whatever remains of
// root's language after consuming scalar c (§4.5). Traversal is an
// explicit-stack post-order walk rather than plain recursion: each node
// is visited once to push its children's derivatives (skipping any
// already in cache), then revisited to combine the now-known child
// derivatives into its own result, matching the fragment-combination
// shape of nfa.Compile so that a long chain of nested alternations can't
// overflow the call stack (§4.4 design note).
func (it *interner) derive(cache Cache, root *Node, c rune) *Node {
	type job struct {
		n            *Node
		childrenDone bool
	}
	work := []job{{root, false}}
	var results []*Node

	for len(work) > 0 {
		top := work[len(work)-1]
		n := top.n
		key := derivKey{n, c}

		if v, ok := cache[key]; ok {
			work = work[:len(work)-1]
			results = append(results, v)
			continue
		}

		if !top.childrenDone {
			work[len(work)-1].childrenDone = true
			switch n.kind {
			case Nil, Eps, Char:
				// leaf: nothing to push
			case Concat:
				if Nullable(n.left) {
					work = append(work, job{n.right, false})
				}
				work = append(work, job{n.left, false})
			case Alt:
				work = append(work, job{n.right, false})
				work = append(work, job{n.left, false})
			case Star:
				work = append(work, job{n.left, false})
			}
			continue
		}

		work = work[:len(work)-1]
		var result *Node
		switch n.kind {
		case Nil, Eps:
			result = it.nilN
		case Char:
			if n.ch == c {
				result = it.epsN
			} else {
				result = it.nilN
			}
		case Concat:
			if Nullable(n.left) {
				dRight := results[len(results)-1]
				dLeft := results[len(results)-2]
				results = results[:len(results)-2]
				result = it.alt(it.concat(dLeft, n.right), dRight)
			} else {
				dLeft := results[len(results)-1]
				results = results[:len(results)-1]
				result = it.concat(dLeft, n.right)
			}
		case Alt:
			dRight := results[len(results)-1]
			dLeft := results[len(results)-2]
			results = results[:len(results)-2]
			result = it.alt(dLeft, dRight)
		case Star:
			dLeft := results[len(results)-1]
			results = results[:len(results)-1]
			result = it.concat(dLeft, n)
		}
		cache[key] = result
		results = append(results, result)
	}

	return results[len(results)-1]
}
