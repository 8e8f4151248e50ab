// Package derivative implements whole-string membership via Brzozowski
// derivatives: repeatedly rewrite the expression into "what's left to
// match after consuming one scalar", then ask whether the final
// expression accepts the empty string (§4.5).
//
// The representation here is smaller than ast.Node: Plus and Question
// desugar to Concat/Star and Alt/Eps respectively (A+ = A·A*, A? = A|ε),
// which are the textbook primitives the derivative and normalization
// rules are stated over. An extra Nil node (∅, the empty language) is
// needed too — it never appears in a parsed pattern, but every
// derivative rewrite can produce one (e.g. ∂_c(b) = ∅ when c != b), and
// normalizing it away at each step is what keeps the expression from
// growing without bound.
package derivative

// Kind identifies a node's shape.
type Kind int

const (
	Nil Kind = iota // ∅, the empty language
	Eps             // ε, the language containing only the empty string
	Char
	Concat
	Alt
	Star
)

// Node is a hash-consed derivative expression: two nodes are the same
// expression if and only if they are the same pointer. Hash-consing is
// what makes Alt(A,A) == A, Star(Star(A)) == Star(A) and so on collapse
// to pointer identity instead of a separate deep-equality pass on every
// comparison, and lets the derivative memo cache key on (*Node, rune)
// directly.
type Node struct {
	kind  Kind
	ch    rune
	left  *Node
	right *Node
	id    uint64
}

func (n *Node) Kind() Kind   { return n.kind }
func (n *Node) Char() rune   { return n.ch }
func (n *Node) Left() *Node  { return n.left }
func (n *Node) Right() *Node { return n.right }

// interner owns the canonical table of nodes for one compiled pattern.
// Every constructor applies the normalization rewrite for its shape
// before consulting or growing the table, so no two interned nodes are
// ever structurally equal but pointer-distinct.
type interner struct {
	table  map[string]*Node
	nextID uint64
	nilN   *Node
	epsN   *Node
}

func newInterner() *interner {
	it := &interner{table: make(map[string]*Node)}
	it.nilN = it.leaf(Nil)
	it.epsN = it.leaf(Eps)
	return it
}

func (it *interner) leaf(k Kind) *Node {
	it.nextID++
	return &Node{kind: k, id: it.nextID}
}

func (it *interner) char(c rune) *Node {
	k := composite('H', uint64(c), 0)
	if n, ok := it.table[k]; ok {
		return n
	}
	it.nextID++
	n := &Node{kind: Char, ch: c, id: it.nextID}
	it.table[k] = n
	return n
}

// concat applies: ∅·B = ∅, A·∅ = ∅, ε·B = B, A·ε = A.
func (it *interner) concat(a, b *Node) *Node {
	if a == it.nilN || b == it.nilN {
		return it.nilN
	}
	if a == it.epsN {
		return b
	}
	if b == it.epsN {
		return a
	}
	k := composite('C', a.id, b.id)
	if n, ok := it.table[k]; ok {
		return n
	}
	it.nextID++
	n := &Node{kind: Concat, left: a, right: b, id: it.nextID}
	it.table[k] = n
	return n
}

// alt applies: ∅|B = B, A|∅ = A, A|A = A, and is made commutative by
// always ordering operands by id before interning, so A|B and B|A
// collapse to the same node (§8 "union commutativity").
func (it *interner) alt(a, b *Node) *Node {
	if a == it.nilN {
		return b
	}
	if b == it.nilN {
		return a
	}
	if a == b {
		return a
	}
	if a.id > b.id {
		a, b = b, a
	}
	k := composite('A', a.id, b.id)
	if n, ok := it.table[k]; ok {
		return n
	}
	it.nextID++
	n := &Node{kind: Alt, left: a, right: b, id: it.nextID}
	it.table[k] = n
	return n
}

// star applies: (∅)* = ε, (ε)* = ε, (A*)* = A*.
func (it *interner) star(a *Node) *Node {
	if a == it.nilN || a == it.epsN {
		return it.epsN
	}
	if a.kind == Star {
		return a
	}
	k := composite('S', a.id, 0)
	if n, ok := it.table[k]; ok {
		return n
	}
	it.nextID++
	n := &Node{kind: Star, left: a, id: it.nextID}
	it.table[k] = n
	return n
}

func composite(tag byte, a, b uint64) string {
	buf := make([]byte, 0, 20)
	buf = append(buf, tag)
	buf = appendUint(buf, a)
	buf = append(buf, ',')
	buf = appendUint(buf, b)
	return string(buf)
}

func appendUint(buf []byte, v uint64) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
