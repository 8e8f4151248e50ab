package derivative

// Nullable reports whether n's language contains the empty string (§4.5
// "ν", the nullability predicate). It walks left-to-right and bails out
// as soon as the answer is known, so it never visits more of the tree
// than necessary.
func Nullable(n *Node) bool {
	switch n.kind {
	case Nil:
		return false
	case Eps:
		return true
	case Char:
		return false
	case Concat:
		return Nullable(n.left) && Nullable(n.right)
	case Alt:
		return Nullable(n.left) || Nullable(n.right)
	case Star:
		return true
	default:
		return false
	}
}
