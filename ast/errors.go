package ast

import "fmt"

// ErrorKind classifies a parse failure (§7).
type ErrorKind uint8

const (
	// UnbalancedParen covers both an unclosed '(' (EOF reached inside a
	// group) and a stray ')' with no matching open group.
	UnbalancedParen ErrorKind = iota

	// UnexpectedQuantifier covers a '*', '+' or '?' with no preceding
	// atom to apply to, including a second quantifier stacked directly
	// on a first one (e.g. "a**").
	UnexpectedQuantifier

	// TrailingEscape covers a pattern ending in an unpaired '\'.
	TrailingEscape

	// UnexpectedCharacter covers a token that cannot start an atom in a
	// position where the grammar requires one. The grammar in §6 routes
	// every scalar through TokChar via escaping, so this is currently
	// only reachable defensively; it is kept because §7 names it as a
	// distinct error kind.
	UnexpectedCharacter
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case UnbalancedParen:
		return "UnbalancedParen"
	case UnexpectedQuantifier:
		return "UnexpectedQuantifier"
	case TrailingEscape:
		return "TrailingEscape"
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// ParseError reports a pattern that could not be parsed, citing the
// scalar offset (not byte offset) at which the problem was detected.
type ParseError struct {
	Offset int
	Kind   ErrorKind
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("regex: parse error at offset %d: %s", e.Offset, e.Kind)
}
