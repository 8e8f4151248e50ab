// Package enginetest is shared test infrastructure for asserting that
// the three back-ends agree on every pattern and input they're given
// (§8 "Equivalence"). It exists only to be imported from _test.go files
// across the module; it is not part of the public API.
package enginetest

import (
	"testing"

	"github.com/coregx/triregex"
	"github.com/stretchr/testify/assert"
)

// Selectors lists every recognized engine selector, in the order
// AssertAllAgree reports disagreements against (the first is the
// reference result).
var Selectors = []string{"dfa", "vm", "derivative"}

// BuildAll compiles pattern under every selector, failing the test
// immediately if any selector rejects a pattern the others would accept.
func BuildAll(t *testing.T, pattern string) map[string]*triregex.Engine {
	t.Helper()
	engines := make(map[string]*triregex.Engine, len(Selectors))
	for _, sel := range Selectors {
		e, err := triregex.New(pattern, sel)
		if err != nil {
			t.Fatalf("New(%q, %q): %v", pattern, sel, err)
		}
		engines[sel] = e
	}
	return engines
}

// AssertAllAgree builds pattern under every selector and asserts they
// report identical IsMatch results for every string in inputs.
func AssertAllAgree(t *testing.T, pattern string, inputs []string) {
	t.Helper()
	engines := BuildAll(t, pattern)
	reference := Selectors[0]
	for _, s := range inputs {
		want := engines[reference].IsMatch(s)
		for _, sel := range Selectors[1:] {
			got := engines[sel].IsMatch(s)
			assert.Equal(t, want, got,
				"pattern %q, input %q: %s=%v but %s=%v", pattern, s, reference, want, sel, got)
		}
	}
}
