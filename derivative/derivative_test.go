package derivative

import (
	"testing"

	"github.com/coregx/triregex/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, pattern string) *Engine {
	t.Helper()
	node, err := ast.Parse(pattern)
	require.NoError(t, err)
	return Compile(node)
}

func TestMatchSeedPatterns(t *testing.T) {
	cases := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a|b*", []string{"a", "b", "bb", "bbb", ""}, []string{"c", "ab"}},
		{"ab(cd|)", []string{"ab", "abcd"}, []string{"abc", "abcde", ""}},
		{"a+b", []string{"ab", "aab", "aaab"}, []string{"a", "b", ""}},
		{`a\|b\*`, []string{"a|b*"}, []string{"ab", "a", "b*"}},
		{"(a|b)*", []string{"", "a", "b", "abab"}, []string{"c", "aba c"}},
		{"a?b", []string{"b", "ab"}, []string{"a", "aab", ""}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.pattern, func(t *testing.T) {
			e := mustCompile(t, tc.pattern)
			for _, s := range tc.accept {
				assert.True(t, e.Match([]rune(s)), "expected %q to match %q", s, tc.pattern)
			}
			for _, s := range tc.reject {
				assert.False(t, e.Match([]rune(s)), "expected %q to not match %q", s, tc.pattern)
			}
		})
	}
}

func TestMatchEmptyPattern(t *testing.T) {
	e := mustCompile(t, "")
	assert.True(t, e.Match([]rune("")))
	assert.False(t, e.Match([]rune("x")))
}

func TestUnionCommutativity(t *testing.T) {
	// (a|b) and (b|a), compiled separately, accept exactly the same
	// inputs (§8 "union commutativity").
	ab := mustCompile(t, "a|b")
	ba := mustCompile(t, "b|a")
	for _, s := range []string{"", "a", "b", "c"} {
		assert.Equal(t, ab.Match([]rune(s)), ba.Match([]rune(s)), "input %q", s)
	}
}

func TestStarIdempotence(t *testing.T) {
	single := mustCompile(t, "a*")
	for _, s := range []string{"", "a", "aaaa", "b"} {
		assert.Equal(t, single.Match([]rune(s)), mustCompile(t, "(a*)*").Match([]rune(s)), "input %q", s)
	}
}

func TestAltIdentityCollapsesToSharedNode(t *testing.T) {
	it := newInterner()
	a := it.char('a')
	b := it.char('b')
	assert.Same(t, it.alt(a, b), it.alt(b, a))
	assert.Same(t, a, it.alt(a, a))
	assert.Same(t, a, it.alt(it.nilN, a))
}

func TestConcatIdentityCollapses(t *testing.T) {
	it := newInterner()
	a := it.char('a')
	assert.Same(t, it.nilN, it.concat(it.nilN, a))
	assert.Same(t, it.nilN, it.concat(a, it.nilN))
	assert.Same(t, a, it.concat(it.epsN, a))
	assert.Same(t, a, it.concat(a, it.epsN))
}

func TestStarOfStarCollapses(t *testing.T) {
	it := newInterner()
	a := it.char('a')
	s := it.star(a)
	assert.Same(t, s, it.star(s))
}

func TestNullable(t *testing.T) {
	assert.True(t, Nullable(mustCompile(t, "a*").root))
	assert.True(t, Nullable(mustCompile(t, "(ab)?").root))
	assert.False(t, Nullable(mustCompile(t, "a").root))
	assert.True(t, Nullable(mustCompile(t, "").root))
}

func TestMatchUnicodeScalars(t *testing.T) {
	e := mustCompile(t, "正+規")
	assert.True(t, e.Match([]rune("正規")))
	assert.True(t, e.Match([]rune("正正正規")))
	assert.False(t, e.Match([]rune("規")))
}

func TestMatchDeepNesting(t *testing.T) {
	node := ast.NewChar('a')
	for i := 0; i < 2000; i++ {
		node = ast.NewStar(node)
	}
	e := Compile(node)
	assert.True(t, e.Match([]rune("")))
	assert.True(t, e.Match([]rune("aaaa")))
}

func TestMatchDeepAlternation(t *testing.T) {
	node := ast.NewChar('a')
	for i := 0; i < 500; i++ {
		node = ast.NewAlt(node, ast.NewChar(rune('b'+i%20)))
	}
	e := Compile(node)
	assert.True(t, e.Match([]rune("a")))
	assert.False(t, e.Match([]rune("aa")))
}
