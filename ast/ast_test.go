package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeAccessors(t *testing.T) {
	c := NewChar('x')
	assert.Equal(t, KindChar, c.Kind())
	assert.Equal(t, 'x', c.Char())
	assert.Nil(t, c.Left())
	assert.Nil(t, c.Right())

	concat := NewConcat(NewChar('a'), NewChar('b'))
	assert.Equal(t, KindConcat, concat.Kind())
	assert.True(t, Equal(NewChar('a'), concat.Left()))
	assert.True(t, Equal(NewChar('b'), concat.Right()))

	star := NewStar(NewChar('a'))
	assert.Equal(t, KindStar, star.Kind())
	assert.True(t, Equal(NewChar('a'), star.Inner()))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(NewEmpty(), NewEmpty()))
	assert.True(t, Equal(NewChar('a'), NewChar('a')))
	assert.False(t, Equal(NewChar('a'), NewChar('b')))
	assert.False(t, Equal(NewChar('a'), NewEmpty()))

	a := NewAlt(NewChar('a'), NewStar(NewChar('b')))
	b := NewAlt(NewChar('a'), NewStar(NewChar('b')))
	c := NewAlt(NewChar('a'), NewPlus(NewChar('b')))
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestStringRoundTripsReparse(t *testing.T) {
	// String() need not reproduce the exact source, but it must produce
	// something re-parseable to a structurally equal AST for every kind.
	patterns := []string{"a", "ab", "a|b", "a*", "a+", "a?", "(a|b)*", `a\|b`}
	for _, pat := range patterns {
		pat := pat
		t.Run(pat, func(t *testing.T) {
			n, err := Parse(pat)
			if err != nil {
				t.Fatalf("Parse(%q): %v", pat, err)
			}
			rendered := n.String()
			reparsed, err := Parse(rendered)
			if err != nil {
				t.Fatalf("Parse(String())=%q: %v", rendered, err)
			}
			if !Equal(n, reparsed) {
				t.Fatalf("String() not re-parseable: %s -> %q -> %s", n, rendered, reparsed)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	for _, k := range []Kind{KindEmpty, KindChar, KindConcat, KindAlt, KindStar, KindPlus, KindQuestion} {
		if k.String() == "" {
			t.Fatalf("Kind(%d).String() is empty", k)
		}
	}
}
