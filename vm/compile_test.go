package vm

import (
	"testing"

	"github.com/coregx/triregex/ast"
	"github.com/stretchr/testify/assert"
)

func TestCompileChar(t *testing.T) {
	prog := Compile(ast.NewChar('a'))
	assert.Equal(t, 2, prog.Len())
	assert.Equal(t, OpChar, prog.At(0).Op)
	assert.Equal(t, 'a', prog.At(0).Ch)
	assert.Equal(t, OpMatch, prog.At(1).Op)
}

func TestCompileEmpty(t *testing.T) {
	prog := Compile(ast.NewEmpty())
	assert.Equal(t, 1, prog.Len())
	assert.Equal(t, OpMatch, prog.At(0).Op)
}

func TestCompileConcatOrder(t *testing.T) {
	node := ast.NewConcat(ast.NewChar('a'), ast.NewChar('b'))
	prog := Compile(node)
	assert.Equal(t, []rune{'a', 'b'}, []rune{prog.At(0).Ch, prog.At(1).Ch})
	assert.Equal(t, OpMatch, prog.At(2).Op)
}

func TestCompileAltTargets(t *testing.T) {
	node := ast.NewAlt(ast.NewChar('a'), ast.NewChar('b'))
	prog := Compile(node)

	// Split(1,3); 1: Char a; 2: Jump(4); 3: Char b; 4: Match
	require := prog
	assert.Equal(t, OpSplit, require.At(0).Op)
	assert.Equal(t, 1, require.At(0).A)
	assert.Equal(t, 3, require.At(0).B)
	assert.Equal(t, OpChar, require.At(1).Op)
	assert.Equal(t, 'a', require.At(1).Ch)
	assert.Equal(t, OpJump, require.At(2).Op)
	assert.Equal(t, 4, require.At(2).Target)
	assert.Equal(t, OpChar, require.At(3).Op)
	assert.Equal(t, 'b', require.At(3).Ch)
	assert.Equal(t, OpMatch, require.At(4).Op)
}

func TestCompileStarLoopsBack(t *testing.T) {
	node := ast.NewStar(ast.NewChar('a'))
	prog := Compile(node)

	// 0: Split(1,3); 1: Char a; 2: Jump(0); 3: Match
	assert.Equal(t, OpSplit, prog.At(0).Op)
	assert.Equal(t, 1, prog.At(0).A)
	assert.Equal(t, 3, prog.At(0).B)
	assert.Equal(t, OpChar, prog.At(1).Op)
	assert.Equal(t, OpJump, prog.At(2).Op)
	assert.Equal(t, 0, prog.At(2).Target)
	assert.Equal(t, OpMatch, prog.At(3).Op)
}

func TestCompilePlusEntersBodyOnce(t *testing.T) {
	node := ast.NewPlus(ast.NewChar('a'))
	prog := Compile(node)

	// 0: Char a; 1: Split(0,2); 2: Match
	assert.Equal(t, OpChar, prog.At(0).Op)
	assert.Equal(t, OpSplit, prog.At(1).Op)
	assert.Equal(t, 0, prog.At(1).A)
	assert.Equal(t, 2, prog.At(1).B)
	assert.Equal(t, OpMatch, prog.At(2).Op)
}

func TestCompileQuestionSkipsBody(t *testing.T) {
	node := ast.NewQuestion(ast.NewChar('a'))
	prog := Compile(node)

	// 0: Split(1,2); 1: Char a; 2: Match
	assert.Equal(t, OpSplit, prog.At(0).Op)
	assert.Equal(t, 1, prog.At(0).A)
	assert.Equal(t, 2, prog.At(0).B)
	assert.Equal(t, OpChar, prog.At(1).Op)
	assert.Equal(t, OpMatch, prog.At(2).Op)
}
