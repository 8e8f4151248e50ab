package vm

import "github.com/coregx/triregex/ast"

// compiler assembles a Program by appending instructions to a single
// growing slice and patching jump/split targets once the addresses they
// need become known. Compilation itself never recurses on the AST: each
// node pushes a continuation closure onto an explicit stack, and the
// driver loop in Compile pops and runs one at a time. A node's own
// closure may push further closures for its children before returning,
// which the stack drains before resuming anything pushed earlier — the
// same left-to-right, depth-first order plain recursion would give,
// without growing the Go call stack per AST level (§4.4, design note on
// bounded recursion).
type compiler struct {
	prog  []Instruction
	stack []func()
}

// push schedules node's continuation to run before anything already on
// the stack.
func (c *compiler) push(node *ast.Node) {
	c.stack = append(c.stack, func() { c.emit(node) })
}

// defer_ schedules fn to run after everything currently pending above it
// on the stack has drained.
func (c *compiler) defer_(fn func()) {
	c.stack = append(c.stack, fn)
}

func (c *compiler) emit(node *ast.Node) {
	switch node.Kind() {
	case ast.KindEmpty:
		// no instructions: the empty pattern matches by falling straight
		// through to the trailing Match.

	case ast.KindChar:
		c.prog = append(c.prog, Instruction{Op: OpChar, Ch: node.Char()})

	case ast.KindConcat:
		// code(left); code(right) — pushed in reverse so left runs first.
		c.push(node.Right())
		c.push(node.Left())

	case ast.KindAlt:
		c.emitAlt(node)

	case ast.KindStar:
		c.emitStar(node)

	case ast.KindPlus:
		c.emitPlus(node)

	case ast.KindQuestion:
		c.emitQuestion(node)
	}
}

// emitAlt lays down: Split(L1,L2); L1: code(A); Jump(L3); L2: code(B); L3:
func (c *compiler) emitAlt(node *ast.Node) {
	splitPC := len(c.prog)
	c.prog = append(c.prog, Instruction{Op: OpSplit})

	var jumpPC int
	mid := func() {
		jumpPC = len(c.prog)
		c.prog = append(c.prog, Instruction{Op: OpJump})
	}
	after := func() {
		l2 := jumpPC + 1
		l3 := len(c.prog)
		c.prog[splitPC] = Instruction{Op: OpSplit, A: splitPC + 1, B: l2}
		c.prog[jumpPC] = Instruction{Op: OpJump, Target: l3}
	}

	c.defer_(after)
	c.push(node.Right())
	c.defer_(mid)
	c.push(node.Left())
}

// emitStar lays down: L1: Split(L2,L3); L2: code(A); Jump(L1); L3:
func (c *compiler) emitStar(node *ast.Node) {
	l1 := len(c.prog)
	c.prog = append(c.prog, Instruction{Op: OpSplit})

	after := func() {
		c.prog = append(c.prog, Instruction{Op: OpJump, Target: l1})
		l3 := len(c.prog)
		c.prog[l1] = Instruction{Op: OpSplit, A: l1 + 1, B: l3}
	}

	c.defer_(after)
	c.push(node.Inner())
}

// emitPlus lays down: L1: code(A); Split(L1,L2); L2:
func (c *compiler) emitPlus(node *ast.Node) {
	l1 := len(c.prog)

	after := func() {
		splitPC := len(c.prog)
		c.prog = append(c.prog, Instruction{Op: OpSplit, A: l1, B: splitPC + 1})
	}

	c.defer_(after)
	c.push(node.Inner())
}

// emitQuestion lays down: Split(L1,L2); L1: code(A); L2:
func (c *compiler) emitQuestion(node *ast.Node) {
	splitPC := len(c.prog)
	c.prog = append(c.prog, Instruction{Op: OpSplit})

	after := func() {
		l2 := len(c.prog)
		c.prog[splitPC] = Instruction{Op: OpSplit, A: splitPC + 1, B: l2}
	}

	c.defer_(after)
	c.push(node.Inner())
}

// Compile turns an AST into a linear bytecode Program terminated by a
// single Match instruction, following the schema table in §4.4.
func Compile(root *ast.Node) *Program {
	c := &compiler{}
	c.push(root)
	for len(c.stack) > 0 {
		fn := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		fn()
	}
	c.prog = append(c.prog, Instruction{Op: OpMatch})
	return &Program{instrs: c.prog}
}
