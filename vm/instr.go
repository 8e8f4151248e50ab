// Package vm compiles an ast.Node into a linear bytecode program and
// executes it with a Pike VM: a lockstep interpreter that advances every
// live thread one input scalar per step, deduping per-step work with
// internal/genset (§4.4, §9).
package vm

import "fmt"

// Op identifies an instruction's opcode. These four are the whole
// instruction set (§3 "VM program"); no other opcodes exist.
type Op uint8

const (
	// OpChar consumes the input head if it equals Ch, else the thread dies.
	OpChar Op = iota

	// OpMatch accepts the thread. Exactly one appears, appended to the
	// end of every compiled program.
	OpMatch

	// OpJump is a non-consuming unconditional jump to Target.
	OpJump

	// OpSplit is a non-consuming fork to A and B. A is tried first; for
	// boolean membership this ordering is irrelevant, but it is fixed
	// for determinism and to avoid recompilation if priority ever
	// matters (§9).
	OpSplit
)

// String returns a human-readable name for the opcode.
func (o Op) String() string {
	switch o {
	case OpChar:
		return "Char"
	case OpMatch:
		return "Match"
	case OpJump:
		return "Jump"
	case OpSplit:
		return "Split"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Instruction is one bytecode instruction. Only the fields relevant to Op
// are meaningful.
type Instruction struct {
	Op     Op
	Ch     rune // OpChar
	Target int  // OpJump: target PC
	A, B   int  // OpSplit: target PCs, A tried before B
}

// Program is an ordered, immutable sequence of instructions with program
// counters as plain instruction indices.
type Program struct {
	instrs []Instruction
}

// Len returns the number of instructions.
func (p *Program) Len() int { return len(p.instrs) }

// At returns the instruction at pc.
func (p *Program) At(pc int) Instruction { return p.instrs[pc] }
