package vm

import "github.com/coregx/triregex/internal/genset"

// addThread follows every non-consuming instruction (Jump, Split)
// reachable from pc and appends the consuming/terminal instructions
// (Char, Match) it bottoms out at to *list, using seen to skip a pc
// already added this generation. The work list is an explicit stack
// rather than a recursive call so that a pathologically long run of
// nested splits (e.g. a deep alternation chain) cannot overflow the Go
// call stack (§4.4 design note on bounded recursion).
func addThread(prog *Program, seen *genset.Set, list *[]int, pc int) {
	stack := []int{pc}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !seen.Insert(p) {
			continue
		}
		instr := prog.At(p)
		switch instr.Op {
		case OpJump:
			stack = append(stack, instr.Target)
		case OpSplit:
			// Push B before A so A is popped (and thus expanded) first,
			// preserving A's priority. Priority has no observable effect
			// on whole-string boolean membership, but keeping it stable
			// avoids needless divergence from the schema's stated order.
			stack = append(stack, instr.B, instr.A)
		default: // OpChar, OpMatch
			*list = append(*list, p)
		}
	}
}

// Run executes prog against input and reports whether the whole of
// input is accepted, simulating every live thread in lockstep the way
// Thompson's original construction intended (§4.4): no backtracking, no
// captures, no leftmost-longest search — only whether the full string is
// in the language.
func Run(prog *Program, input []rune) bool {
	seen := genset.New(prog.Len())
	var current []int
	addThread(prog, seen, &current, 0)

	for _, c := range input {
		seen.Reset()
		var next []int
		for _, pc := range current {
			instr := prog.At(pc)
			if instr.Op == OpChar && instr.Ch == c {
				addThread(prog, seen, &next, pc+1)
			}
		}
		current = next
		if len(current) == 0 {
			return false
		}
	}

	for _, pc := range current {
		if prog.At(pc).Op == OpMatch {
			return true
		}
	}
	return false
}

// MatchString is Run over the Unicode scalar values of s.
func MatchString(prog *Program, s string) bool {
	return Run(prog, []rune(s))
}
