// Package triregex compiles a regular expression pattern into one of
// three interchangeable recognizers and answers whole-string membership
// queries against it.
//
// triregex deliberately keeps a small surface:
//   - A shared parser and AST feed three independently verifiable
//     back-ends: a deterministic automaton ("dfa"), a Thompson-style
//     lockstep bytecode simulator ("vm"), and a Brzozowski-derivative
//     evaluator ("derivative").
//   - Only boolean membership of the entire input is supported — no
//     capture groups, anchors, character classes, counted repetitions,
//     or partial/leftmost matching.
//   - Input is a sequence of Unicode scalar values, not bytes.
//
// Basic usage:
//
//	re, err := triregex.New(`a+b`, "dfa")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.IsMatch("aaab") {
//	    fmt.Println("matched!")
//	}
//
// All three engines recognize exactly the same language for a given
// pattern; the selector only trades off construction cost against
// per-call cost (§4.6).
package triregex

import (
	"github.com/coregx/triregex/ast"
	"github.com/coregx/triregex/derivative"
	"github.com/coregx/triregex/dfa"
	"github.com/coregx/triregex/nfa"
	"github.com/coregx/triregex/vm"
)

// Engine is a compiled pattern bound to one back-end. An Engine is
// immutable after construction and safe to share across goroutines for
// IsMatch calls; IsMatch allocates its own per-call scratch state rather
// than reusing any field on Engine (§5).
type Engine struct {
	selector string
	dfa      *dfa.DFA
	vmProg   *vm.Program
	deriv    *derivative.Engine
}

// New parses pattern and builds the back-end named by selector, which
// must be exactly "dfa", "vm" or "derivative" (§4.6). No Engine is
// returned on error; partial construction state never leaks to the
// caller (§7).
//
// Example:
//
//	re, err := triregex.New(`正規表現(太郎|次郎)`, "vm")
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(pattern, selector string) (*Engine, error) {
	root, err := ast.Parse(pattern)
	if err != nil {
		return nil, err
	}

	switch selector {
	case "dfa":
		n, err := nfa.Compile(root)
		if err != nil {
			return nil, err
		}
		return &Engine{selector: selector, dfa: dfa.Build(n)}, nil
	case "vm":
		return &Engine{selector: selector, vmProg: vm.Compile(root)}, nil
	case "derivative":
		return &Engine{selector: selector, deriv: derivative.Compile(root)}, nil
	default:
		return nil, &UnknownEngineError{Name: selector}
	}
}

// MustNew is like New but panics if pattern fails to parse or selector
// is not recognized. Useful for patterns and selectors fixed at compile
// time.
func MustNew(pattern, selector string) *Engine {
	e, err := New(pattern, selector)
	if err != nil {
		panic("triregex: New(" + pattern + ", " + selector + "): " + err.Error())
	}
	return e
}

// IsMatch reports whether input, taken as a whole, is in the pattern's
// language. It never fails: there is no error return, no panic, and no
// partial result (§7).
func (e *Engine) IsMatch(input string) bool {
	scalars := []rune(input)
	switch e.selector {
	case "dfa":
		return e.dfa.Match(scalars)
	case "vm":
		return vm.Run(e.vmProg, scalars)
	case "derivative":
		return e.deriv.Match(scalars)
	default:
		// New never returns an Engine with any other selector.
		panic("triregex: unreachable selector " + e.selector)
	}
}
