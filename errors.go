package triregex

import "fmt"

// UnknownEngineError reports a selector that isn't one of "dfa", "vm" or
// "derivative" (§4.6, §7).
type UnknownEngineError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("triregex: unknown engine %q: want \"dfa\", \"vm\" or \"derivative\"", e.Name)
}
