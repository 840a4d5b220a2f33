package trie

import "fmt"

// InvariantViolation reports a broken internal invariant. invariantf
// panics with one when an internal precondition fails (branchingBit
// called with two equal elements) — a program-state bug in this
// package, not a recoverable error a caller could have avoided, so it
// fails fast rather than surfacing as an error return. Validate
// returns one as an ordinary error describing the first invariant
// violation it finds in a trie.
type InvariantViolation struct {
	msg string
}

func (e *InvariantViolation) Error() string { return e.msg }

func invariantf(format string, args ...any) {
	panic(&InvariantViolation{msg: fmt.Sprintf("internal invariant violated: "+format, args...)})
}
