// Package keyadapter implements the L1 key-adapter layer: element access
// over a key of type []E, where E is a fixed-width unsigned integer.
//
// Every function here except Concat is O(shared length) and allocates
// nothing beyond slice headers, so a core algorithm can peel prefixes off a key as
// cheaply as indexing into it.
package keyadapter

import "golang.org/x/exp/constraints"

// Head returns the first element of k. Precondition: k is non-empty.
func Head[E constraints.Unsigned](k []E) E {
	return k[0]
}

// Tail drops the first element of k. Precondition: k is non-empty.
func Tail[E constraints.Unsigned](k []E) []E {
	return k[1:]
}

// Len returns the element count of k (not its byte length, when W != 8).
func Len[E constraints.Unsigned](k []E) int {
	return len(k)
}

// SplitAt splits k at element index n. Precondition: 0 <= n <= len(k).
func SplitAt[E constraints.Unsigned](n int, k []E) ([]E, []E) {
	return k[:n], k[n:]
}

// CommonPrefix returns (shared, aRest, bRest) such that
// shared++aRest == a, shared++bRest == b, and either aRest or bRest is
// empty or head(aRest) != head(bRest).
func CommonPrefix[E constraints.Unsigned](a, b []E) (shared, aRest, bRest []E) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i], a[i:], b[i:]
}

// Concat returns a ++ b. When one input is empty it returns the other
// as is; otherwise it copies both into a newly allocated key. The
// inputs are never mutated, which keeps any arc built from the result
// safe to share across persistent roots.
func Concat[E constraints.Unsigned](a, b []E) []E {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]E, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}
