package trie

import (
	"github.com/hideo55/go-popcount"
	"golang.org/x/exp/constraints"
)

// branchingBit returns a mask with exactly one bit set: the highest-order
// bit at which p and q differ. Precondition: p != q.
//
// The teacher's critbit/set_alt smears the XOR down to find the top bit
// and throws away a popcount-derived bit index along the way. Here the
// index is what we actually want, so it drives the computation instead
// of being discarded: smear diff down to all-ones-below-the-top-bit,
// then let go-popcount turn that into the bit position.
func branchingBit[E constraints.Unsigned](p, q E) E {
	if p == q {
		invariantf("branchingBit called with equal keys %v == %v", p, q)
	}
	diff := p ^ q
	v := diff
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	idx := popcount.Count(uint64(v)) - 1
	return E(1) << uint(idx)
}

// zeroBit reports whether e has a zero at the single bit set in m.
func zeroBit[E constraints.Unsigned](e, m E) bool {
	return e&m == 0
}
