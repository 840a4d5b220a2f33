package trie

import (
	"iter"

	kadapt "github.com/aglyzov/patricia/trie/internal/keyadapter"
	"golang.org/x/exp/constraints"
)

// MatchResult is one hit produced by Matches: the length of the stored
// key matched and its value. The caller already has the full query q
// and can reslice it: q[:Length] is the key, q[Length:] the unconsumed
// remainder.
type MatchResult[E constraints.Unsigned, V any] struct {
	Length int
	Value  V
}

// walkMatches descends q through t, calling emit(consumedLen, value)
// at every node where a stored key is a prefix of q, in increasing
// order of consumedLen, stopping early if emit returns false or the
// query diverges from the trie's structure.
func walkMatches[E constraints.Unsigned, V any](q []E, t *node[E, V], emit func(n int, v V) bool) {
	consumed := 0
	cur := t
	rem := q
	for cur != nil {
		if !cur.isBranch {
			_, remRest, pRest := kadapt.CommonPrefix(rem, cur.prefix)
			if len(pRest) != 0 {
				return // rem is shorter than, or diverges from, this arc's prefix
			}
			consumed += len(cur.prefix)
			if cur.value != nil {
				if !emit(consumed, *cur.value) {
					return
				}
			}
			if len(remRest) == 0 {
				return
			}
			rem, cur = remRest, cur.child
			continue
		}
		_, remRest, cpRest := kadapt.CommonPrefix(rem, cur.commonPrefix)
		if len(cpRest) != 0 {
			return
		}
		consumed += len(cur.commonPrefix)
		if len(remRest) == 0 {
			return // branches hold no value of their own
		}
		if zeroBit(kadapt.Head(remRest), cur.mask) {
			cur = cur.left
		} else {
			cur = cur.right
		}
		rem = remRest
	}
}

// Match returns the longest stored key that is a prefix of q, along
// with its value and q's unconsumed remainder.
func (t Trie[E, V]) Match(q []E) (matched []E, value V, rest []E, ok bool) {
	bestLen := -1
	var bestVal V
	walkMatches(q, t.root, func(n int, v V) bool {
		bestLen, bestVal = n, v
		return true
	})
	if bestLen < 0 {
		return nil, value, q, false
	}
	return q[:bestLen], bestVal, q[bestLen:], true
}

// Matches returns, in increasing length order, every stored key that
// is a prefix of q. It materialises nothing up front: the sequence is
// produced on demand as the consumer pulls from it, and a consumer
// that stops early (break out of a range loop) halts the walk.
func (t Trie[E, V]) Matches(q []E) iter.Seq[MatchResult[E, V]] {
	return func(yield func(MatchResult[E, V]) bool) {
		walkMatches(q, t.root, func(n int, v V) bool {
			return yield(MatchResult[E, V]{Length: n, Value: v})
		})
	}
}
