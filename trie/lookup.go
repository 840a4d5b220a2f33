package trie

import (
	kadapt "github.com/aglyzov/patricia/trie/internal/keyadapter"
	"golang.org/x/exp/constraints"
)

// lookupBy_ descends t consuming elements of q and dispatches to one of
// three continuations depending on how the descent ends:
//
//   - onHit(v, c): q was consumed exactly at a node that represents it
//     (v is that node's optional value, c its child).
//   - onAbsent: q diverged from t's structure; no such key or prefix.
//   - onPartial(rest): q ran out strictly inside an arc's prefix, or at
//     or inside a branch's common prefix; rest is the subtrie rooted at
//     that point.
func lookupBy_[E constraints.Unsigned, V any, R any](
	onHit func(v *V, c *node[E, V]) R,
	onAbsent R,
	onPartial func(rest *node[E, V]) R,
	q []E, t *node[E, V],
) R {
	if t == nil {
		return onAbsent
	}
	if !t.isBranch {
		_, qRest, pRest := kadapt.CommonPrefix(q, t.prefix)
		switch {
		case len(pRest) == 0 && len(qRest) == 0:
			return onHit(t.value, t.child)
		case len(pRest) == 0: // qRest non-empty: arc fully matched, keep descending
			return lookupBy_(onHit, onAbsent, onPartial, qRest, t.child)
		case len(qRest) == 0: // q exhausted strictly inside the arc's prefix
			return onPartial(arc(pRest, t.value, t.child))
		default: // both non-empty: diverged mid-arc
			return onAbsent
		}
	}
	_, qRest, cpRest := kadapt.CommonPrefix(q, t.commonPrefix)
	switch {
	case len(qRest) == 0: // q exhausted at or inside the branch's common prefix
		return onPartial(rewrapBranch(t, cpRest))
	case len(cpRest) != 0: // q has more but diverges from the common prefix
		return onAbsent
	case zeroBit(kadapt.Head(qRest), t.mask):
		return lookupBy_(onHit, onAbsent, onPartial, qRest, t.left)
	default:
		return lookupBy_(onHit, onAbsent, onPartial, qRest, t.right)
	}
}

// lookupOutcome is lookupBy_'s result type for Lookup: a Go struct
// standing in for the Maybe value the spec's pseudocode returns.
type lookupOutcome[V any] struct {
	val V
	ok  bool
}

// Lookup returns the value bound to k, if any.
func (t Trie[E, V]) Lookup(k []E) (V, bool) {
	out := lookupBy_(
		func(v *V, _ *node[E, V]) lookupOutcome[V] {
			if v == nil {
				return lookupOutcome[V]{}
			}
			return lookupOutcome[V]{val: *v, ok: true}
		},
		lookupOutcome[V]{},
		func(_ *node[E, V]) lookupOutcome[V] { return lookupOutcome[V]{} },
		k, t.root,
	)
	return out.val, out.ok
}

// Member reports whether k is bound in t.
func (t Trie[E, V]) Member(k []E) bool {
	_, ok := t.Lookup(k)
	return ok
}

// Submap returns the sub-trie of all bindings whose key has k as a
// prefix, rekeyed so those keys retain their original spelling.
func (t Trie[E, V]) Submap(k []E) Trie[E, V] {
	root := lookupBy_(
		func(v *V, c *node[E, V]) *node[E, V] { return arc(k, v, c) },
		(*node[E, V])(nil),
		func(rest *node[E, V]) *node[E, V] { return arc(k, (*V)(nil), rest) },
		k, t.root,
	)
	return Trie[E, V]{root: root}
}
