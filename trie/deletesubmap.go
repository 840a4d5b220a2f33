package trie

import (
	kadapt "github.com/aglyzov/patricia/trie/internal/keyadapter"
	"golang.org/x/exp/constraints"
)

// deleteSubmapBy performs the structural splice: it descends to the
// node representing k and discards that entire subtrie, rather than
// enumerating every key under it and deleting them one at a time. Off-
// spine subtries are untouched and shared with the original root.
func deleteSubmapBy[E constraints.Unsigned, V any](q []E, t *node[E, V]) *node[E, V] {
	if t == nil {
		return nil
	}
	if !t.isBranch {
		_, qRest, pRest := kadapt.CommonPrefix(q, t.prefix)
		switch {
		case len(qRest) == 0: // q is consumed entirely by (or equals) this arc's prefix
			return nil // every key below shares q as a prefix: drop the whole arc
		case len(pRest) == 0: // arc fully matched, q continues: keep descending
			return arc(t.prefix, t.value, deleteSubmapBy(qRest, t.child))
		default: // diverged mid-arc: k names nothing under t
			return t
		}
	}
	_, qRest, cpRest := kadapt.CommonPrefix(q, t.commonPrefix)
	switch {
	case len(qRest) == 0: // q is consumed entirely by (or equals) the branch's common prefix
		return nil
	case len(cpRest) != 0: // k diverges from the branch's common prefix
		return t
	case zeroBit(kadapt.Head(qRest), t.mask):
		return branch(t.commonPrefix, t.mask, deleteSubmapBy(qRest, t.left), t.right)
	default:
		return branch(t.commonPrefix, t.mask, t.left, deleteSubmapBy(qRest, t.right))
	}
}

// DeleteSubmap removes every binding whose key has k as a prefix, in a
// single structural splice rather than an enumerate-then-delete pass.
func (t Trie[E, V]) DeleteSubmap(k []E) Trie[E, V] {
	return Trie[E, V]{root: deleteSubmapBy(k, t.root)}
}
