package trie

import (
	"github.com/aglyzov/patricia/trie/internal/keyadapter"
	"golang.org/x/exp/constraints"
)

// node is the algebraic shape of the trie: Empty | Arc | Branch,
// folded into a single tagged struct the way a systems language
// models a closed sum type. Empty is represented by the nil pointer,
// which is idiomatic Go and matches how the teacher's crit-bit Dict
// uses a zero-value Ref{} to mean "nothing stored here yet".
//
// An Arc (isBranch == false) carries a possibly-empty prefix, an
// optional value, and a child that is nil (Empty), a Branch, or — only
// when the arc itself carries a value — another Arc. A value-less Arc
// never wraps another Arc (invariant I2: the arc smart constructor
// fuses the two).
//
// A Branch (isBranch == true) carries a common prefix, a single-bit
// mask, and two non-nil children distinguished by that mask.
type node[E constraints.Unsigned, V any] struct {
	isBranch bool

	// Arc fields.
	prefix []E
	value  *V
	child  *node[E, V]

	// Branch fields.
	commonPrefix []E
	mask         E
	left, right  *node[E, V]
}

// arc is the smart constructor for Arc nodes; it restores I1 and I2.
func arc[E constraints.Unsigned, V any](p []E, v *V, c *node[E, V]) *node[E, V] {
	if v == nil {
		if len(p) == 0 {
			return c
		}
		if c == nil {
			return nil // I1: no dead Empty-arcs.
		}
		if !c.isBranch {
			// I2: fuse Arc(p, Nothing, Arc(q, v', c')) into Arc(p++q, v', c').
			return arc(keyadapter.Concat(p, c.prefix), c.value, c.child)
		}
	}
	return &node[E, V]{isBranch: false, prefix: p, value: v, child: c}
}

// branch is the smart constructor for Branch nodes; it restores I4 by
// degrading to an arc whenever one side would otherwise be Empty.
func branch[E constraints.Unsigned, V any](cp []E, m E, l, r *node[E, V]) *node[E, V] {
	if l == nil {
		return arc(cp, (*V)(nil), r)
	}
	if r == nil {
		return arc(cp, (*V)(nil), l)
	}
	return &node[E, V]{isBranch: true, commonPrefix: cp, mask: m, left: l, right: r}
}

// branchMerge joins two non-empty subtries whose first-key elements,
// pHead and qHead, are known to differ. The caller is responsible for
// having peeled off any shared key-prefix first; the branch produced
// here always has an empty commonPrefix.
func branchMerge[E constraints.Unsigned, V any](pHead E, t1 *node[E, V], qHead E, t2 *node[E, V]) *node[E, V] {
	m := branchingBit(pHead, qHead)
	if zeroBit(pHead, m) {
		return branch[E, V](nil, m, t1, t2)
	}
	return branch[E, V](nil, m, t2, t1)
}

// rewrapBranch returns a Branch equivalent to b but viewed as if its
// commonPrefix were newPrefix instead of b.commonPrefix. It shares b's
// mask and children, so it allocates exactly one node.
func rewrapBranch[E constraints.Unsigned, V any](b *node[E, V], newPrefix []E) *node[E, V] {
	return &node[E, V]{isBranch: true, commonPrefix: newPrefix, mask: b.mask, left: b.left, right: b.right}
}

// anyElem descends left-biased through n until it finds a non-empty
// prefix or commonPrefix, and returns its head element. By invariant
// I3, every key under n agrees on all bits above n's nearest enclosing
// mask, so any element found this way is a valid representative for
// mask-dominance comparisons in mergeBy.
func anyElem[E constraints.Unsigned, V any](n *node[E, V]) (E, bool) {
	for n != nil {
		if n.isBranch {
			if len(n.commonPrefix) > 0 {
				return n.commonPrefix[0], true
			}
			n = n.left
			continue
		}
		if len(n.prefix) > 0 {
			return n.prefix[0], true
		}
		n = n.child
	}
	var zero E
	return zero, false
}
