package trie

import (
	kadapt "github.com/aglyzov/patricia/trie/internal/keyadapter"
	"golang.org/x/exp/constraints"
)

// CombineFunc resolves a key bound in both operands of mergeBy. It is
// called with the first operand's value as its first argument — the
// tie-break rule spec'd for mergeBy. Returning keep == false drops the
// key from the result.
type CombineFunc[V any] func(x, y V) (V, bool)

func combineValues[V any](f CombineFunc[V], v1, v2 *V) *V {
	switch {
	case v1 == nil && v2 == nil:
		return nil
	case v2 == nil:
		return v1
	case v1 == nil:
		return v2
	default:
		merged, keep := f(*v1, *v2)
		if !keep {
			return nil
		}
		return &merged
	}
}

// mergeBy is the generic structural merge: it combines t1 and t2,
// applying f to the value at any key bound in both, in O(|t1|+|t2|).
func mergeBy[E constraints.Unsigned, V any](f CombineFunc[V], t1, t2 *node[E, V]) *node[E, V] {
	switch {
	case t1 == nil:
		return t2
	case t2 == nil:
		return t1
	case !t1.isBranch && !t2.isBranch:
		return mergeArcArc(f, t1, t2)
	case !t1.isBranch && t2.isBranch:
		return mergeArcBranch(f, t1, t2)
	case t1.isBranch && !t2.isBranch:
		return mergeBranchArc(f, t1, t2)
	default:
		return mergeBranchBranch(f, t1, t2)
	}
}

func mergeArcArc[E constraints.Unsigned, V any](f CombineFunc[V], a1, a2 *node[E, V]) *node[E, V] {
	shared, r1, r2 := kadapt.CommonPrefix(a1.prefix, a2.prefix)
	switch {
	case len(r1) == 0 && len(r2) == 0:
		newVal := combineValues(f, a1.value, a2.value)
		return arc(shared, newVal, mergeBy(f, a1.child, a2.child))
	case len(r1) == 0:
		rewrapped2 := arc(r2, a2.value, a2.child)
		return arc(shared, a1.value, mergeBy(f, a1.child, rewrapped2))
	case len(r2) == 0:
		rewrapped1 := arc(r1, a1.value, a1.child)
		return arc(shared, a2.value, mergeBy(f, rewrapped1, a2.child))
	default:
		rewrapped1 := arc(r1, a1.value, a1.child)
		rewrapped2 := arc(r2, a2.value, a2.child)
		return arc(shared, (*V)(nil), branchMerge(kadapt.Head(r1), rewrapped1, kadapt.Head(r2), rewrapped2))
	}
}

// mergeArcBranch merges a as the first operand against br as the
// second. A Branch never carries a value of its own, so a's value
// always passes through untouched — f is never called on it.
func mergeArcBranch[E constraints.Unsigned, V any](f CombineFunc[V], a, br *node[E, V]) *node[E, V] {
	shared, r1, r2 := kadapt.CommonPrefix(a.prefix, br.commonPrefix)
	switch {
	case len(r1) == 0 && len(r2) == 0:
		return arc(shared, a.value, mergeBy(f, a.child, rewrapBranch(br, nil)))
	case len(r1) == 0:
		return arc(shared, a.value, mergeBy(f, a.child, rewrapBranch(br, r2)))
	case len(r2) == 0:
		rewrappedArc := arc(r1, a.value, a.child)
		if zeroBit(kadapt.Head(r1), br.mask) {
			return branch(shared, br.mask, mergeBy(f, rewrappedArc, br.left), br.right)
		}
		return branch(shared, br.mask, br.left, mergeBy(f, rewrappedArc, br.right))
	default:
		rewrappedArc := arc(r1, a.value, a.child)
		rewrappedBr := rewrapBranch(br, r2)
		return arc(shared, (*V)(nil), branchMerge(kadapt.Head(r1), rewrappedArc, kadapt.Head(r2), rewrappedBr))
	}
}

// mergeBranchArc merges br as the first operand against a as the
// second; the mirror image of mergeArcBranch.
func mergeBranchArc[E constraints.Unsigned, V any](f CombineFunc[V], br, a *node[E, V]) *node[E, V] {
	shared, r1, r2 := kadapt.CommonPrefix(br.commonPrefix, a.prefix)
	switch {
	case len(r1) == 0 && len(r2) == 0:
		return arc(shared, a.value, mergeBy(f, rewrapBranch(br, nil), a.child))
	case len(r1) == 0:
		rewrappedArc := arc(r2, a.value, a.child)
		if zeroBit(kadapt.Head(r2), br.mask) {
			return branch(shared, br.mask, mergeBy(f, br.left, rewrappedArc), br.right)
		}
		return branch(shared, br.mask, br.left, mergeBy(f, br.right, rewrappedArc))
	case len(r2) == 0:
		return arc(shared, a.value, mergeBy(f, rewrapBranch(br, r1), a.child))
	default:
		rewrappedBr := rewrapBranch(br, r1)
		rewrappedArc := arc(r2, a.value, a.child)
		return arc(shared, (*V)(nil), branchMerge(kadapt.Head(r1), rewrappedBr, kadapt.Head(r2), rewrappedArc))
	}
}

// mergeBranchBranch is the one case where mask dominance matters: when
// two branches share the same common prefix but disagree on mask, the
// coarser mask (the numerically larger single-bit value, since bits
// are indexed big-endian/MSB-first) is closer to the root, and the
// finer branch is known, by invariant I3, to lie entirely on one of
// its sides — anyElem picks any representative key from it to test.
func mergeBranchBranch[E constraints.Unsigned, V any](f CombineFunc[V], b1, b2 *node[E, V]) *node[E, V] {
	shared, r1, r2 := kadapt.CommonPrefix(b1.commonPrefix, b2.commonPrefix)
	switch {
	case len(r1) == 0 && len(r2) == 0:
		switch {
		case b1.mask == b2.mask:
			return branch(shared, b1.mask, mergeBy(f, b1.left, b2.left), mergeBy(f, b1.right, b2.right))
		case b1.mask > b2.mask:
			rep, _ := anyElem(b2)
			if zeroBit(rep, b1.mask) {
				return branch(shared, b1.mask, mergeBy(f, b1.left, b2), b1.right)
			}
			return branch(shared, b1.mask, b1.left, mergeBy(f, b1.right, b2))
		default:
			rep, _ := anyElem(b1)
			if zeroBit(rep, b2.mask) {
				return branch(shared, b2.mask, mergeBy(f, b1, b2.left), b2.right)
			}
			return branch(shared, b2.mask, b2.left, mergeBy(f, b1, b2.right))
		}
	case len(r1) == 0: // b1's prefix is a prefix of b2's: b1's mask applies within r2
		if zeroBit(kadapt.Head(r2), b1.mask) {
			return branch(shared, b1.mask, mergeBy(f, b1.left, rewrapBranch(b2, r2)), b1.right)
		}
		return branch(shared, b1.mask, b1.left, mergeBy(f, b1.right, rewrapBranch(b2, r2)))
	case len(r2) == 0: // b2's prefix is a prefix of b1's: b2's mask applies within r1
		if zeroBit(kadapt.Head(r1), b2.mask) {
			return branch(shared, b2.mask, mergeBy(f, rewrapBranch(b1, r1), b2.left), b2.right)
		}
		return branch(shared, b2.mask, b2.left, mergeBy(f, rewrapBranch(b1, r1), b2.right))
	default: // the prefixes themselves diverge before either mask is reached
		rewrapped1 := rewrapBranch(b1, r1)
		rewrapped2 := rewrapBranch(b2, r2)
		return arc(shared, (*V)(nil), branchMerge(kadapt.Head(r1), rewrapped1, kadapt.Head(r2), rewrapped2))
	}
}

// MergeBy combines t1 and t2, resolving keys bound in both with f.
func MergeBy[E constraints.Unsigned, V any](f CombineFunc[V], t1, t2 Trie[E, V]) Trie[E, V] {
	return Trie[E, V]{root: mergeBy(f, t1.root, t2.root)}
}

// UnionL combines t1 and t2, keeping t1's value on key collisions.
func UnionL[E constraints.Unsigned, V any](t1, t2 Trie[E, V]) Trie[E, V] {
	return MergeBy(func(x, _ V) (V, bool) { return x, true }, t1, t2)
}

// UnionR combines t1 and t2, keeping t2's value on key collisions.
func UnionR[E constraints.Unsigned, V any](t1, t2 Trie[E, V]) Trie[E, V] {
	return MergeBy(func(_, y V) (V, bool) { return y, true }, t1, t2)
}
