package trie

import "golang.org/x/exp/constraints"

// Validate walks t and reports the first violation of invariants
// I1–I4 it finds, or nil if t is well-formed. It is a diagnostic for
// tests, not part of any hot path — every mutating operation is
// expected to uphold the invariants by construction, via the smart
// constructors in node.go.
func (t Trie[E, V]) Validate() error {
	return validate[E, V](t.root)
}

func validate[E constraints.Unsigned, V any](n *node[E, V]) error {
	if n == nil {
		return nil
	}
	if !n.isBranch {
		// I1: no dead Empty-arc (no value, no child), whatever its prefix.
		if n.value == nil && n.child == nil {
			return &InvariantViolation{msg: "I1 violated: value-less Arc over Empty should be Empty"}
		}
		// I2: a value-less arc's child is never itself an arc — the two
		// would have been fused into one by the arc smart constructor.
		// A value-bearing arc legitimately wraps another arc: it is the
		// only representation of a key that is a strict prefix of a
		// longer key with nothing to branch on (e.g. {"a":0, "ab":1}).
		if n.value == nil && n.child != nil && !n.child.isBranch {
			return &InvariantViolation{msg: "I2 violated: value-less Arc directly wraps another Arc"}
		}
		return validate[E, V](n.child)
	}
	// I4: both children of a branch are non-nil.
	if n.left == nil || n.right == nil {
		return &InvariantViolation{msg: "I4 violated: Branch has a nil child"}
	}
	// I3: left/right are correctly distinguished by mask against any
	// representative element drawn from each side.
	if lHead, ok := anyElem(n.left); ok && !zeroBit(lHead, n.mask) {
		return &InvariantViolation{msg: "I3 violated: left child has mask bit set"}
	}
	if rHead, ok := anyElem(n.right); ok && zeroBit(rHead, n.mask) {
		return &InvariantViolation{msg: "I3 violated: right child has mask bit clear"}
	}
	if err := validate[E, V](n.left); err != nil {
		return err
	}
	return validate[E, V](n.right)
}
