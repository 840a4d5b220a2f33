package trie

import (
	kadapt "github.com/aglyzov/patricia/trie/internal/keyadapter"
	"golang.org/x/exp/constraints"
)

// AlterFunc computes the new binding for a key under AlterBy. hint is
// the caller-supplied value passed through unchanged from AlterBy's
// own argument; old and present describe the binding currently at the
// key, if any. Returning keep == false removes the binding (if any)
// and leaves it absent (if there already was none) — there is no
// separate "insert on miss" vs "no-op on miss" path to choose between,
// so unlike the Haskell source this needs no sentinel value that must
// never be forced: a Go zero value is always safe to construct and
// simply goes unused when f doesn't read it.
type AlterFunc[E constraints.Unsigned, V any] func(key []E, hint V, old V, present bool) (newVal V, keep bool)

// alterBy is the generic single-key rewrite. origKey is the full key
// being altered (constant across the recursion, for handing to f); q
// is the unconsumed remainder of origKey at this node.
func alterBy[E constraints.Unsigned, V any](f AlterFunc[E, V], origKey []E, hint V, q []E, t *node[E, V]) *node[E, V] {
	var zero V

	if t == nil {
		newVal, keep := f(origKey, hint, zero, false)
		if !keep {
			return nil
		}
		return arc(q, &newVal, nil)
	}

	if !t.isBranch {
		shared, qRest, pRest := kadapt.CommonPrefix(q, t.prefix)
		switch {
		case len(pRest) == 0 && len(qRest) == 0:
			var old V
			present := t.value != nil
			if present {
				old = *t.value
			}
			newVal, keep := f(origKey, hint, old, present)
			if !keep {
				return arc(t.prefix, (*V)(nil), t.child)
			}
			return arc(t.prefix, &newVal, t.child)

		case len(pRest) == 0:
			newChild := alterBy(f, origKey, hint, qRest, t.child)
			return arc(t.prefix, t.value, newChild)

		case len(qRest) == 0: // q ends inside the arc's prefix: split
			newVal, keep := f(origKey, hint, zero, false)
			if !keep {
				return t
			}
			return arc(shared, &newVal, arc(pRest, t.value, t.child))

		default: // diverge mid-arc
			newVal, keep := f(origKey, hint, zero, false)
			if !keep {
				return t
			}
			newLeaf := arc(qRest, &newVal, nil)
			existing := arc(pRest, t.value, t.child)
			return arc(shared, (*V)(nil), branchMerge(kadapt.Head(qRest), newLeaf, kadapt.Head(pRest), existing))
		}
	}

	shared, qRest, cpRest := kadapt.CommonPrefix(q, t.commonPrefix)
	switch {
	case len(cpRest) == 0 && len(qRest) == 0: // q lands exactly on the branch's own key
		newVal, keep := f(origKey, hint, zero, false)
		if !keep {
			return t
		}
		return arc(shared, &newVal, rewrapBranch(t, nil))

	case len(cpRest) == 0:
		if zeroBit(kadapt.Head(qRest), t.mask) {
			return branch(t.commonPrefix, t.mask, alterBy(f, origKey, hint, qRest, t.left), t.right)
		}
		return branch(t.commonPrefix, t.mask, t.left, alterBy(f, origKey, hint, qRest, t.right))

	case len(qRest) == 0: // q ends inside the branch's common prefix: split
		newVal, keep := f(origKey, hint, zero, false)
		if !keep {
			return t
		}
		return arc(shared, &newVal, rewrapBranch(t, cpRest))

	default: // diverge mid common-prefix
		newVal, keep := f(origKey, hint, zero, false)
		if !keep {
			return t
		}
		newLeaf := arc(qRest, &newVal, nil)
		existing := rewrapBranch(t, cpRest)
		return arc(shared, (*V)(nil), branchMerge(kadapt.Head(qRest), newLeaf, kadapt.Head(cpRest), existing))
	}
}

// AlterBy replaces the binding at k with f(k, hint, lookup(k, t)).
func (t Trie[E, V]) AlterBy(f AlterFunc[E, V], k []E, hint V) Trie[E, V] {
	return Trie[E, V]{root: alterBy(f, k, hint, k, t.root)}
}

// Insert sets the binding at k to v, overriding any prior value.
func (t Trie[E, V]) Insert(k []E, v V) Trie[E, V] {
	return t.AlterBy(func(_ []E, hint V, _ V, _ bool) (V, bool) { return hint, true }, k, v)
}

// Delete removes any binding at k.
func (t Trie[E, V]) Delete(k []E) Trie[E, V] {
	var zero V
	return t.AlterBy(func(_ []E, _ V, old V, _ bool) (V, bool) { return old, false }, k, zero)
}

// Adjust applies f to the value at k, if k is bound; otherwise t is
// returned unchanged. The hint handed to AlterBy is an unused zero
// value, since adjust's AlterFunc only inspects old/present.
func (t Trie[E, V]) Adjust(k []E, f func(V) V) Trie[E, V] {
	var zero V
	return t.AlterBy(func(_ []E, _ V, old V, present bool) (V, bool) {
		if !present {
			return old, false
		}
		return f(old), true
	}, k, zero)
}
