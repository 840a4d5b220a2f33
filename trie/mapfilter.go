package trie

import "golang.org/x/exp/constraints"

// mapBy rewrites every binding's value through f, dropping it when f
// returns keep == false. Unlike alterBy, it necessarily visits every
// node, so there is no shortcut analogous to lookupBy_'s continuations.
func mapBy[E constraints.Unsigned, V any](f func(key []E, v V) (V, bool), prefix []E, n *node[E, V]) *node[E, V] {
	if n == nil {
		return nil
	}
	if !n.isBranch {
		full := concatKey(prefix, n.prefix)
		newChild := mapBy(f, full, n.child)
		if n.value == nil {
			return arc(n.prefix, (*V)(nil), newChild)
		}
		newVal, keep := f(full, *n.value)
		if !keep {
			return arc(n.prefix, (*V)(nil), newChild)
		}
		return arc(n.prefix, &newVal, newChild)
	}
	full := concatKey(prefix, n.commonPrefix)
	return branch(n.commonPrefix, n.mask, mapBy(f, full, n.left), mapBy(f, full, n.right))
}

// MapBy rewrites every value in t through f, dropping bindings where f
// returns keep == false.
func (t Trie[E, V]) MapBy(f func(k []E, v V) (V, bool)) Trie[E, V] {
	return Trie[E, V]{root: mapBy(f, nil, t.root)}
}

// FilterMap is MapBy under another name, matching the spec's naming of
// the same operation in its filtering role.
func (t Trie[E, V]) FilterMap(f func(k []E, v V) (V, bool)) Trie[E, V] {
	return t.MapBy(f)
}
