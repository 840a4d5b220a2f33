package trie

import "golang.org/x/exp/constraints"

// Item is one key/value binding, as returned by ToList and consumed by
// FromList.
type Item[E constraints.Unsigned, V any] struct {
	Key   []E
	Value V
}

// FromList builds a trie from xs as a right-fold of Insert, so on a
// key collision the earlier entry in xs wins and shadows any later
// one — inserting xs back-to-front means each later Insert for a
// duplicate key is overwritten by an earlier-in-xs one applied after it.
func FromList[E constraints.Unsigned, V any](xs []Item[E, V]) Trie[E, V] {
	t := Empty[E, V]()
	for i := len(xs) - 1; i >= 0; i-- {
		t = t.Insert(xs[i].Key, xs[i].Value)
	}
	return t
}

// ToList returns every binding in t, in big-endian key order.
func (t Trie[E, V]) ToList() []Item[E, V] {
	out := make([]Item[E, V], 0, t.Size())
	walk(t.root, func(k []E, v V) {
		out = append(out, Item[E, V]{Key: k, Value: v})
	})
	return out
}

// Keys returns every bound key in t, in big-endian key order.
func (t Trie[E, V]) Keys() [][]E {
	out := make([][]E, 0, t.Size())
	walk(t.root, func(k []E, _ V) {
		out = append(out, k)
	})
	return out
}

// Elems returns every value in t, ordered by its key in big-endian
// order.
func (t Trie[E, V]) Elems() []V {
	out := make([]V, 0, t.Size())
	walk(t.root, func(_ []E, v V) {
		out = append(out, v)
	})
	return out
}
