// Package trie implements a persistent, immutable associative map keyed
// by sequences of a fixed-width unsigned integer element type, as a
// big-endian Patricia trie with compressed edge labels:
//
//	[arc "a"] -- [branch mask=0x10] --+-- [arc "bc" = 2] -- [arc "de" = 3]
//	                                  `-- [branch mask=0x01] --+-- [arc "x" = 4]
//	                                                           `-- [arc "y" = 5]
//
// Every public operation takes a Trie and returns a new Trie (or a
// derived value); no node is ever mutated after construction. Old
// roots stay valid after any "modification": structural sharing means
// an update allocates only the nodes on the spine from the root to the
// changed key, and off-spine subtries are shared between old and new
// roots.
package trie

import "golang.org/x/exp/constraints"

// Trie is a persistent map from []E keys to V values. The zero value
// is the empty trie, ready to use.
type Trie[E constraints.Unsigned, V any] struct {
	root *node[E, V]
}

// Empty returns the empty trie.
func Empty[E constraints.Unsigned, V any]() Trie[E, V] {
	return Trie[E, V]{}
}

// Null reports whether t has no bindings.
func (t Trie[E, V]) Null() bool {
	return t.root == nil
}

// Singleton returns the trie {k: v}.
func Singleton[E constraints.Unsigned, V any](k []E, v V) Trie[E, V] {
	return Trie[E, V]{root: arc(k, &v, nil)}
}

// Size counts the bindings in t. It is a fold, not a cached field:
// caching it precisely across mergeBy would require subtractive
// bookkeeping on every f-returns-absent collision, for no benefit to
// the operations that matter (lookup, insert, delete, match).
func (t Trie[E, V]) Size() int {
	n := 0
	walk(t.root, func([]E, V) {
		n++
	})
	return n
}

// walk visits every binding in n in big-endian key order, without
// materialising a []Item slice. It underlies Size, ToList, Keys and
// Elems.
func walk[E constraints.Unsigned, V any](n *node[E, V], visit func(key []E, v V)) {
	walkPrefixed[E, V](nil, n, visit)
}

func walkPrefixed[E constraints.Unsigned, V any](prefix []E, n *node[E, V], visit func(key []E, v V)) {
	if n == nil {
		return
	}
	if !n.isBranch {
		full := concatKey(prefix, n.prefix)
		if n.value != nil {
			visit(full, *n.value)
		}
		walkPrefixed(full, n.child, visit)
		return
	}
	full := concatKey(prefix, n.commonPrefix)
	walkPrefixed(full, n.left, visit)
	walkPrefixed(full, n.right, visit)
}

func concatKey[E constraints.Unsigned](a, b []E) []E {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}
	out := make([]E, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}
