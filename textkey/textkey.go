// Package textkey adapts the generic persistent trie to ordinary Go
// strings by instantiating it at E = uint16, keyed on big-endian UTF-16
// code units — the "16-bit text instantiation" the core trie supports
// but does not itself know how to produce from a string.
package textkey

import (
	"encoding/binary"
	"fmt"

	"github.com/aglyzov/patricia/trie"
	"golang.org/x/text/encoding/unicode"
)

var codec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// ToKey converts s to the big-endian UTF-16 code-unit sequence used as
// the trie's key type, so two strings that differ only in how a
// surrogate pair is notated still compare equal bit-for-bit.
func ToKey(s string) ([]uint16, error) {
	enc := codec.NewEncoder()
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("textkey: encode %q: %w", s, err)
	}
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("textkey: encode %q: odd byte length %d", s, len(b))
	}
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(b[2*i : 2*i+2])
	}
	return out, nil
}

// FromKey decodes a big-endian UTF-16 code-unit sequence back to a Go
// string.
func FromKey(k []uint16) (string, error) {
	b := make([]byte, 2*len(k))
	for i, u := range k {
		binary.BigEndian.PutUint16(b[2*i:2*i+2], u)
	}
	dec := codec.NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("textkey: decode: %w", err)
	}
	return string(out), nil
}

// Trie is a persistent map from Go strings to V, backed by the generic
// trie instantiated on UTF-16 code units. Methods that would otherwise
// need to report an encoding failure panic instead, the same fail-fast
// posture the core takes toward its own internal invariants — well-
// formed UTF-8 input never fails to encode.
type Trie[V any] struct {
	inner trie.Trie[uint16, V]
}

// Empty returns the empty text-keyed trie.
func Empty[V any]() Trie[V] {
	return Trie[V]{inner: trie.Empty[uint16, V]()}
}

func mustKey(s string) []uint16 {
	k, err := ToKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Null reports whether t has no bindings.
func (t Trie[V]) Null() bool { return t.inner.Null() }

// Size counts the bindings in t.
func (t Trie[V]) Size() int { return t.inner.Size() }

// Lookup returns the value bound to s, if any.
func (t Trie[V]) Lookup(s string) (V, bool) { return t.inner.Lookup(mustKey(s)) }

// Member reports whether s is bound in t.
func (t Trie[V]) Member(s string) bool { return t.inner.Member(mustKey(s)) }

// Insert sets the binding at s to v, overriding any prior value.
func (t Trie[V]) Insert(s string, v V) Trie[V] {
	return Trie[V]{inner: t.inner.Insert(mustKey(s), v)}
}

// Delete removes any binding at s.
func (t Trie[V]) Delete(s string) Trie[V] {
	return Trie[V]{inner: t.inner.Delete(mustKey(s))}
}

// Adjust applies f to the value at s, if s is bound.
func (t Trie[V]) Adjust(s string, f func(V) V) Trie[V] {
	return Trie[V]{inner: t.inner.Adjust(mustKey(s), f)}
}

// Submap returns the sub-trie of all bindings whose key has s as a
// prefix.
func (t Trie[V]) Submap(s string) Trie[V] {
	return Trie[V]{inner: t.inner.Submap(mustKey(s))}
}

// DeleteSubmap removes every binding whose key has s as a prefix.
func (t Trie[V]) DeleteSubmap(s string) Trie[V] {
	return Trie[V]{inner: t.inner.DeleteSubmap(mustKey(s))}
}

// Match returns the longest stored key that is a prefix of q, decoded
// back to a string, along with its value and q's unconsumed remainder.
func (t Trie[V]) Match(q string) (matched string, v V, rest string, ok bool) {
	key := mustKey(q)
	mKey, val, restKey, found := t.inner.Match(key)
	if !found {
		return "", v, q, false
	}
	m, err := FromKey(mKey)
	if err != nil {
		panic(err)
	}
	r, err := FromKey(restKey)
	if err != nil {
		panic(err)
	}
	return m, val, r, true
}

// Inner returns the underlying generic trie, for callers that need the
// full operation set (MergeBy, ToList, Validate, Dump, ...) without a
// string-keyed wrapper.
func (t Trie[V]) Inner() trie.Trie[uint16, V] { return t.inner }
