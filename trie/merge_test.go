package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionL_UnionR(t *testing.T) {
	t.Parallel()

	t1 := Empty[uint8, int]()
	t1 = t1.Insert([]byte("a"), 1)
	t1 = t1.Insert([]byte("shared"), 100)

	t2 := Empty[uint8, int]()
	t2 = t2.Insert([]byte("b"), 2)
	t2 = t2.Insert([]byte("shared"), 200)

	left := UnionL(t1, t2)
	require.NoError(t, left.Validate())
	assert.Equal(t, 3, left.Size())
	v, _ := left.Lookup([]byte("shared"))
	assert.Equal(t, 100, v)

	right := UnionR(t1, t2)
	require.NoError(t, right.Validate())
	assert.Equal(t, 3, right.Size())
	v, _ = right.Lookup([]byte("shared"))
	assert.Equal(t, 200, v)
}

func TestMergeBy_CombineFunc(t *testing.T) {
	t.Parallel()

	t1 := Empty[uint8, int]().Insert([]byte("k"), 3)
	t2 := Empty[uint8, int]().Insert([]byte("k"), 4)

	sum := MergeBy(func(x, y int) (int, bool) { return x + y, true }, t1, t2)
	require.NoError(t, sum.Validate())
	v, ok := sum.Lookup([]byte("k"))
	require.True(t, ok)
	assert.Equal(t, 7, v)

	dropped := MergeBy(func(_, _ int) (int, bool) { return 0, false }, t1, t2)
	require.NoError(t, dropped.Validate())
	assert.Equal(t, 0, dropped.Size())
}

func TestMergeBy_DisjointAndOverlapping(t *testing.T) {
	t.Parallel()

	for _, tc := range []*struct {
		name   string
		keys1  []string
		keys2  []string
		expLen int
	}{
		{"disjoint", []string{"a", "b", "c"}, []string{"x", "y", "z"}, 6},
		{"fully-overlapping", []string{"a", "b"}, []string{"a", "b"}, 2},
		{"nested-prefixes", []string{"a", "ab", "abc"}, []string{"ab", "abcd"}, 4},
		{"one-empty", []string{}, []string{"a", "b"}, 2},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			t1 := Empty[uint8, int]()
			for i, k := range tc.keys1 {
				t1 = t1.Insert([]byte(k), i)
			}
			t2 := Empty[uint8, int]()
			for i, k := range tc.keys2 {
				t2 = t2.Insert([]byte(k), i+1000)
			}

			merged := UnionR(t1, t2)
			require.NoError(t, merged.Validate())
			assert.Equal(t, tc.expLen, merged.Size())
		})
	}
}

func TestMergeBy_Associativity(t *testing.T) {
	t.Parallel()

	mk := func(ks ...string) Trie[uint8, int] {
		tr := Empty[uint8, int]()
		for i, k := range ks {
			tr = tr.Insert([]byte(k), i)
		}
		return tr
	}

	a := mk("a", "ab")
	b := mk("b", "abc")
	c := mk("c", "ab")

	left := UnionL(UnionL(a, b), c)
	right := UnionL(a, UnionL(b, c))

	require.NoError(t, left.Validate())
	require.NoError(t, right.Validate())
	assert.ElementsMatch(t, keyStrings(left), keyStrings(right))
}

func keyStrings[V any](t Trie[uint8, V]) []string {
	ks := t.Keys()
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = string(k)
	}
	return out
}
