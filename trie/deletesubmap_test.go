package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteSubmap(t *testing.T) {
	t.Parallel()

	tr := Empty[uint8, int]()
	for i, k := range []string{"app", "apple", "application", "apply", "banana"} {
		tr = tr.Insert([]byte(k), i)
	}

	pruned := tr.DeleteSubmap([]byte("app"))
	require.NoError(t, pruned.Validate())
	assert.Equal(t, 1, pruned.Size())

	_, ok := pruned.Lookup([]byte("banana"))
	assert.True(t, ok)
	for _, k := range []string{"app", "apple", "application", "apply"} {
		_, ok := pruned.Lookup([]byte(k))
		assert.False(t, ok, "key %q should have been pruned", k)
	}

	// original untouched.
	assert.Equal(t, 5, tr.Size())
}

func TestDeleteSubmap_NoMatch(t *testing.T) {
	t.Parallel()

	tr := Empty[uint8, int]().Insert([]byte("x"), 1)
	unchanged := tr.DeleteSubmap([]byte("zzz"))
	require.NoError(t, unchanged.Validate())
	assert.Equal(t, 1, unchanged.Size())
}

func TestDeleteSubmap_WholeTrie(t *testing.T) {
	t.Parallel()

	tr := Empty[uint8, int]()
	for i, k := range []string{"a", "ab", "abc"} {
		tr = tr.Insert([]byte(k), i)
	}

	pruned := tr.DeleteSubmap([]byte(""))
	assert.True(t, pruned.Null())
}
