package textkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToKey_FromKey_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "hello", "héllo", "日本語", "emoji-👍-yes"} {
		s := s
		t.Run(s, func(t *testing.T) {
			t.Parallel()

			k, err := ToKey(s)
			require.NoError(t, err)

			back, err := FromKey(k)
			require.NoError(t, err)
			assert.Equal(t, s, back)
		})
	}
}

func TestTrie_InsertLookupDelete(t *testing.T) {
	t.Parallel()

	tr := Empty[int]()
	tr = tr.Insert("hello", 1)
	tr = tr.Insert("héllo", 2)
	tr = tr.Insert("日本語", 3)

	assert.Equal(t, 3, tr.Size())

	v, ok := tr.Lookup("hello")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = tr.Lookup("日本語")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	tr2 := tr.Delete("hello")
	assert.Equal(t, 2, tr2.Size())
	assert.False(t, tr2.Member("hello"))
	assert.True(t, tr.Member("hello")) // persistence
}

func TestTrie_Match(t *testing.T) {
	t.Parallel()

	tr := Empty[int]()
	tr = tr.Insert("app", 1)
	tr = tr.Insert("apple", 2)

	matched, v, rest, ok := tr.Match("applet")
	require.True(t, ok)
	assert.Equal(t, "apple", matched)
	assert.Equal(t, 2, v)
	assert.Equal(t, "t", rest)
}

func TestTrie_Submap(t *testing.T) {
	t.Parallel()

	tr := Empty[int]()
	tr = tr.Insert("app", 1)
	tr = tr.Insert("apple", 2)
	tr = tr.Insert("banana", 3)

	sub := tr.Submap("app")
	assert.Equal(t, 2, sub.Size())
}
