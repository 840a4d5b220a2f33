package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_EmptyIsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Empty[uint8, int]().Validate())
}

func TestValidate_CatchesBrokenMaskDiscipline(t *testing.T) {
	t.Parallel()

	// hand-build a Branch whose left child disagrees with its own mask,
	// bypassing the smart constructors to exercise Validate directly.
	leftVal := 1
	rightVal := 2
	broken := &node[uint8, int]{
		isBranch: true,
		mask:     0b0001_0000,
		left:     &node[uint8, int]{prefix: []byte{0b0001_0000}, value: &leftVal},
		right:    &node[uint8, int]{prefix: []byte{0b0000_0000}, value: &rightVal},
	}
	tr := Trie[uint8, int]{root: broken}

	err := tr.Validate()
	require.Error(t, err)
	var iv *InvariantViolation
	assert.ErrorAs(t, err, &iv)
}

func TestValidate_RandomlyBuiltTriesAreValid(t *testing.T) {
	t.Parallel()

	keys := randomKeys(150)
	tr := Empty[uint8, int]()
	for i, k := range keys {
		tr = tr.Insert(k, i)
		require.NoError(t, tr.Validate())
	}
}
