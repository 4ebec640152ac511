//go:build unit

package goof

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type status int

func (s status) String() string {
	if s == 0 {
		return "pending"
	}

	return "approved"
}

func TestJoin_SingleElement(t *testing.T) {
	t.Parallel()

	joined, err := Join([]int{42}, ", ")
	require.NoError(t, err)
	require.Equal(t, "42", joined)

	// A lone element renders without any separator, whatever it is.
	joined, err = Join([]int{42}, "|||")
	require.NoError(t, err)
	require.Equal(t, "42", joined)
}

func TestJoin_MultipleElements(t *testing.T) {
	t.Parallel()

	joined, err := Join([]string{"x", "y", "z"}, ",")
	require.NoError(t, err)
	require.Equal(t, "x,y,z", joined)
}

func TestJoin_NoTrailingSeparator(t *testing.T) {
	t.Parallel()

	joined, err := Join([]int{1, 2, 4, 6, 7, 20}, ", ")
	require.NoError(t, err)
	require.Equal(t, "1, 2, 4, 6, 7, 20", joined)
}

func TestJoin_EmptySequence(t *testing.T) {
	t.Parallel()

	joined, err := Join([]int{}, ", ")
	require.ErrorIs(t, err, ErrEmptyItems)
	require.Empty(t, joined)

	joined, err = Join[string](nil, ", ")
	require.ErrorIs(t, err, ErrEmptyItems)
	require.Empty(t, joined)
}

func TestJoin_UsesElementStringer(t *testing.T) {
	t.Parallel()

	joined, err := Join([]status{0, 1}, " -> ")
	require.NoError(t, err)
	require.Equal(t, "pending -> approved", joined)
}
