//go:build unit

package goof

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// --- Mismatch rendering ---

func TestMismatch_Display(t *testing.T) {
	t.Parallel()

	err := Mismatch[int]{Expected: 32, Actual: 33}
	require.Equal(t, "Expected 32, but got 33", err.Error())
}

func TestMismatch_DebugView(t *testing.T) {
	t.Parallel()

	// %v and %+v route through Error; %#v enumerates the fields verbatim.
	err := Mismatch[int]{Expected: 32, Actual: 33}
	require.Equal(t, "goof.Mismatch[int]{Expected:32, Actual:33}", fmt.Sprintf("%#v", err))
}

// --- OutOfRange rendering ---

func TestOutOfRange_ExceedsMaximum(t *testing.T) {
	t.Parallel()

	_, err := In(6, 1, 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "exceeds maximum")
	require.Contains(t, err.Error(), "(1, 5]")
}

func TestOutOfRange_BelowMinimum(t *testing.T) {
	t.Parallel()

	_, err := In(0, 1, 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "below minimum")
}

func TestOutOfRange_ExcludedLowerBoundRendersBelowMinimum(t *testing.T) {
	t.Parallel()

	_, err := In(1, 1, 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "below minimum")
}

func TestOutOfRange_InsideIntervalPanics(t *testing.T) {
	t.Parallel()

	// Hand-built in violation of the type invariant: 3 was never rejected
	// by (1, 5].
	err := OutOfRange[int]{Start: 1, End: 5, Value: 3}
	require.Panics(t, func() { _ = err.Error() })
}

// --- UnknownValue rendering ---

func TestUnknownValue_DisplayWithKnowns(t *testing.T) {
	t.Parallel()

	_, err := KnownEnum([]int{1, 2, 4, 6, 7, 20}, 3)
	require.Error(t, err)
	require.Equal(t, "The value 3 is not known Because it's not one of [1, 2, 4, 6, 7, 20]", err.Error())
}

func TestUnknownValue_DisplayWithoutKnowns(t *testing.T) {
	t.Parallel()

	_, err := Known([]int{1, 2, 4, 6, 7, 20}, 3)
	require.Error(t, err)
	require.Equal(t, "The value 3 is not known.", err.Error())
}

func TestUnknownValue_DisplayWithEmptyKnowns(t *testing.T) {
	t.Parallel()

	_, err := KnownEnum([]string{}, "other")
	require.Error(t, err)
	require.Equal(t, "The value other is not known Because it's not one of []", err.Error())
}

func TestUnknownValue_DebugView(t *testing.T) {
	t.Parallel()

	err := UnknownValue[int]{Knowns: []int{1, 2}, Value: 3}
	require.Equal(t, "goof.UnknownValue[int]{Knowns:[]int{1, 2}, Value:3}", fmt.Sprintf("%#v", err))
}

// --- propagation ---

func TestErrors_SurviveWrapping(t *testing.T) {
	t.Parallel()

	_, err := Eq("approved", "rejected")
	wrapped := fmt.Errorf("validate status: %w", err)

	var mismatch Mismatch[string]

	require.ErrorAs(t, wrapped, &mismatch)
	require.Equal(t, "approved", mismatch.Expected)
}
