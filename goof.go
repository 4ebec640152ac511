package goof

import (
	"cmp"
	"slices"
)

// Eq checks that actual equals expected.
//
// On success it echoes back the expected value, not the actual one; the two
// compare equal, but callers should not assume the returned value is the one
// they passed as actual. On failure it returns the zero value of T and a
// [Mismatch] capturing both values exactly as supplied.
func Eq[T comparable](expected, actual T) (T, error) {
	if actual == expected {
		return expected, nil
	}

	var zero T

	return zero, Mismatch[T]{Expected: expected, Actual: actual}
}

// In checks that value lies inside the interval (start, end]: the lower
// bound is exclusive and the upper bound is inclusive. A value equal to
// start is rejected; a value equal to end is accepted. This is a deliberate
// half-open-on-the-left convention, not the usual inclusive-start/
// exclusive-end one.
//
// On success the value is returned unchanged. On failure it returns the zero
// value of T and an [OutOfRange] capturing the full bound pair.
func In[T cmp.Ordered](value, start, end T) (T, error) {
	if start < value && value <= end {
		return value, nil
	}

	var zero T

	return zero, OutOfRange[T]{Start: start, End: end, Value: value}
}

// KnownEnum checks that value appears in knowns, comparing with == against
// each element in order. On failure the [UnknownValue] retains knowns (as a
// non-owning view) so the error message can list the accepted values; a nil
// knowns therefore yields an error that renders without the list.
//
// An empty knowns rejects every value.
func KnownEnum[T comparable](knowns []T, value T) (T, error) {
	if slices.Contains(knowns, value) {
		return value, nil
	}

	var zero T

	return zero, UnknownValue[T]{Knowns: knowns, Value: value}
}

// Known checks membership with the same predicate as [KnownEnum], but the
// error never retains the reference list. Use it when the list should not
// leak into the error's lifetime or message.
func Known[T comparable](knowns []T, value T) (T, error) {
	if slices.Contains(knowns, value) {
		return value, nil
	}

	var zero T

	return zero, UnknownValue[T]{Value: value}
}
