package assert

import (
	"cmp"
	"context"

	"github.com/appetrosyan/goof"
)

// errorKVPairs is the number of elements prepended for the cause's own
// key-value context.
const errorKVPairs = 4

// Eq asserts that actual equals expected. On success it echoes the expected
// value, matching goof.Eq. On failure the returned error wraps a
// goof.Mismatch and carries both values in its details.
func Eq[T comparable](ctx context.Context, asserter *Asserter, expected, actual T, msg string, kv ...any) (T, error) {
	value, err := goof.Eq(expected, actual)
	if err == nil {
		return value, nil
	}

	kvWithValues := make([]any, 0, len(kv)+errorKVPairs)
	kvWithValues = append(kvWithValues, "expected", expected)
	kvWithValues = append(kvWithValues, "actual", actual)
	kvWithValues = append(kvWithValues, kv...)

	var zero T

	return zero, asserter.fail(ctx, "Eq", msg, err, kvWithValues...)
}

// In asserts that value lies inside the interval (start, end]: exclusive
// lower bound, inclusive upper bound, matching goof.In. On failure the
// returned error wraps a goof.OutOfRange.
func In[T cmp.Ordered](ctx context.Context, asserter *Asserter, value, start, end T, msg string, kv ...any) (T, error) {
	accepted, err := goof.In(value, start, end)
	if err == nil {
		return accepted, nil
	}

	kvWithValues := make([]any, 0, len(kv)+errorKVPairs)
	kvWithValues = append(kvWithValues, "value", value)
	kvWithValues = append(kvWithValues, "range", []T{start, end})
	kvWithValues = append(kvWithValues, kv...)

	var zero T

	return zero, asserter.fail(ctx, "In", msg, err, kvWithValues...)
}

// OneOf asserts that value appears in knowns, matching goof.KnownEnum: the
// underlying goof.UnknownValue retains knowns for message rendering. On
// failure the returned error wraps it.
func OneOf[T comparable](ctx context.Context, asserter *Asserter, knowns []T, value T, msg string, kv ...any) (T, error) {
	accepted, err := goof.KnownEnum(knowns, value)
	if err == nil {
		return accepted, nil
	}

	kvWithValues := make([]any, 0, len(kv)+errorKVPairs)
	kvWithValues = append(kvWithValues, "value", value)
	kvWithValues = append(kvWithValues, "knowns", knowns)
	kvWithValues = append(kvWithValues, kv...)

	var zero T

	return zero, asserter.fail(ctx, "OneOf", msg, err, kvWithValues...)
}
