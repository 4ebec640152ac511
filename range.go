package goof

import (
	"cmp"
	"fmt"
)

// OutOfRange reports a value rejected by [In].
//
// Start is the exclusive lower bound and End the inclusive upper bound:
// accepted values satisfy Start < value <= End. The bound pair is captured in
// full alongside the offending value.
//
// Invariant: Value lies outside the accepted interval, enforced at
// construction time by [In]. Hand-building an OutOfRange whose Value sits
// strictly inside (Start, End) breaks that invariant, and Error panics on it
// rather than inventing an explanation for a value that was never rejected.
type OutOfRange[T cmp.Ordered] struct {
	// Start is the exclusive lower bound of the accepted interval.
	Start T

	// End is the inclusive upper bound of the accepted interval.
	End T

	// Value is the rejected value.
	Value T
}

// Error returns the human-readable view of the rejection: an "exceeds
// maximum" message when Value is at or above End, a "below minimum" message
// when Value is at or below the excluded Start.
func (e OutOfRange[T]) Error() string {
	switch {
	case e.Value >= e.End:
		return fmt.Sprintf("The value %v exceeds maximum of range (%v, %v]", e.Value, e.Start, e.End)
	case e.Value <= e.Start:
		return fmt.Sprintf("The value %v is below minimum of range (%v, %v]", e.Value, e.Start, e.End)
	default:
		// Value inside (Start, End) means this error was hand-built in
		// violation of the type invariant.
		panic(fmt.Sprintf("goof: OutOfRange invariant violated: %v lies inside (%v, %v]", e.Value, e.Start, e.End))
	}
}
