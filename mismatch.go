package goof

import "fmt"

// Mismatch reports that a value was one thing instead of another.
//
// It is constructed by [Eq] only when the two values differ, so a Mismatch
// never describes a pair of equal values. Both fields hold the values exactly
// as they were supplied to the failed check.
type Mismatch[T comparable] struct {
	// Expected is the value the caller required.
	Expected T

	// Actual is the value the caller got.
	Actual T
}

// Error returns the human-readable view of the disagreement.
func (e Mismatch[T]) Error() string {
	return fmt.Sprintf("Expected %v, but got %v", e.Expected, e.Actual)
}
