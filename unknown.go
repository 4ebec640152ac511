package goof

import "fmt"

// UnknownValue reports a value absent from a reference list of known values.
//
// Knowns is a non-owning view over the caller's slice: the caller must keep
// the slice alive and unmodified for as long as the error value is in use.
// A nil Knowns means no reference list was attached ([Known] always omits
// it); an empty non-nil Knowns means a list was attached and has no members.
type UnknownValue[T comparable] struct {
	// Knowns is the reference list the value was checked against, or nil
	// when the caller declined to attach it.
	Knowns []T

	// Value is the value that was not found.
	Value T
}

// Error returns the human-readable view of the failure. When a reference
// list is attached, its members are joined into the message so the reader
// can see what would have been accepted.
func (e UnknownValue[T]) Error() string {
	if e.Knowns == nil {
		return fmt.Sprintf("The value %v is not known.", e.Value)
	}

	joined, err := Join(e.Knowns, ", ")
	if err != nil {
		// Only an empty attached list reaches here; show it as such.
		joined = ""
	}

	return fmt.Sprintf("The value %v is not known Because it's not one of [%s]", e.Value, joined)
}
