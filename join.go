package goof

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyItems is returned when attempting to join an empty sequence.
var ErrEmptyItems = errors.New("cannot join an empty sequence")

// Join renders items as a single separator-delimited string: the first
// element bare, every later element prefixed by separator, and no trailing
// separator.
//
// Elements are rendered with fmt's default %v formatting (honoring
// fmt.Stringer), which cannot fail, so ErrEmptyItems is the only error Join
// returns.
func Join[T any](items []T, separator string) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyItems
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "%v", items[0])

	for _, item := range items[1:] {
		sb.WriteString(separator)
		fmt.Fprintf(&sb, "%v", item)
	}

	return sb.String(), nil
}
