package goof_test

import (
	"fmt"

	"github.com/appetrosyan/goof"
)

func ExampleEq() {
	value, err := goof.Eq(32, 32)

	fmt.Println(err == nil)
	fmt.Println(value)

	_, err = goof.Eq(32, 33)
	fmt.Println(err)

	// Output:
	// true
	// 32
	// Expected 32, but got 33
}

func ExampleIn() {
	value, err := goof.In(5, 1, 5)

	fmt.Println(err == nil)
	fmt.Println(value)

	_, err = goof.In(1, 1, 5)
	fmt.Println(err)

	// Output:
	// true
	// 5
	// The value 1 is below minimum of range (1, 5]
}

func ExampleKnownEnum() {
	_, err := goof.KnownEnum([]int{1, 2, 4, 6, 7, 20}, 3)

	fmt.Println(err)

	// Output:
	// The value 3 is not known Because it's not one of [1, 2, 4, 6, 7, 20]
}

func ExampleKnown() {
	_, err := goof.Known([]int{1, 2, 4, 6, 7, 20}, 3)

	fmt.Println(err)

	// Output:
	// The value 3 is not known.
}

func ExampleJoin() {
	joined, err := goof.Join([]string{"a", "b", "c"}, ", ")

	fmt.Println(err == nil)
	fmt.Println(joined)

	// Output:
	// true
	// a, b, c
}
