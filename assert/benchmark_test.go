//go:build unit

package assert

import (
	"context"
	"testing"
)

// Benchmarks verify assertions are lightweight enough for always-on usage.
// Target: the hot path (check passes) stays allocation-free.

func BenchmarkEq_Pass(b *testing.B) {
	asserter := New(context.Background(), nil, "", "")
	for i := 0; i < b.N; i++ {
		_, _ = Eq(context.Background(), asserter, 42, 42, "benchmark test")
	}
}

func BenchmarkIn_Pass(b *testing.B) {
	asserter := New(context.Background(), nil, "", "")
	for i := 0; i < b.N; i++ {
		_, _ = In(context.Background(), asserter, 3, 1, 5, "benchmark test")
	}
}

func BenchmarkOneOf_Pass(b *testing.B) {
	asserter := New(context.Background(), nil, "", "")
	knowns := []int{1, 2, 4, 6, 7, 20}

	for i := 0; i < b.N; i++ {
		_, _ = OneOf(context.Background(), asserter, knowns, 7, "benchmark test")
	}
}

func BenchmarkThat_True(b *testing.B) {
	asserter := New(context.Background(), nil, "", "")
	for i := 0; i < b.N; i++ {
		_ = asserter.That(context.Background(), true, "benchmark test")
	}
}

func BenchmarkThat_TrueWithContext(b *testing.B) {
	asserter := New(context.Background(), nil, "", "")
	for i := 0; i < b.N; i++ {
		_ = asserter.That(
			context.Background(),
			true,
			"benchmark test",
			"key1",
			"value1",
			"key2",
			42,
		)
	}
}
