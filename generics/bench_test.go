package generics_test

import (
	"testing"

	"github.com/marcodamonte/traits/generics"
)

// Run:
//
//	go test ./generics -bench=. -benchmem
//
// Largest should report 0 allocs/op: it returns a pointer into the input
// instead of copying the winner out.

var sink *int

func BenchmarkLargest(b *testing.B) {
	items := make([]int, 1024)
	for i := range items {
		items[i] = (i * 7919) % 1024
	}

	b.ResetTimer()
	for range b.N {
		sink, _ = generics.Largest(items)
	}
}

// BenchmarkLargestFunc measures the cost of the indirect comparison call.
func BenchmarkLargestFunc(b *testing.B) {
	items := make([]int, 1024)
	for i := range items {
		items[i] = (i * 7919) % 1024
	}
	greater := func(a, b int) bool { return a > b }

	b.ResetTimer()
	for range b.N {
		sink, _ = generics.LargestFunc(items, greater)
	}
}
