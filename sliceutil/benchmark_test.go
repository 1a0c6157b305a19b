package sliceutil_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"cookbook/sliceutil"
)

const benchSize = 1_000_000

func getBenchData() []int {
	r := rand.New(rand.NewPCG(7, 11))
	data := make([]int, benchSize)
	for i := range data {
		data[i] = r.Int()
	}
	return data
}

// BenchmarkLargest_Heap benchmarks the bounded-heap selection.
// Expectation: O(len·log n) with a single allocation of n nodes.
func BenchmarkLargest_Heap(b *testing.B) {
	data := getBenchData()
	b.ResetTimer()
	for b.Loop() {
		_ = sliceutil.Largest(data, 10)
	}
}

// BenchmarkLargest_SortTruncate benchmarks the naive sort-then-truncate approach.
// Expectation: O(len·log len) plus a full copy of the input.
func BenchmarkLargest_SortTruncate(b *testing.B) {
	data := getBenchData()
	b.ResetTimer()
	for b.Loop() {
		sorted := slices.Clone(data)
		slices.SortStableFunc(sorted, func(x, y int) int { return y - x })
		_ = sorted[:10]
	}
}

// BenchmarkUnique benchmarks in-place order-preserving deduplication.
func BenchmarkUnique(b *testing.B) {
	data := getBenchData()
	for i := range data {
		data[i] %= 1000
	}
	scratch := make([]int, len(data))
	for b.Loop() {
		copy(scratch, data)
		_ = sliceutil.Unique(scratch)
	}
}
