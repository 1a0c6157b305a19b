package seqs

import (
	"cmp"
	"iter"
)

type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Sum adds up the elements. Combined with Map it fuses a transform and a
// reduction into a single pass without an intermediate slice:
//
//	seqs.Sum(seqs.Map(slices.Values(nums), func(x int) int { return x * x }))
func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

func Min[T cmp.Ordered](seq iter.Seq[T]) (T, bool) {
	return MinBy(seq, func(v T) T { return v })
}

func Max[T cmp.Ordered](seq iter.Seq[T]) (T, bool) {
	return MaxBy(seq, func(v T) T { return v })
}

// MinBy returns the first element with the smallest key.
func MinBy[T any, K cmp.Ordered](seq iter.Seq[T], key func(T) K) (T, bool) {
	return extremeBy(seq, key, -1)
}

// MaxBy returns the first element with the largest key.
func MaxBy[T any, K cmp.Ordered](seq iter.Seq[T], key func(T) K) (T, bool) {
	return extremeBy(seq, key, 1)
}

func extremeBy[T any, K cmp.Ordered](seq iter.Seq[T], key func(T) K, want int) (T, bool) {
	var (
		best    T
		bestKey K
		found   bool
	)
	for v := range seq {
		k := key(v)
		if !found || cmp.Compare(k, bestKey) == want {
			best, bestKey, found = v, k, true
		}
	}
	return best, found
}
