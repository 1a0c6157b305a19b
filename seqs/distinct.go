package seqs

import "iter"

// Distinct yields each element the first time it is seen, preserving order.
// Memory usage is proportional to the number of unique elements.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return DistinctBy(seq, func(v T) T { return v })
}

// DistinctBy is like Distinct but two elements are duplicates when key maps
// them to the same value. Useful for elements that are not comparable.
//
//	seqs.DistinctBy(slices.Values(points), func(p map[string]int) [2]int {
//		return [2]int{p["x"], p["y"]}
//	})
func DistinctBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}
