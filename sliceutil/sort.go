package sliceutil

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// By returns a comparison function ordering elements by key, ascending.
func By[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// ByDesc is like By but descending.
func ByDesc[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	}
}

// Then chains comparisons: later ones only break ties left by earlier ones.
//
//	SortedBy(rows, Then(By(lastName), By(firstName)))
func Then[T any](cmps ...func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		for _, c := range cmps {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// SortedBy returns a stably sorted copy of items.
func SortedBy[T any](items []T, cmp func(a, b T) int) []T {
	res := slices.Clone(items)
	slices.SortStableFunc(res, cmp)
	return res
}

// MinBy returns the first element with the smallest key.
// It returns false if items is empty.
func MinBy[T any, K cmp.Ordered](items []T, key func(T) K) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return lo.MinBy(items, func(a, b T) bool { return key(a) < key(b) }), true
}

// MaxBy returns the first element with the largest key.
// It returns false if items is empty.
func MaxBy[T any, K cmp.Ordered](items []T, key func(T) K) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return lo.MaxBy(items, func(a, b T) bool { return key(a) > key(b) }), true
}
