package sliceutil

import "slices"

// Contains reports whether target is in the collection.
func Contains[T comparable](collection []T, target T) bool {
	return slices.Contains(collection, target)
}

// ContainsFunc reports whether any element satisfies the predicate.
// Useful for non-comparable types or custom matching logic.
func ContainsFunc[T any](collection []T, predicate func(T) bool) bool {
	return FindIndex(collection, predicate) >= 0
}

// Find returns the first element that satisfies the predicate.
// It returns the zero value and false when none does.
func Find[T any](collection []T, predicate func(T) bool) (T, bool) {
	if i := FindIndex(collection, predicate); i >= 0 {
		return collection[i], true
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element that satisfies the
// predicate, or -1.
func FindIndex[T any](collection []T, predicate func(T) bool) int {
	if len(collection) == 0 {
		return -1
	}
	_ = collection[len(collection)-1] // BCE hint
	for i, item := range collection {
		if predicate(item) {
			return i
		}
	}
	return -1
}
