package sliceutil

func identity[T any](v T) T { return v }

// Intersection returns the elements of a that are also in b, deduplicated,
// in the order they first appear in a.
func Intersection[T comparable](a, b []T) []T {
	return IntersectionBy(a, b, identity[T])
}

// IntersectionBy is like Intersection but compares the keys produced by
// keySelector. Useful for non-comparable types.
func IntersectionBy[T any, K comparable](a, b []T, keySelector func(T) K) []T {
	if len(a) == 0 || len(b) == 0 {
		return []T{}
	}
	inB := keySet(b, keySelector)

	result := make([]T, 0, min(len(a), len(b)))
	for _, v := range a {
		k := keySelector(v)
		if _, found := inB[k]; found {
			result = append(result, v)
			delete(inB, k) // ensure uniqueness in result
		}
	}
	return result
}

// Difference returns the elements of a that are not in b (a - b),
// deduplicated, in the order they first appear in a.
func Difference[T comparable](a, b []T) []T {
	return DifferenceBy(a, b, identity[T])
}

// DifferenceBy is like Difference but compares the keys produced by keySelector.
func DifferenceBy[T any, K comparable](a, b []T, keySelector func(T) K) []T {
	if len(a) == 0 {
		return []T{}
	}
	// b's keys plus everything already emitted; len(a)+len(b) is an upper bound.
	exclude := make(map[K]struct{}, len(a)+len(b))
	for _, v := range b {
		exclude[keySelector(v)] = struct{}{}
	}

	result := make([]T, 0, len(a))
	for _, v := range a {
		k := keySelector(v)
		if _, exists := exclude[k]; !exists {
			result = append(result, v)
			exclude[k] = struct{}{}
		}
	}
	return result
}

// SymmetricDifference returns the elements that are in either a or b but
// not in both: first those of a, then those of b.
func SymmetricDifference[T comparable](a, b []T) []T {
	return SymmetricDifferenceBy(a, b, identity[T])
}

// SymmetricDifferenceBy is like SymmetricDifference but compares the keys
// produced by keySelector.
func SymmetricDifferenceBy[T any, K comparable](a, b []T, keySelector func(T) K) []T {
	if len(a) == 0 && len(b) == 0 {
		return []T{}
	}

	// true: only seen in b so far, still a candidate.
	// false: seen in a, or already emitted.
	state := make(map[K]bool, len(a)+len(b))
	for _, v := range b {
		state[keySelector(v)] = true
	}

	result := make([]T, 0, len(a)+len(b))
	for _, v := range a {
		k := keySelector(v)
		if _, ok := state[k]; !ok {
			result = append(result, v)
		}
		state[k] = false
	}
	for _, v := range b {
		k := keySelector(v)
		if state[k] {
			result = append(result, v)
			state[k] = false
		}
	}
	return result
}

// Union returns a followed by b with duplicates removed.
func Union[T comparable](a, b []T) []T {
	return UnionBy(a, b, identity[T])
}

// UnionBy is like Union but compares the keys produced by keySelector.
func UnionBy[T any, K comparable](a, b []T, keySelector func(T) K) []T {
	result := make([]T, 0, len(a)+len(b))
	seen := make(map[K]struct{}, len(a)+len(b))
	for _, part := range [2][]T{a, b} {
		for _, v := range part {
			k := keySelector(v)
			if _, dup := seen[k]; !dup {
				result = append(result, v)
				seen[k] = struct{}{}
			}
		}
	}
	return result
}

// Unique removes duplicate elements from the slice in place, keeping the
// first occurrence of each.
// Note: It modifies the underlying array of the original slice.
func Unique[T comparable](collection []T) []T {
	return UniqueBy(collection, identity[T])
}

// UniqueBy is like Unique but two elements are duplicates when keySelector
// maps them to the same key.
func UniqueBy[T any, K comparable](collection []T, keySelector func(T) K) []T {
	if len(collection) == 0 {
		return collection
	}
	_ = collection[len(collection)-1] // BCE hint

	seen := make(map[K]struct{}, len(collection))
	idx := 0
	for i, v := range collection {
		k := keySelector(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		if i != idx {
			collection[idx] = v
		}
		idx++
	}

	// Zero out remaining elements for GC
	clear(collection[idx:])
	return collection[:idx]
}

func keySet[T any, K comparable](collection []T, keySelector func(T) K) map[K]struct{} {
	m := make(map[K]struct{}, len(collection))
	for _, v := range collection {
		m[keySelector(v)] = struct{}{}
	}
	return m
}
