package sliceutil

// ==========================================
//  Pure Functions (Happy Path)
// ==========================================

// Filter returns a new slice holding the elements that satisfy predicate.
func Filter[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// FilterInPlace filters the slice without allocating.
// Note: It modifies the underlying array of the original slice.
func FilterInPlace[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return collection
	}
	_ = collection[len(collection)-1]

	idx := 0
	for i, v := range collection {
		if predicate(v) {
			if i != idx {
				collection[idx] = v
			}
			idx++
		}
	}

	// allow GC to reclaim memory
	clear(collection[idx:])
	return collection[:idx]
}

// Map transforms a slice of type T to a slice of type R.
func Map[T any, R any](collection []T, transform func(T) R) []R {
	if len(collection) == 0 {
		return []R{}
	}
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}

// Reduce folds a slice of type T into a single value of type R.
func Reduce[T any, R any](collection []T, accumulator func(R, T) R, initial R) R {
	result := initial
	for _, item := range collection {
		result = accumulator(result, item)
	}
	return result
}

// Compress keeps the elements whose matching selector is true.
// It stops at the shorter of the two slices.
func Compress[T any](collection []T, selectors []bool) []T {
	n := min(len(collection), len(selectors))
	res := make([]T, 0, n)
	for i := range n {
		if selectors[i] {
			res = append(res, collection[i])
		}
	}
	return res
}

// Replace returns a copy of the slice where every element that satisfies
// predicate is swapped for with.
func Replace[T any](collection []T, predicate func(T) bool, with T) []T {
	res := make([]T, len(collection))
	for i, v := range collection {
		if predicate(v) {
			v = with
		}
		res[i] = v
	}
	return res
}

// ==========================================
// Try Functions (Error Handling)
// Fail fast on the first error.
// ==========================================

// TryFilter is like Filter, but predicate may return an error.
func TryFilter[T any](collection []T, predicate func(T) (bool, error)) ([]T, error) {
	if len(collection) == 0 {
		return []T{}, nil
	}
	_ = collection[len(collection)-1]

	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		ok, err := predicate(v)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, v)
		}
	}
	return res, nil
}

// TryMap is like Map, but transform may return an error.
func TryMap[T any, R any](collection []T, transform func(T) (R, error)) ([]R, error) {
	if len(collection) == 0 {
		return []R{}, nil
	}
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		var err error
		res[i], err = transform(v)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// TryReduce is like Reduce, but accumulator may return an error.
// The partial result is returned along with the error.
func TryReduce[T any, R any](collection []T, accumulator func(R, T) (R, error), initial R) (R, error) {
	result := initial
	for _, item := range collection {
		var err error
		result, err = accumulator(result, item)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

// ==========================================
//  Chunking
// ==========================================

// Chunk splits a slice into chunks of the given size.
// The chunks share the original backing array; the last may be shorter.
func Chunk[T any](collection []T, size int) [][]T {
	if size <= 0 {
		panic("sliceutil.Chunk: size must be greater than 0")
	}
	if len(collection) == 0 {
		return [][]T{}
	}
	res := make([][]T, 0, (len(collection)+size-1)/size)
	for i := 0; i < len(collection); i += size {
		end := min(i+size, len(collection))
		res = append(res, collection[i:end:end])
	}
	return res
}

// ChunkCopy is like Chunk but every chunk is a fresh slice.
func ChunkCopy[T any](collection []T, size int) [][]T {
	if size <= 0 {
		panic("sliceutil.ChunkCopy: size must be greater than 0")
	}
	chunks := Chunk(collection, size)
	for i, c := range chunks {
		chunks[i] = append([]T(nil), c...)
	}
	return chunks
}
