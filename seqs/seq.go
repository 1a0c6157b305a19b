package seqs

import "iter"

// Map yields transform(v) for every v in seq.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Filter yields the elements of seq for which keep returns true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// TryMap is Map for a transform that can fail. Each result is yielded with
// its error, the zero R accompanying a failure; the consumer decides whether
// to keep ranging after an error.
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Reduce folds seq into a single value, left to right, starting from acc.
func Reduce[T, R any](seq iter.Seq[T], acc R, fold func(R, T) R) R {
	for v := range seq {
		acc = fold(acc, v)
	}
	return acc
}

// TryReduce is Reduce for a fold that can fail. It stops at the first error
// and returns it with the value accumulated so far.
func TryReduce[T, R any](seq iter.Seq[T], acc R, fold func(R, T) (R, error)) (R, error) {
	for v := range seq {
		next, err := fold(acc, v)
		if err != nil {
			return next, err
		}
		acc = next
	}
	return acc, nil
}
