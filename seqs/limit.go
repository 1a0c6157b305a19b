package seqs

import "iter"

// Range yields the integers of Python's range(start, stop, step): from
// start towards stop, excluding stop. The arguments line up with the
// results of sliceutil.Span.Indices. It panics if step is zero.
func Range(start, stop, step int) iter.Seq[int] {
	if step == 0 {
		panic("seqs.Range: step cannot be zero")
	}
	before := func(i int) bool { return i < stop }
	if step < 0 {
		before = func(i int) bool { return i > stop }
	}
	return func(yield func(int) bool) {
		for i := start; before(i); i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Take yields at most the first n elements of seq and then stops pulling
// from it.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		left := n
		if left <= 0 {
			return
		}
		for v := range seq {
			left--
			if !yield(v) || left == 0 {
				return
			}
		}
	}
}

// TakeWhile yields elements until the first one that fails keep. That
// element is consumed but not yielded.
func TakeWhile[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !keep(v) || !yield(v) {
				return
			}
		}
	}
}
