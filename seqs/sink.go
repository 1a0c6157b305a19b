package seqs

import (
	"iter"
	"strings"
)

func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// Collect drains seq into a slice. It never returns nil.
func Collect[T any](seq iter.Seq[T]) []T {
	res := []T{}
	for v := range seq {
		res = append(res, v)
	}
	return res
}

// Join concatenates the strings of seq, placing sep between them.
func Join(seq iter.Seq[string], sep string) string {
	var b strings.Builder
	first := true
	for s := range seq {
		if !first {
			b.WriteString(sep)
		}
		b.WriteString(s)
		first = false
	}
	return b.String()
}
