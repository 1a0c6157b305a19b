package sliceutil

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Open bounds for a Span, like None in a Python slice. Either one leaves the
// bound open: an open start is the first element in the step direction and an
// open stop runs past the last one. Begin and End are interchangeable.
const (
	Begin = math.MinInt
	End   = math.MaxInt
)

var ErrSpanSizeMismatch = errors.New("span size mismatch")

// Span names a slice of a sequence so the indices can be reused by name.
// Negative indices count from the end of the sequence, as in Python.
type Span struct {
	Start, Stop, Step int
}

// NewSpan returns the span [start, stop) with a step of 1.
func NewSpan(start, stop int) Span {
	return Span{Start: start, Stop: stop, Step: 1}
}

// Indices maps the span onto a sequence of the given length, clamping
// start and stop so that they can be iterated without going out of range.
func (s Span) Indices(length int) (start, stop, step int) {
	if s.Step == 0 {
		panic("sliceutil.Span: step cannot be zero")
	}
	if length < 0 {
		length = 0
	}
	step = s.Step
	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}
	clamp := func(i int) int {
		if i < 0 {
			if i += length; i < lower {
				return lower
			}
			return i
		}
		return min(i, upper)
	}
	start, stop = clamp(s.Start), clamp(s.Stop)
	if isOpen(s.Start) {
		start = lower
		if step < 0 {
			start = upper
		}
	}
	if isOpen(s.Stop) {
		stop = upper
		if step < 0 {
			stop = lower
		}
	}
	return start, stop, step
}

func isOpen(i int) bool { return i == Begin || i == End }

// Len returns the number of elements the span selects from a sequence of
// the given length.
func (s Span) Len(length int) int {
	start, stop, step := s.Indices(length)
	switch {
	case step > 0 && start < stop:
		return (stop-start-1)/step + 1
	case step < 0 && stop < start:
		return (start-stop-1)/(-step) + 1
	}
	return 0
}

func (s Span) positions(length int) []int {
	start, _, step := s.Indices(length)
	res := make([]int, s.Len(length))
	for i := range res {
		res[i] = start + i*step
	}
	return res
}

// Text applies the span to the runes of str.
func (s Span) Text(str string) string {
	return string(Slice([]rune(str), s))
}

func (s Span) String() string {
	bound := func(i int) string {
		if isOpen(i) {
			return "None"
		}
		return strconv.Itoa(i)
	}
	return fmt.Sprintf("slice(%s, %s, %d)", bound(s.Start), bound(s.Stop), s.Step)
}

// Slice returns a copy of the elements of items selected by span.
func Slice[T any](items []T, span Span) []T {
	pos := span.positions(len(items))
	res := make([]T, len(pos))
	for i, p := range pos {
		res[i] = items[p]
	}
	return res
}

// AssignSlice replaces the elements selected by span with values.
// For a contiguous span (step 1) the replacement may have any length and
// the returned slice may be reallocated. Otherwise values must have exactly
// as many elements as the span selects.
func AssignSlice[T any](items []T, span Span, values []T) ([]T, error) {
	if span.Step == 1 {
		start, stop, _ := span.Indices(len(items))
		return slices.Replace(items, start, max(start, stop), values...), nil
	}
	pos := span.positions(len(items))
	if len(pos) != len(values) {
		return items, fmt.Errorf("%w: cannot assign %d values to a span of %d", ErrSpanSizeMismatch, len(values), len(pos))
	}
	for i, p := range pos {
		items[p] = values[i]
	}
	return items, nil
}

// DeleteSlice removes the elements selected by span.
// Note: It modifies the underlying array of the original slice.
func DeleteSlice[T any](items []T, span Span) []T {
	if span.Step == 1 {
		start, stop, _ := span.Indices(len(items))
		return slices.Delete(items, start, max(start, stop))
	}
	drop := make(map[int]struct{}, span.Len(len(items)))
	for _, p := range span.positions(len(items)) {
		drop[p] = struct{}{}
	}
	idx := 0
	for i, v := range items {
		if _, ok := drop[i]; ok {
			continue
		}
		items[idx] = v
		idx++
	}
	clear(items[idx:])
	return items[:idx]
}
