package sliceutil

import (
	"errors"
	"fmt"
)

var (
	ErrNotEnoughValues = errors.New("not enough values to unpack")
	ErrTooManyValues   = errors.New("too many values to unpack")
)

func checkExact(got, want int) error {
	switch {
	case got < want:
		return fmt.Errorf("%w (expected %d, got %d)", ErrNotEnoughValues, want, got)
	case got > want:
		return fmt.Errorf("%w (expected %d, got %d)", ErrTooManyValues, want, got)
	}
	return nil
}

func checkAtLeast(got, want int) error {
	if got < want {
		return fmt.Errorf("%w (expected at least %d, got %d)", ErrNotEnoughValues, want, got)
	}
	return nil
}

// Unpack2 returns the two elements of items. It fails unless items holds
// exactly two values.
func Unpack2[T any](items []T) (a, b T, err error) {
	if err = checkExact(len(items), 2); err != nil {
		return a, b, err
	}
	return items[0], items[1], nil
}

// Unpack3 returns the three elements of items. It fails unless items holds
// exactly three values.
func Unpack3[T any](items []T) (a, b, c T, err error) {
	if err = checkExact(len(items), 3); err != nil {
		return a, b, c, err
	}
	return items[0], items[1], items[2], nil
}

// HeadTail splits items into its first element and the rest.
// The tail shares the backing array of items.
func HeadTail[T any](items []T) (head T, tail []T, err error) {
	if err = checkAtLeast(len(items), 1); err != nil {
		return head, nil, err
	}
	return items[0], items[1:], nil
}

// InitLast splits items into everything but the last element, and the last.
func InitLast[T any](items []T) (init []T, last T, err error) {
	if err = checkAtLeast(len(items), 1); err != nil {
		return nil, last, err
	}
	n := len(items) - 1
	return items[:n:n], items[n], nil
}

// FirstMiddleLast discards nothing: it returns the first element, the
// (possibly empty) middle and the last element.
func FirstMiddleLast[T any](items []T) (first T, middle []T, last T, err error) {
	if err = checkAtLeast(len(items), 2); err != nil {
		return first, nil, last, err
	}
	n := len(items) - 1
	return items[0], items[1:n:n], items[n], nil
}
