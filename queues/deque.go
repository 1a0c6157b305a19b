package queues

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Deque is a double-ended queue backed by a circular array (ring buffer).
// A bounded Deque keeps at most MaxLen elements: pushing onto a full deque
// discards an element from the opposite end.
type Deque[T any] struct {
	buf    []T // backing array, length == capacity (power of two)
	head   int // index of the first element
	size   int // number of elements in the deque
	mask   int // capacity - 1, used for fast modulo: idx & mask
	maxLen int // -1 when unbounded
}

// NewDeque creates an unbounded Deque with the specified initial capacity.
func NewDeque[T any](initialCapacity int) *Deque[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := nextPowerOfTwo(initialCapacity)
	return &Deque[T]{
		buf:    make([]T, capacity),
		mask:   capacity - 1,
		maxLen: -1,
	}
}

// NewBoundedDeque creates a Deque holding at most maxLen elements.
// With maxLen <= 0 every pushed element is discarded immediately.
func NewBoundedDeque[T any](maxLen int) *Deque[T] {
	if maxLen < 0 {
		maxLen = 0
	}
	capacity := nextPowerOfTwo(max(maxLen, 1))
	return &Deque[T]{
		buf:    make([]T, capacity),
		mask:   capacity - 1,
		maxLen: maxLen,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// grow doubles the buffer and unwraps the elements to start at index 0.
func (d *Deque[T]) grow() {
	newCapacity := len(d.buf) * 2
	newBuf := make([]T, newCapacity)

	if d.head+d.size <= len(d.buf) {
		copy(newBuf, d.buf[d.head:d.head+d.size])
	} else {
		// wrapped around: copy head to end, then start to tail
		n := copy(newBuf, d.buf[d.head:])
		tailPos := (d.head + d.size) & d.mask
		copy(newBuf[n:], d.buf[:tailPos])
	}

	clear(d.buf)
	d.buf = newBuf
	d.head = 0
	d.mask = newCapacity - 1
}

func (d *Deque[T]) full() bool {
	return d.maxLen >= 0 && d.size >= d.maxLen
}

// PushBack appends value at the back. If the deque is bounded and full,
// the front element is evicted and returned with ok == true.
func (d *Deque[T]) PushBack(value T) (evicted T, ok bool) {
	if d.maxLen == 0 {
		return value, true
	}
	if d.full() {
		evicted, _ = d.PopFront()
		ok = true
	} else if d.size == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.size)&d.mask] = value
	d.size++
	return evicted, ok
}

// PushFront prepends value at the front. If the deque is bounded and full,
// the back element is evicted and returned with ok == true.
func (d *Deque[T]) PushFront(value T) (evicted T, ok bool) {
	if d.maxLen == 0 {
		return value, true
	}
	if d.full() {
		evicted, _ = d.PopBack()
		ok = true
	} else if d.size == len(d.buf) {
		d.grow()
	}
	d.head = (d.head - 1) & d.mask
	d.buf[d.head] = value
	d.size++
	return evicted, ok
}

// PushBackAll appends values in order, evicting from the front as needed.
func (d *Deque[T]) PushBackAll(values ...T) {
	for _, v := range values {
		d.PushBack(v)
	}
}

func (d *Deque[T]) PopFront() (value T, err error) {
	if d.size == 0 {
		return value, ErrEmptyQueue
	}
	value = d.buf[d.head]
	var zero T
	d.buf[d.head] = zero // clear reference
	d.head = (d.head + 1) & d.mask
	d.size--
	return value, nil
}

func (d *Deque[T]) PopBack() (value T, err error) {
	if d.size == 0 {
		return value, ErrEmptyQueue
	}
	idx := (d.head + d.size - 1) & d.mask
	value = d.buf[idx]
	var zero T
	d.buf[idx] = zero
	d.size--
	return value, nil
}

func (d *Deque[T]) Front() (value T, err error) {
	if d.size == 0 {
		return value, ErrEmptyQueue
	}
	return d.buf[d.head], nil
}

func (d *Deque[T]) Back() (value T, err error) {
	if d.size == 0 {
		return value, ErrEmptyQueue
	}
	return d.buf[(d.head+d.size-1)&d.mask], nil
}

// At returns the i-th element counted from the front.
func (d *Deque[T]) At(i int) (value T, ok bool) {
	if i < 0 || i >= d.size {
		return value, false
	}
	return d.buf[(d.head+i)&d.mask], true
}

// All iterates the elements from front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(d.buf[(d.head+i)&d.mask]) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements from front to back.
func (d *Deque[T]) Slice() []T {
	res := make([]T, d.size)
	if d.head+d.size <= len(d.buf) {
		copy(res, d.buf[d.head:d.head+d.size])
	} else {
		n := copy(res, d.buf[d.head:])
		copy(res[n:], d.buf[:d.size-n])
	}
	return res
}

func (d *Deque[T]) Len() int {
	return d.size
}

// MaxLen returns the bound of the deque, or -1 if it is unbounded.
func (d *Deque[T]) MaxLen() int {
	return d.maxLen
}

func (d *Deque[T]) IsEmpty() bool {
	return d.size == 0
}

func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.head = 0
	d.size = 0
}

func (d *Deque[T]) String() string {
	var sb strings.Builder
	sb.WriteString("deque(")
	fmt.Fprint(&sb, d.Slice())
	if d.maxLen >= 0 {
		fmt.Fprintf(&sb, ", maxlen=%d", d.maxLen)
	}
	sb.WriteString(")")
	return sb.String()
}
