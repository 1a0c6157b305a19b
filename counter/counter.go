// Package counter tallies hashable items.
package counter

import (
	"fmt"
	"strings"

	"cookbook/sliceutil"
)

// Entry is an item with its count.
type Entry[T comparable] struct {
	Item  T
	Count int
}

func (e Entry[T]) String() string {
	return fmt.Sprintf("(%v %d)", e.Item, e.Count)
}

// Counter maps items to the number of times they were seen. It remembers
// the order in which items were first added, and ties in MostCommon follow
// that order. Counts may be zero or negative after Subtract.
//
// The zero value is an empty counter ready to use.
type Counter[T comparable] struct {
	counts map[T]int
	order  []T
}

// New returns a counter holding one count for each of items.
func New[T comparable](items ...T) *Counter[T] {
	c := &Counter[T]{}
	c.Update(items...)
	return c
}

func (c *Counter[T]) Add(item T) {
	c.AddN(item, 1)
}

// AddN adds n to the count of item. n may be negative.
func (c *Counter[T]) AddN(item T, n int) {
	if c.counts == nil {
		c.counts = make(map[T]int)
	}
	if _, ok := c.counts[item]; !ok {
		c.order = append(c.order, item)
	}
	c.counts[item] += n
}

// Update counts each of items once more.
func (c *Counter[T]) Update(items ...T) {
	for _, it := range items {
		c.AddN(it, 1)
	}
}

// Subtract counts each of items once less. Counts can drop below zero.
func (c *Counter[T]) Subtract(items ...T) {
	for _, it := range items {
		c.AddN(it, -1)
	}
}

// Get returns the count of item, 0 if it was never seen.
func (c *Counter[T]) Get(item T) int {
	return c.counts[item]
}

// Len returns the number of distinct items.
func (c *Counter[T]) Len() int {
	return len(c.order)
}

// Total returns the sum of all counts.
func (c *Counter[T]) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Keys returns the distinct items in first-insertion order.
func (c *Counter[T]) Keys() []T {
	return append([]T(nil), c.order...)
}

func (c *Counter[T]) entries() []Entry[T] {
	return sliceutil.Map(c.order, func(it T) Entry[T] {
		return Entry[T]{Item: it, Count: c.counts[it]}
	})
}

// MostCommon returns the n items with the highest counts, highest first.
// Items with equal counts keep their first-insertion order. If n <= 0 all
// items are returned.
func (c *Counter[T]) MostCommon(n int) []Entry[T] {
	count := func(e Entry[T]) int { return e.Count }
	if n <= 0 {
		return sliceutil.SortedBy(c.entries(), sliceutil.ByDesc(count))
	}
	return sliceutil.LargestBy(c.entries(), n, count)
}

// Plus adds the counts of two counters, keeping only positive results. A nil
// o is treated as an empty counter.
func (c *Counter[T]) Plus(o *Counter[T]) *Counter[T] {
	if o == nil {
		o = &Counter[T]{}
	}
	res := &Counter[T]{}
	for _, it := range c.order {
		if n := c.counts[it] + o.Get(it); n > 0 {
			res.AddN(it, n)
		}
	}
	for _, it := range o.order {
		if _, seen := c.counts[it]; !seen && o.counts[it] > 0 {
			res.AddN(it, o.counts[it])
		}
	}
	return res
}

// Minus subtracts the counts of o, keeping only positive results.
func (c *Counter[T]) Minus(o *Counter[T]) *Counter[T] {
	if o == nil {
		o = &Counter[T]{}
	}
	res := &Counter[T]{}
	for _, it := range c.order {
		if n := c.counts[it] - o.Get(it); n > 0 {
			res.AddN(it, n)
		}
	}
	for _, it := range o.order {
		if _, seen := c.counts[it]; !seen && o.counts[it] < 0 {
			res.AddN(it, -o.counts[it])
		}
	}
	return res
}

// String lists the counts, most common first.
func (c *Counter[T]) String() string {
	parts := sliceutil.Map(c.MostCommon(0), func(e Entry[T]) string {
		return fmt.Sprintf("%v:%d", e.Item, e.Count)
	})
	return "Counter{" + strings.Join(parts, " ") + "}"
}
