package sliceutil

import (
	"cmp"
	"container/heap"
	"slices"
)

type ranked[T any, K cmp.Ordered] struct {
	item T
	key  K
	idx  int
}

// rankHeap keeps the n best elements seen so far with the worst at the root,
// so a better candidate replaces it in O(log n).
type rankHeap[T any, K cmp.Ordered] struct {
	nodes []ranked[T, K]
	desc  bool
}

// outranks reports whether a sorts before b: by key, then by input position.
func (h *rankHeap[T, K]) outranks(a, b ranked[T, K]) bool {
	if c := cmp.Compare(a.key, b.key); c != 0 {
		if h.desc {
			return c > 0
		}
		return c < 0
	}
	return a.idx < b.idx
}

func (h *rankHeap[T, K]) Len() int           { return len(h.nodes) }
func (h *rankHeap[T, K]) Less(i, j int) bool { return h.outranks(h.nodes[j], h.nodes[i]) }
func (h *rankHeap[T, K]) Swap(i, j int)      { h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i] }
func (h *rankHeap[T, K]) Push(x any)         { h.nodes = append(h.nodes, x.(ranked[T, K])) }
func (h *rankHeap[T, K]) Pop() any {
	old := h.nodes
	n := len(old)
	x := old[n-1]
	var zero ranked[T, K]
	old[n-1] = zero
	h.nodes = old[:n-1]
	return x
}

func topN[T any, K cmp.Ordered](items []T, n int, key func(T) K, desc bool) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}
	h := &rankHeap[T, K]{desc: desc}
	n = min(n, len(items))
	h.nodes = make([]ranked[T, K], 0, n)

	for i, it := range items {
		node := ranked[T, K]{item: it, key: key(it), idx: i}
		if h.Len() < n {
			heap.Push(h, node)
			continue
		}
		if h.outranks(node, h.nodes[0]) {
			h.nodes[0] = node
			heap.Fix(h, 0)
		}
	}

	slices.SortFunc(h.nodes, func(a, b ranked[T, K]) int {
		switch {
		case a.idx == b.idx:
			return 0
		case h.outranks(a, b):
			return -1
		}
		return 1
	})
	res := make([]T, len(h.nodes))
	for i, node := range h.nodes {
		res[i] = node.item
	}
	return res
}

// Largest returns the n largest elements, largest first.
// Equal elements keep their input order.
func Largest[T cmp.Ordered](items []T, n int) []T {
	return topN(items, n, identity[T], true)
}

// Smallest returns the n smallest elements, smallest first.
// Equal elements keep their input order.
func Smallest[T cmp.Ordered](items []T, n int) []T {
	return topN(items, n, identity[T], false)
}

// LargestBy returns the n elements with the largest keys, largest first.
// Elements with equal keys keep their input order.
func LargestBy[T any, K cmp.Ordered](items []T, n int, key func(T) K) []T {
	return topN(items, n, key, true)
}

// SmallestBy returns the n elements with the smallest keys, smallest first.
// Elements with equal keys keep their input order.
func SmallestBy[T any, K cmp.Ordered](items []T, n int, key func(T) K) []T {
	return topN(items, n, key, false)
}
