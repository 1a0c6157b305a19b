package queues

import (
	"cmp"
	"container/heap"
	"iter"
)

// Order selects which end of the priority range is dequeued first.
type Order int

const (
	// MaxFirst dequeues the highest priority first.
	MaxFirst Order = iota
	// MinFirst dequeues the lowest priority first.
	MinFirst
)

func (o Order) String() string {
	switch o {
	case MinFirst:
		return "min-first"
	default:
		return "max-first"
	}
}

// PriorityItem is a handle to a value stored in a PriorityQueue.
// It stays valid until the value is popped or removed.
type PriorityItem[T any, P cmp.Ordered] struct {
	Value    T
	priority P
	seq      uint64
	index    int
}

// Priority returns the priority the item is currently ordered by.
func (it *PriorityItem[T, P]) Priority() P {
	return it.priority
}

// Seq returns the insertion sequence number assigned by the queue.
func (it *PriorityItem[T, P]) Seq() uint64 {
	return it.seq
}

type internalHeap[T any, P cmp.Ordered] struct {
	data  []*PriorityItem[T, P]
	order Order
}

func (ih *internalHeap[T, P]) Len() int {
	return len(ih.data)
}

// Less orders by (priority, seq). Priority is reversed for MaxFirst,
// seq always ascends so equal priorities come out in arrival order.
func (ih *internalHeap[T, P]) Less(i, j int) bool {
	a, b := ih.data[i], ih.data[j]
	c := cmp.Compare(a.priority, b.priority)
	if ih.order == MaxFirst {
		c = -c
	}
	if c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

func (ih *internalHeap[T, P]) Swap(i, j int) {
	ih.data[i], ih.data[j] = ih.data[j], ih.data[i]
	ih.data[i].index = i
	ih.data[j].index = j
}

func (ih *internalHeap[T, P]) Push(x any) {
	item := x.(*PriorityItem[T, P])
	item.index = len(ih.data)
	ih.data = append(ih.data, item)
}

func (ih *internalHeap[T, P]) Pop() any {
	old := ih.data
	n := len(old)
	lastItem := old[n-1]

	// avoid memory leak
	lastItem.index = -1
	old[n-1] = nil

	ih.data = old[0 : n-1]
	return lastItem
}

// PriorityQueue is a binary-heap priority queue with a stable FIFO
// tie-break: among equal priorities, the earliest pushed value is popped first.
// It is not safe for concurrent use; see ConcurrentPriorityQueue.
type PriorityQueue[T any, P cmp.Ordered] struct {
	heap *internalHeap[T, P]
	seq  uint64
}

// NewPriorityQueue creates an empty PriorityQueue with the specified initial capacity and order.
func NewPriorityQueue[T any, P cmp.Ordered](initCapacity int, order Order) *PriorityQueue[T, P] {
	if initCapacity < 0 {
		initCapacity = 0
	}
	innerHeap := internalHeap[T, P]{
		data:  make([]*PriorityItem[T, P], 0, initCapacity),
		order: order,
	}
	heap.Init(&innerHeap)

	return &PriorityQueue[T, P]{
		heap: &innerHeap,
	}
}

// Push inserts value with the given priority and returns its handle.
func (pq *PriorityQueue[T, P]) Push(value T, priority P) *PriorityItem[T, P] {
	item := &PriorityItem[T, P]{
		Value:    value,
		priority: priority,
		seq:      pq.seq,
	}
	pq.seq++
	heap.Push(pq.heap, item)
	return item
}

// Pop removes and returns the value with the highest rank.
// It returns ErrEmptyQueue if the queue is empty.
func (pq *PriorityQueue[T, P]) Pop() (value T, err error) {
	if pq.heap.Len() == 0 {
		return value, ErrEmptyQueue
	}
	return heap.Pop(pq.heap).(*PriorityItem[T, P]).Value, nil
}

// Peek returns the value Pop would return without removing it.
func (pq *PriorityQueue[T, P]) Peek() (value T, err error) {
	if pq.heap.Len() == 0 {
		return value, ErrEmptyQueue
	}
	return pq.heap.data[0].Value, nil
}

// Update changes the priority of a queued item. The item keeps its
// original sequence number.
func (pq *PriorityQueue[T, P]) Update(item *PriorityItem[T, P], priority P) {
	if !pq.owns(item) {
		panic("queues.PriorityQueue: Update called with invalid PriorityItem")
	}
	item.priority = priority
	heap.Fix(pq.heap, item.index)
}

// Remove takes a queued item out of the queue and returns its value.
func (pq *PriorityQueue[T, P]) Remove(item *PriorityItem[T, P]) T {
	if !pq.owns(item) {
		panic("queues.PriorityQueue: Remove called with invalid PriorityItem")
	}
	return heap.Remove(pq.heap, item.index).(*PriorityItem[T, P]).Value
}

func (pq *PriorityQueue[T, P]) owns(item *PriorityItem[T, P]) bool {
	return item != nil && item.index >= 0 && item.index < pq.heap.Len() && pq.heap.data[item.index] == item
}

// Drain pops values in order until the queue is empty or the consumer stops.
func (pq *PriorityQueue[T, P]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pq.heap.Len() > 0 {
			if !yield(heap.Pop(pq.heap).(*PriorityItem[T, P]).Value) {
				return
			}
		}
	}
}

func (pq *PriorityQueue[T, P]) Order() Order {
	return pq.heap.order
}

func (pq *PriorityQueue[T, P]) Len() int {
	return pq.heap.Len()
}

func (pq *PriorityQueue[T, P]) IsEmpty() bool {
	return pq.heap.Len() == 0
}
