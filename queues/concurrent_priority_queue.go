package queues

import (
	"cmp"
	"sync"
)

// ConcurrentPriorityQueue is a thread-safe wrapper for PriorityQueue (non-blocking).
type ConcurrentPriorityQueue[T any, P cmp.Ordered] struct {
	mu sync.Mutex
	pq *PriorityQueue[T, P]
}

func NewConcurrentPriorityQueue[T any, P cmp.Ordered](initCapacity int, order Order) *ConcurrentPriorityQueue[T, P] {
	return &ConcurrentPriorityQueue[T, P]{
		pq: NewPriorityQueue[T, P](initCapacity, order),
	}
}

func (cpq *ConcurrentPriorityQueue[T, P]) Push(value T, priority P) *PriorityItem[T, P] {
	cpq.mu.Lock()
	defer cpq.mu.Unlock()
	return cpq.pq.Push(value, priority)
}

func (cpq *ConcurrentPriorityQueue[T, P]) Pop() (T, error) {
	cpq.mu.Lock()
	defer cpq.mu.Unlock()
	return cpq.pq.Pop()
}

func (cpq *ConcurrentPriorityQueue[T, P]) Peek() (T, error) {
	cpq.mu.Lock()
	defer cpq.mu.Unlock()
	return cpq.pq.Peek()
}

func (cpq *ConcurrentPriorityQueue[T, P]) Update(item *PriorityItem[T, P], priority P) {
	cpq.mu.Lock()
	defer cpq.mu.Unlock()
	cpq.pq.Update(item, priority)
}

func (cpq *ConcurrentPriorityQueue[T, P]) Remove(item *PriorityItem[T, P]) T {
	cpq.mu.Lock()
	defer cpq.mu.Unlock()
	return cpq.pq.Remove(item)
}

// PopAll drains the queue under a single lock and returns the values in order.
func (cpq *ConcurrentPriorityQueue[T, P]) PopAll() []T {
	cpq.mu.Lock()
	defer cpq.mu.Unlock()
	res := make([]T, 0, cpq.pq.Len())
	for v := range cpq.pq.Drain() {
		res = append(res, v)
	}
	return res
}

func (cpq *ConcurrentPriorityQueue[T, P]) Len() int {
	cpq.mu.Lock()
	defer cpq.mu.Unlock()
	return cpq.pq.Len()
}

func (cpq *ConcurrentPriorityQueue[T, P]) IsEmpty() bool {
	cpq.mu.Lock()
	defer cpq.mu.Unlock()
	return cpq.pq.IsEmpty()
}
