package queues

import "cmp"

// Prioritized is the common API of PriorityQueue and ConcurrentPriorityQueue.
type Prioritized[T any, P cmp.Ordered] interface {
	// inserts value with the given priority, stamping the next sequence number
	Push(value T, priority P) *PriorityItem[T, P]
	// removes and returns the highest ranked value, ErrEmptyQueue if there is none
	Pop() (T, error)
	// returns the highest ranked value without removing it
	Peek() (T, error)
	// re-prioritises a queued item
	Update(item *PriorityItem[T, P], priority P)
	// removes a queued item
	Remove(item *PriorityItem[T, P]) T
	// returns the number of queued values
	Len() int
	// returns true if nothing is queued
	IsEmpty() bool
}

var (
	_ Prioritized[string, int] = (*PriorityQueue[string, int])(nil)
	_ Prioritized[string, int] = (*ConcurrentPriorityQueue[string, int])(nil)
)
