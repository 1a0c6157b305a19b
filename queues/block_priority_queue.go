package queues

import (
	"cmp"
	"context"
	"sync"
)

// BlockingPriorityQueue is a thread-safe stable priority queue with context-aware waits.
// Waiters are woken through buffered signal channels rather than sync.Cond so
// they can also select on ctx.Done().
type BlockingPriorityQueue[T any, P cmp.Ordered] struct {
	mu       sync.Mutex
	pq       *PriorityQueue[T, P]
	notEmpty chan struct{}
	notFull  chan struct{}
	doneCh   chan struct{} // closed by Close

	// limit <=0 represents unbounded
	limit  int
	closed bool
}

// NewBlockingPriorityQueue creates a new BlockingPriorityQueue.
// If limit <= 0, the queue is unbounded.
func NewBlockingPriorityQueue[T any, P cmp.Ordered](initCapacity int, order Order, limit int) *BlockingPriorityQueue[T, P] {
	return &BlockingPriorityQueue[T, P]{
		pq:       NewPriorityQueue[T, P](initCapacity, order),
		limit:    limit,
		notEmpty: make(chan struct{}, 1),
		notFull:  make(chan struct{}, 1),
		doneCh:   make(chan struct{}),
	}
}

// maintainSignals leaves a pending signal on each channel whose condition holds.
// Must be called with lock held.
func (q *BlockingPriorityQueue[T, P]) maintainSignals() {
	if q.pq.Len() > 0 {
		select {
		case q.notEmpty <- struct{}{}:
		default:
		}
	}

	if q.limit <= 0 || q.pq.Len() < q.limit {
		select {
		case q.notFull <- struct{}{}:
		default:
		}
	}
}

// TryPush pushes without blocking. It returns (false, nil) if the queue is full.
func (q *BlockingPriorityQueue[T, P]) TryPush(value T, priority P) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false, ErrQueueClosed
	}
	if q.limit > 0 && q.pq.Len() >= q.limit {
		return false, nil
	}
	q.pq.Push(value, priority)
	q.maintainSignals()
	return true, nil
}

// PushOrWait blocks until there is space, ctx is done or the queue is closed.
func (q *BlockingPriorityQueue[T, P]) PushOrWait(ctx context.Context, value T, priority P) error {
	for {
		added, err := q.TryPush(value, priority)
		if err != nil {
			return err
		}
		if added {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.doneCh:
			return ErrQueueClosed
		case <-q.notFull:
			// Retry
		}
	}
}

// TryPop pops without blocking. It returns ErrEmptyQueue if there is nothing to pop.
func (q *BlockingPriorityQueue[T, P]) TryPop() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	val, err := q.pq.Pop()
	if err != nil {
		return val, err
	}
	q.maintainSignals()
	return val, nil
}

// PopOrWait blocks until a value is available or ctx is done.
// After Close, remaining values are still returned; once drained it returns ErrQueueClosed.
func (q *BlockingPriorityQueue[T, P]) PopOrWait(ctx context.Context) (T, error) {
	for {
		val, err := q.TryPop()
		if err == nil {
			return val, nil
		}

		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-q.doneCh:
			// drain whatever raced in before Close
			if val, err := q.TryPop(); err == nil {
				return val, nil
			}
			var zero T
			return zero, ErrQueueClosed
		case <-q.notEmpty:
			// Retry
		}
	}
}

// Done returns a channel that is closed when the queue is closed.
func (q *BlockingPriorityQueue[T, P]) Done() <-chan struct{} {
	return q.doneCh
}

// Close closes the queue. Pushes fail afterwards, pops drain what is left.
func (q *BlockingPriorityQueue[T, P]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.doneCh)
}

func (q *BlockingPriorityQueue[T, P]) IsClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Len returns the thread-safe length of the queue
func (q *BlockingPriorityQueue[T, P]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pq.Len()
}
