package queues

import "errors"

var (
	// ErrEmptyQueue is returned when removing from or peeking into an empty queue.
	ErrEmptyQueue = errors.New("queue is empty")
	// ErrQueueClosed is returned when pushing into a closed queue,
	// or waiting on a queue that was closed and drained.
	ErrQueueClosed = errors.New("queue is closed")
)
