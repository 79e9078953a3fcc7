// Package queue provides unbounded linked FIFO queues.
//
// This package offers two implementations of the Queue interface:
//   - LinkedQueue: Plain singly-linked queue with no synchronization
//   - TwoLockQueue: Singly-linked queue with separate head and tail locks
//
// It also provides GuardedNode, a linked cell whose fields may only be
// touched by the holder of its per-node lock.
//
// # TwoLockQueue Locking
//
// The head lock guards the head pointer and the tail lock guards the tail
// pointer plus the link of the current tail node. Enqueue only takes the
// tail lock, Dequeue only takes the head lock, so producers and consumers
// do not contend unless the queue is moving between empty and non-empty.
//
// Dequeue of the last element is the single place where both locks are
// held by one goroutine. It always takes the head lock before the tail
// lock. Enqueue never holds both, so no lock ordering cycle exists.
//
// # LinkedQueue Safety
//
// LinkedQueue is NOT safe for concurrent use. It is the single-goroutine
// reference that TwoLockQueue ordering is validated against.
package queue

import "context"

// Queue is an unbounded FIFO queue.
//
// Dequeue and Peek are non-blocking: they return ErrEmpty when no element
// is available. Callers treat ErrEmpty as "no data yet" and retry.
type Queue[T any] interface {
	// Enqueue appends an item to the back of the queue.
	// It never fails.
	Enqueue(T)

	// Dequeue removes and returns the front item.
	// Returns ErrEmpty if the queue is empty.
	Dequeue() (T, error)

	// Peek returns the front item without removing it.
	// Returns ErrEmpty if the queue is empty.
	Peek() (T, error)

	// IsEmpty reports whether the queue holds no items.
	// Under concurrent use the answer may be stale by the time it is read.
	IsEmpty() bool
}

// Waiter is implemented by queues that offer a blocking dequeue.
type Waiter[T any] interface {
	// DequeueWait removes and returns the front item, blocking until one
	// is available or ctx is done.
	DequeueWait(ctx context.Context) (T, error)
}
