package queue

import (
	"context"
	"sync"
	"sync/atomic"
)

// TwoLockQueue is an unbounded FIFO queue safe for any number of
// producer and consumer goroutines.
//
// headMu guards the head pointer. tailMu guards the tail pointer and the
// link of the current tail node. Enqueue takes only tailMu; Dequeue takes
// headMu and, when it removes what may be the last element, tailMu as
// well. The lock order is always headMu then tailMu.
//
// head is written under tailMu when Enqueue fills an empty queue, so it
// is stored atomically.
type TwoLockQueue[T any] struct {
	headMu sync.Mutex
	head   atomic.Pointer[Node[T]]

	tailMu sync.Mutex
	tail   *Node[T]

	// ready holds at most one wakeup for DequeueWait callers.
	ready chan struct{}
}

// NewTwoLock creates an empty TwoLockQueue.
func NewTwoLock[T any]() *TwoLockQueue[T] {
	return &TwoLockQueue[T]{
		ready: make(chan struct{}, 1),
	}
}

// Enqueue appends v to the back of the queue. It never fails and holds
// tailMu only for the pointer updates.
func (q *TwoLockQueue[T]) Enqueue(v T) {
	n := NewNode(v)

	q.tailMu.Lock()
	if q.tail == nil {
		// Empty: Dequeue cleared head before releasing tailMu, and no
		// Dequeue can advance a nil head, so head is ours to set.
		q.head.Store(n)
		q.tail = n
	} else {
		q.tail.SetNext(n)
		q.tail = n
	}
	q.tailMu.Unlock()

	q.signal()
}

// Dequeue removes and returns the front value.
// Returns ErrEmpty if the queue is empty; it never waits for data.
func (q *TwoLockQueue[T]) Dequeue() (T, error) {
	q.headMu.Lock()
	defer q.headMu.Unlock()

	h := q.head.Load()
	if h == nil {
		var zero T
		return zero, ErrEmpty
	}

	next := h.Next()
	if next == nil {
		// h may be the tail. Re-read the link under tailMu so an
		// Enqueue racing with us is either fully visible or not started.
		q.tailMu.Lock()
		next = h.Next()
		if next == nil {
			q.tail = nil
		}
		q.head.Store(next)
		q.tailMu.Unlock()
	} else {
		q.head.Store(next)
	}

	return h.Value(), nil
}

// Peek returns the front value without removing it.
// Returns ErrEmpty if the queue is empty.
func (q *TwoLockQueue[T]) Peek() (T, error) {
	q.headMu.Lock()
	defer q.headMu.Unlock()

	h := q.head.Load()
	if h == nil {
		var zero T
		return zero, ErrEmpty
	}
	return h.Value(), nil
}

// IsEmpty reports whether the queue holds no items.
//
// This is a point-in-time snapshot taken under tailMu. It may be stale by
// the time the caller acts on it and must not be used for synchronization.
func (q *TwoLockQueue[T]) IsEmpty() bool {
	q.tailMu.Lock()
	defer q.tailMu.Unlock()
	return q.tail == nil
}

// DequeueWait removes and returns the front value, blocking until one is
// available or ctx is done. On cancellation it returns ctx.Err().
//
// It may be mixed freely with Dequeue callers.
func (q *TwoLockQueue[T]) DequeueWait(ctx context.Context) (T, error) {
	for {
		v, err := q.Dequeue()
		if err == nil {
			// Pass the wakeup on if more work is queued, since Enqueue
			// drops signals while one is already pending.
			if !q.IsEmpty() {
				q.signal()
			}
			return v, nil
		}

		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-q.ready:
		}
	}
}

func (q *TwoLockQueue[T]) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
