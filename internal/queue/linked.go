package queue

// LinkedQueue is an unbounded singly-linked FIFO queue.
//
// WARNING: LinkedQueue is NOT safe for concurrent use. It exists as the
// single-goroutine baseline for TwoLockQueue.
//
// head is nil iff tail is nil iff the queue is empty, and tail.next is
// always nil.
type LinkedQueue[T any] struct {
	head *Node[T]
	tail *Node[T]
}

// NewLinked creates an empty LinkedQueue.
func NewLinked[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

// Enqueue appends v to the back of the queue in O(1).
func (q *LinkedQueue[T]) Enqueue(v T) {
	n := NewNode(v)

	if q.tail == nil {
		q.head, q.tail = n, n
		return
	}

	q.tail.SetNext(n)
	q.tail = n
}

// Dequeue removes and returns the front value.
// Returns ErrEmpty if the queue is empty.
func (q *LinkedQueue[T]) Dequeue() (T, error) {
	if q.head == nil {
		var zero T
		return zero, ErrEmpty
	}

	n := q.head
	q.head = n.Next()
	if q.head == nil {
		q.tail = nil
	}

	return n.Value(), nil
}

// Peek returns the front value without removing it.
// Returns ErrEmpty if the queue is empty.
func (q *LinkedQueue[T]) Peek() (T, error) {
	if q.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return q.head.Value(), nil
}

// IsEmpty reports whether the queue holds no items.
func (q *LinkedQueue[T]) IsEmpty() bool {
	return q.tail == nil
}
