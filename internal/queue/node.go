package queue

import "sync/atomic"

// Node is a singly-linked cell holding a value and a forward link.
//
// Node takes no locks. Both LinkedQueue and TwoLockQueue build their
// chains from it and keep all locking at the queue level. The link is
// loaded and stored atomically because TwoLockQueue writes it under the
// tail lock and reads it under the head lock.
type Node[T any] struct {
	value T
	next  atomic.Pointer[Node[T]]
}

// NewNode creates an unlinked Node holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// NewNodeWithNext creates a Node holding v that links to next.
func NewNodeWithNext[T any](next *Node[T], v T) *Node[T] {
	n := &Node[T]{value: v}
	n.next.Store(next)
	return n
}

// Value returns the stored value.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces the stored value.
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// Next returns the following node, or nil at the end of the chain.
func (n *Node[T]) Next() *Node[T] {
	return n.next.Load()
}

// SetNext replaces the forward link.
func (n *Node[T]) SetNext(next *Node[T]) {
	n.next.Store(next)
}
