package queue

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ownerSeq hands out Owner tokens. Zero is never issued.
var ownerSeq atomic.Uint64

// Owner identifies the holder of a GuardedNode's lock.
//
// Goroutines have no identity, so Acquire returns an Owner token and the
// token stands in for the caller. The zero Owner owns nothing. A token is
// valid only until the matching Release.
type Owner struct {
	id uint64
}

// Valid reports whether o was issued by an acquire call.
// A valid token may still be stale.
func (o Owner) Valid() bool {
	return o.id != 0
}

// GuardedNode is a linked cell guarded by its own lock.
//
// Only the current owner may read or write the content or the link; any
// other caller gets an *AccessViolationError immediately instead of
// blocking or seeing stale data.
//
// Acquiring more than one GuardedNode has no ordering protocol. Callers
// holding several nodes must avoid deadlock themselves.
type GuardedNode[T any] struct {
	sem   *semaphore.Weighted
	owner atomic.Uint64

	content T
	next    *GuardedNode[T]
}

// NewGuardedNode creates an unlinked, unowned GuardedNode holding v.
func NewGuardedNode[T any](v T) *GuardedNode[T] {
	return NewGuardedNodeWithNext(nil, v)
}

// NewGuardedNodeWithNext creates an unowned GuardedNode holding v that
// links to next.
func NewGuardedNodeWithNext[T any](next *GuardedNode[T], v T) *GuardedNode[T] {
	return &GuardedNode[T]{
		sem:     semaphore.NewWeighted(1),
		content: v,
		next:    next,
	}
}

// Acquire blocks until the node is free and returns the owner token.
func (n *GuardedNode[T]) Acquire() Owner {
	// Background is never done, so Acquire cannot fail.
	_ = n.sem.Acquire(context.Background(), 1)
	return n.claim()
}

// AcquireContext blocks until the node is free or ctx is done.
func (n *GuardedNode[T]) AcquireContext(ctx context.Context) (Owner, error) {
	if err := n.sem.Acquire(ctx, 1); err != nil {
		return Owner{}, err
	}
	return n.claim(), nil
}

// TryAcquire takes the node if it is free. It never blocks.
func (n *GuardedNode[T]) TryAcquire() (Owner, bool) {
	if !n.sem.TryAcquire(1) {
		return Owner{}, false
	}
	return n.claim(), true
}

// Release gives up ownership. A stale or foreign token is refused and the
// lock is left as it was.
func (n *GuardedNode[T]) Release(o Owner) error {
	if !n.owns(o) {
		return &AccessViolationError{Op: "Release"}
	}
	n.owner.Store(0)
	n.sem.Release(1)
	return nil
}

// With acquires the node, runs fn with the owner token and releases the
// node on every exit path, including a panic in fn.
func (n *GuardedNode[T]) With(fn func(o Owner) error) error {
	o := n.Acquire()
	defer func() { _ = n.Release(o) }()
	return fn(o)
}

// Content returns the stored value.
func (n *GuardedNode[T]) Content(o Owner) (T, error) {
	if !n.owns(o) {
		var zero T
		return zero, &AccessViolationError{Op: "Content"}
	}
	return n.content, nil
}

// SetContent replaces the stored value.
func (n *GuardedNode[T]) SetContent(o Owner, v T) error {
	if !n.owns(o) {
		return &AccessViolationError{Op: "SetContent"}
	}
	n.content = v
	return nil
}

// Next returns the following node.
func (n *GuardedNode[T]) Next(o Owner) (*GuardedNode[T], error) {
	if !n.owns(o) {
		return nil, &AccessViolationError{Op: "Next"}
	}
	return n.next, nil
}

// SetNext replaces the forward link.
func (n *GuardedNode[T]) SetNext(o Owner, next *GuardedNode[T]) error {
	if !n.owns(o) {
		return &AccessViolationError{Op: "SetNext"}
	}
	n.next = next
	return nil
}

func (n *GuardedNode[T]) claim() Owner {
	o := Owner{id: ownerSeq.Add(1)}
	n.owner.Store(o.id)
	return o
}

func (n *GuardedNode[T]) owns(o Owner) bool {
	return o.id != 0 && n.owner.Load() == o.id
}
