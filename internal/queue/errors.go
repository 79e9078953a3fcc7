package queue

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by Dequeue and Peek when the queue has no items.
	// It is an expected condition, not a fault.
	ErrEmpty = errors.New("queue: empty")

	// ErrAccessViolation matches every AccessViolationError.
	ErrAccessViolation = errors.New("queue: access violation")
)

// AccessViolationError reports a GuardedNode field access or release by a
// caller that does not currently own the node.
//
// It signals a bug at the call site. The node lock still prevents a data
// race; only the attempted operation is refused.
type AccessViolationError struct {
	Op string
}

func (e *AccessViolationError) Error() string {
	return fmt.Sprintf("queue: %s: caller is not the node owner", e.Op)
}

// Is makes errors.Is(err, ErrAccessViolation) hold.
func (e *AccessViolationError) Is(target error) bool {
	return target == ErrAccessViolation
}
