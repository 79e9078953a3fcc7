package runflag

import "context"

// ContextFlag derives a cancellable context and reports Running() until
// it is cancelled, either by Stop or by the parent.
//
// Use it when the worker also blocks on something that takes a context,
// such as TwoLockQueue.DequeueWait: Stop then wakes the blocked call.
type ContextFlag struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewContext creates a ContextFlag from a parent context.
func NewContext(parent context.Context) *ContextFlag {
	ctx, cancel := context.WithCancel(parent)
	return &ContextFlag{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Running returns false once the context is done.
//
// This performs a non-blocking select on ctx.Done().
func (c *ContextFlag) Running() bool {
	select {
	case <-c.ctx.Done():
		return false
	default:
		return true
	}
}

// Stop cancels the context.
func (c *ContextFlag) Stop() {
	c.cancel()
}

// Context returns the context that Stop cancels.
func (c *ContextFlag) Context() context.Context {
	return c.ctx
}
