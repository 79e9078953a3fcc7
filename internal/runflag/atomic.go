package runflag

import "sync/atomic"

// AtomicFlag keeps the stop request in an atomic.Bool.
//
// Running() is a single atomic load, so it is cheap enough to check on
// every iteration of a drain loop.
type AtomicFlag struct {
	stopped atomic.Bool
}

// NewAtomic creates a running AtomicFlag.
func NewAtomic() *AtomicFlag {
	return &AtomicFlag{}
}

// Running returns false once Stop has been called.
func (a *AtomicFlag) Running() bool {
	return !a.stopped.Load()
}

// Stop asks workers to exit.
//
// Safe to call multiple times; subsequent calls are no-ops.
func (a *AtomicFlag) Stop() {
	a.stopped.Store(true)
}
