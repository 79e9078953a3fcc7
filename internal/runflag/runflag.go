// Package runflag provides stop signals for polling worker loops.
//
// This package offers two implementations of the Flag interface:
//   - AtomicFlag: Single atomic.Bool, the cheapest check
//   - ContextFlag: Backed by context.Context, for workers that also block
//
// A worker checks Running() between attempts and exits once it reports
// false. Stopping is a soft request: work already in progress finishes.
package runflag

// Flag tells a worker loop whether to keep going.
//
// Implementations must be safe for concurrent use:
//   - Multiple goroutines may call Running() concurrently
//   - Stop() may be called concurrently with Running()
type Flag interface {
	// Running returns false once Stop has been called.
	Running() bool

	// Stop asks workers to exit. Safe to call multiple times.
	Stop()
}
