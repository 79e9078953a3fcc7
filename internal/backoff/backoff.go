// Package backoff provides retry pauses for busy-poll drain loops.
//
// This package offers two implementations of the Backoff interface:
//   - Fixed: Sleep a fixed interval on every empty poll
//   - Spin: Yield the processor N-1 times, sleep on the Nth
//
// A consumer calls Wait after a poll finds nothing and Reset after a poll
// succeeds.
package backoff

import "time"

// Backoff paces a polling loop.
//
// Implementations are used by a single goroutine and are not safe for
// concurrent use.
type Backoff interface {
	// Wait pauses before the next poll.
	Wait()

	// Reset is called after a successful poll.
	Reset()
}

// DefaultInterval is the sleep a consumer takes after finding the queue
// empty.
const DefaultInterval = 100 * time.Millisecond
