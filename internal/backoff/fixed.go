package backoff

import "time"

// Fixed sleeps the same interval on every Wait.
type Fixed struct {
	interval time.Duration
}

// NewFixed creates a Fixed backoff. A non-positive interval falls back to
// DefaultInterval.
func NewFixed(interval time.Duration) *Fixed {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Fixed{interval: interval}
}

// Wait sleeps for the interval.
func (f *Fixed) Wait() {
	time.Sleep(f.interval)
}

// Reset is a no-op for Fixed (no state to clear).
func (f *Fixed) Reset() {}
