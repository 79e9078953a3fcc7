package backoff

import (
	"runtime"
	"time"
)

// Spin yields the processor on most empty polls and only sleeps every
// Nth consecutive miss.
//
// This keeps latency low when data arrives shortly after the queue runs
// dry, while still bounding CPU use on a long idle period.
//
// Example: With every=100 and interval=1ms, the first 99 misses each call
// runtime.Gosched and the 100th sleeps 1ms.
type Spin struct {
	interval time.Duration
	every    int
	misses   int
}

// NewSpin creates a Spin backoff that sleeps every N consecutive misses.
//
// Parameters:
//   - interval: How long to sleep on the Nth miss
//   - every: Misses per sleep; values below 1 are treated as 1
func NewSpin(interval time.Duration, every int) *Spin {
	if every < 1 {
		every = 1
	}
	return &Spin{
		interval: interval,
		every:    every,
	}
}

// Wait yields, or sleeps when the miss count reaches a multiple of every.
func (s *Spin) Wait() {
	s.misses++
	if s.misses%s.every != 0 {
		runtime.Gosched()
		return
	}
	time.Sleep(s.interval)
}

// Reset clears the miss count.
func (s *Spin) Reset() {
	s.misses = 0
}
