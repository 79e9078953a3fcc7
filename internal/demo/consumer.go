package demo

import (
	"context"
	"sync/atomic"

	"github.com/randomizedcoder/twolockq/internal/backoff"
	"github.com/randomizedcoder/twolockq/internal/queue"
	"github.com/randomizedcoder/twolockq/internal/runflag"
)

// Consumer drains a queue and keeps a running sum.
//
// A polling Consumer treats queue.ErrEmpty as "no data yet" and backs
// off before retrying. A blocking Consumer parks in DequeueWait. Either
// way it checks its run flag between attempts, so Stop lets the current
// attempt finish.
type Consumer struct {
	q       queue.Queue[int]
	waiter  queue.Waiter[int]
	backoff backoff.Backoff
	flag    runflag.Flag
	ctx     context.Context

	sum   atomic.Int64
	count atomic.Int64
}

// NewConsumer creates a polling Consumer that calls b.Wait after every
// empty poll.
func NewConsumer(q queue.Queue[int], b backoff.Backoff) *Consumer {
	return &Consumer{
		q:       q,
		backoff: b,
		flag:    runflag.NewAtomic(),
		ctx:     context.Background(),
	}
}

// NewBlockingConsumer creates a Consumer that waits on w. Stop, or
// cancelling parent, wakes a parked DequeueWait.
func NewBlockingConsumer(parent context.Context, w queue.Waiter[int]) *Consumer {
	flag := runflag.NewContext(parent)
	return &Consumer{
		waiter: w,
		flag:   flag,
		ctx:    flag.Context(),
	}
}

// Run drains until Stop is called.
func (c *Consumer) Run() {
	if c.waiter != nil {
		c.runBlocking()
		return
	}

	for c.flag.Running() {
		v, err := c.q.Dequeue()
		if err != nil {
			c.backoff.Wait()
			continue
		}
		c.backoff.Reset()
		c.add(v)
	}
}

func (c *Consumer) runBlocking() {
	for c.flag.Running() {
		v, err := c.waiter.DequeueWait(c.ctx)
		if err != nil {
			continue
		}
		c.add(v)
	}
}

func (c *Consumer) add(v int) {
	c.sum.Add(int64(v))
	c.count.Add(1)
}

// Stop asks Run to return after its current attempt.
func (c *Consumer) Stop() {
	c.flag.Stop()
}

// Result returns the sum and number of values consumed so far.
func (c *Consumer) Result() (sum, count int64) {
	return c.sum.Load(), c.count.Load()
}
