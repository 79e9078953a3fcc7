// Package demo drives a queue with concurrent producers and consumers and
// checks that everything produced was consumed exactly once.
//
// Termination follows a simple rule: once every producer has returned,
// Run polls IsEmpty and stops the consumers the first time it reports
// true. IsEmpty is only a snapshot, but a consumer that has already
// removed the last value still records it before it sees the stop
// request, so the totals stay exact.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/twolockq/internal/backoff"
	"github.com/randomizedcoder/twolockq/internal/queue"
)

// ConsumerResult is what one consumer drained.
type ConsumerResult struct {
	Sum   int64
	Count int64
}

// Report summarizes a run.
type Report struct {
	ProducerSum   int64
	ProducerCount int64
	ConsumerSum   int64
	ConsumerCount int64
	Consumers     []ConsumerResult
	Elapsed       time.Duration
}

// Match reports whether consumers received exactly what producers sent.
func (r Report) Match() bool {
	return r.ProducerSum == r.ConsumerSum && r.ProducerCount == r.ConsumerCount
}

// Run executes one producer/consumer round against q.
//
// Blocking mode needs q to implement queue.Waiter. If ctx is cancelled,
// Run stops the consumers, waits for them and returns ctx.Err().
func Run(ctx context.Context, cfg Config, q queue.Queue[int], log zerolog.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("demo config: %w", err)
	}

	var waiter queue.Waiter[int]
	if cfg.Blocking {
		w, ok := q.(queue.Waiter[int])
		if !ok {
			return Report{}, fmt.Errorf("demo: blocking mode needs a queue.Waiter, got %T", q)
		}
		waiter = w
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	start := time.Now()
	log.Info().
		Int("producers", cfg.Producers).
		Int("consumers", cfg.Consumers).
		Int("items", cfg.Items).
		Int("modulus", cfg.Modulus).
		Bool("blocking", cfg.Blocking).
		Uint64("seed", seed).
		Msg("starting run")

	consumers := make([]*Consumer, cfg.Consumers)
	var cg errgroup.Group
	for i := range consumers {
		if waiter != nil {
			consumers[i] = NewBlockingConsumer(ctx, waiter)
		} else {
			consumers[i] = NewConsumer(q, backoff.NewFixed(cfg.PollInterval))
		}
		c := consumers[i]
		cg.Go(func() error {
			c.Run()
			return nil
		})
	}

	stopConsumers := func() {
		for _, c := range consumers {
			c.Stop()
		}
		_ = cg.Wait()
	}

	producers := make([]*Producer, cfg.Producers)
	pg, pctx := errgroup.WithContext(ctx)
	for i := range producers {
		p := NewProducer(q, cfg.Items, cfg.Modulus, seed, uint64(i))
		producers[i] = p
		pg.Go(func() error {
			return p.Produce(pctx)
		})
	}

	if err := pg.Wait(); err != nil {
		stopConsumers()
		return Report{}, fmt.Errorf("demo producers: %w", err)
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("producers done")

	if err := waitDrained(ctx, q, cfg.PollInterval); err != nil {
		stopConsumers()
		return Report{}, fmt.Errorf("demo drain: %w", err)
	}
	stopConsumers()

	report := Report{
		Consumers: make([]ConsumerResult, len(consumers)),
		Elapsed:   time.Since(start),
	}
	for _, p := range producers {
		report.ProducerSum += p.Sum()
		report.ProducerCount += p.Count()
	}
	for i, c := range consumers {
		sum, count := c.Result()
		report.Consumers[i] = ConsumerResult{Sum: sum, Count: count}
		report.ConsumerSum += sum
		report.ConsumerCount += count
	}

	event := log.Info()
	if !report.Match() {
		event = log.Error()
	}
	event.
		Int64("producer_sum", report.ProducerSum).
		Int64("consumer_sum", report.ConsumerSum).
		Int64("producer_count", report.ProducerCount).
		Int64("consumer_count", report.ConsumerCount).
		Dur("elapsed", report.Elapsed).
		Msg("run finished")

	return report, nil
}

// waitDrained polls q.IsEmpty every interval until it reports true.
func waitDrained(ctx context.Context, q queue.Queue[int], interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !q.IsEmpty() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
