package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/randomizedcoder/twolockq/internal/queue"
)

// waitPoll is how often DequeueWait re-polls a queue that cannot block.
const waitPoll = time.Millisecond

// InstrumentedQueue wraps a queue.Queue and records every operation.
type InstrumentedQueue[T any] struct {
	inner queue.Queue[T]
	m     *QueueMetrics
}

// Instrument wraps q so its operations update m.
func Instrument[T any](q queue.Queue[T], m *QueueMetrics) *InstrumentedQueue[T] {
	return &InstrumentedQueue[T]{inner: q, m: m}
}

// Enqueue appends v to the wrapped queue.
func (q *InstrumentedQueue[T]) Enqueue(v T) {
	start := time.Now()
	q.inner.Enqueue(v)
	q.m.OpDuration.WithLabelValues("enqueue").Observe(time.Since(start).Seconds())
	q.m.Enqueued.Inc()
}

// Dequeue removes the front value from the wrapped queue.
func (q *InstrumentedQueue[T]) Dequeue() (T, error) {
	start := time.Now()
	v, err := q.inner.Dequeue()
	q.m.OpDuration.WithLabelValues("dequeue").Observe(time.Since(start).Seconds())
	q.record("dequeue", err)
	return v, err
}

// Peek returns the front value of the wrapped queue.
func (q *InstrumentedQueue[T]) Peek() (T, error) {
	start := time.Now()
	v, err := q.inner.Peek()
	q.m.OpDuration.WithLabelValues("peek").Observe(time.Since(start).Seconds())
	if errors.Is(err, queue.ErrEmpty) {
		q.m.EmptyPolls.WithLabelValues("peek").Inc()
	}
	return v, err
}

// IsEmpty reports the wrapped queue's emptiness snapshot.
func (q *InstrumentedQueue[T]) IsEmpty() bool {
	return q.inner.IsEmpty()
}

// DequeueWait blocks until a value is available or ctx is done. If the
// wrapped queue has no blocking dequeue, it is polled every millisecond.
func (q *InstrumentedQueue[T]) DequeueWait(ctx context.Context) (T, error) {
	if w, ok := q.inner.(queue.Waiter[T]); ok {
		start := time.Now()
		v, err := w.DequeueWait(ctx)
		q.m.OpDuration.WithLabelValues("dequeue_wait").Observe(time.Since(start).Seconds())
		if err == nil {
			q.m.Dequeued.Inc()
		}
		return v, err
	}

	ticker := time.NewTicker(waitPoll)
	defer ticker.Stop()
	for {
		v, err := q.Dequeue()
		if !errors.Is(err, queue.ErrEmpty) {
			return v, err
		}
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (q *InstrumentedQueue[T]) record(op string, err error) {
	switch {
	case err == nil:
		q.m.Dequeued.Inc()
	case errors.Is(err, queue.ErrEmpty):
		q.m.EmptyPolls.WithLabelValues(op).Inc()
	}
}
