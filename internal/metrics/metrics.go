// Package metrics instruments queues with Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// QueueMetrics holds the collectors for one named queue.
type QueueMetrics struct {
	// Enqueued counts successful Enqueue calls.
	Enqueued prometheus.Counter

	// Dequeued counts values handed to consumers by Dequeue or DequeueWait.
	Dequeued prometheus.Counter

	// EmptyPolls counts Dequeue and Peek calls that found the queue empty.
	EmptyPolls *prometheus.CounterVec

	// OpDuration measures time spent inside queue operations, lock waits
	// included.
	OpDuration *prometheus.HistogramVec
}

// NewQueueMetrics registers the collectors for queue name on reg.
// A nil reg leaves the collectors unregistered.
func NewQueueMetrics(reg prometheus.Registerer, name string) *QueueMetrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"queue": name}

	return &QueueMetrics{
		Enqueued: factory.NewCounter(prometheus.CounterOpts{
			Name:        "twolockq_enqueued_total",
			Help:        "Total number of values enqueued",
			ConstLabels: labels,
		}),
		Dequeued: factory.NewCounter(prometheus.CounterOpts{
			Name:        "twolockq_dequeued_total",
			Help:        "Total number of values dequeued",
			ConstLabels: labels,
		}),
		EmptyPolls: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "twolockq_empty_polls_total",
			Help:        "Total number of Dequeue or Peek calls that found the queue empty",
			ConstLabels: labels,
		}, []string{"op"}),
		OpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "twolockq_op_duration_seconds",
			Help:        "Time spent in queue operations including lock waits",
			Buckets:     []float64{1e-7, 1e-6, 1e-5, 1e-4, 0.001, 0.01},
			ConstLabels: labels,
		}, []string{"op"}),
	}
}
