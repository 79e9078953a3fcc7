// Package combined provides interaction benchmarks that run the queues
// inside realistic drain loops.
//
// These benchmarks capture what a consumer actually pays per value: the
// run-flag check, the dequeue and the backoff bookkeeping, and how the
// two-lock queue compares to a channel and to a sharded lock-free ring
// when several producers contend.
package combined
