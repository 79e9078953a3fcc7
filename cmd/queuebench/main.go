// Command queuebench compares linked queue throughput.
//
// The first pass runs enqueue + dequeue on one goroutine. The second runs
// -producers producer and -consumers consumer goroutines through a shared
// queue.
//
// Usage:
//
//	go run ./cmd/queuebench -n 10000000 -producers 2 -consumers 4
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/randomizedcoder/twolockq/internal/queue"
)

var errTooFewIterations = errors.New("-n must be at least -producers so every producer enqueues an item")

// options holds the command-line settings.
type options struct {
	iterations int
	producers  int
	consumers  int
	size       int
}

// validate clamps the goroutine counts and the channel size to 1 and
// rejects an iteration count that would leave the per-op figures undefined.
func (o *options) validate() error {
	if o.producers < 1 {
		o.producers = 1
	}
	if o.consumers < 1 {
		o.consumers = 1
	}
	if o.size < 1 {
		o.size = 1
	}
	if o.iterations < o.producers {
		return fmt.Errorf("%w (n=%d, producers=%d)", errTooFewIterations, o.iterations, o.producers)
	}
	return nil
}

func main() {
	var opts options
	flag.IntVar(&opts.iterations, "n", 10_000_000, "number of iterations")
	flag.IntVar(&opts.producers, "producers", 2, "producer goroutines for the concurrent pass")
	flag.IntVar(&opts.consumers, "consumers", 4, "consumer goroutines for the concurrent pass")
	flag.IntVar(&opts.size, "size", 1024, "buffer size of the channel baseline")
	flag.Parse()

	if err := opts.validate(); err != nil {
		fmt.Fprintln(os.Stderr, "queuebench:", err)
		os.Exit(2)
	}

	fmt.Printf("Benchmarking linked queues (%d iterations)\n", opts.iterations)
	fmt.Println("─────────────────────────────────────────────────")

	// Single goroutine: enqueue + dequeue per iteration
	linked := queue.NewLinked[int]()
	start := time.Now()
	for i := 0; i < opts.iterations; i++ {
		linked.Enqueue(i)
		_, _ = linked.Dequeue()
	}
	linkedDur := time.Since(start)

	twoLock := queue.NewTwoLock[int]()
	start = time.Now()
	for i := 0; i < opts.iterations; i++ {
		twoLock.Enqueue(i)
		_, _ = twoLock.Dequeue()
	}
	twoLockDur := time.Since(start)

	ch := make(chan int, opts.size)
	start = time.Now()
	for i := 0; i < opts.iterations; i++ {
		ch <- i
		<-ch
	}
	chDur := time.Since(start)

	fmt.Printf("\nSingle goroutine (enqueue + dequeue per iteration):\n")
	report("LinkedQueue", linkedDur, opts.iterations)
	report("TwoLockQueue", twoLockDur, opts.iterations)
	report("Channel", chDur, opts.iterations)
	fmt.Printf("\n  Lock overhead: %.2fx vs LinkedQueue\n", perOp(twoLockDur, opts.iterations)/perOp(linkedDur, opts.iterations))

	// Concurrent: producers and consumers share one queue
	perProducer := opts.iterations / opts.producers
	total := perProducer * opts.producers

	twoLockMP := concurrentTwoLock(opts.producers, opts.consumers, perProducer)
	chMP := concurrentChannel(opts.producers, opts.consumers, perProducer, opts.size)

	fmt.Printf("\nConcurrent (%d producers, %d consumers, %d items):\n", opts.producers, opts.consumers, total)
	report("TwoLockQueue", twoLockMP, total)
	report("Channel", chMP, total)
}

func concurrentTwoLock(producers, consumers, perProducer int) time.Duration {
	q := queue.NewTwoLock[int]()
	total := int64(producers * perProducer)
	var consumed atomic.Int64

	start := time.Now()
	var wg sync.WaitGroup
	for c := 0; c < consumers; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for consumed.Load() < total {
				if _, err := q.Dequeue(); err == nil {
					consumed.Add(1)
				}
			}
		}()
	}
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue(i)
			}
		}()
	}
	wg.Wait()
	return time.Since(start)
}

func concurrentChannel(producers, consumers, perProducer, size int) time.Duration {
	ch := make(chan int, size)

	start := time.Now()
	var cwg sync.WaitGroup
	for c := 0; c < consumers; c++ {
		cwg.Add(1)
		go func() {
			defer cwg.Done()
			for range ch {
			}
		}()
	}
	var pwg sync.WaitGroup
	for p := 0; p < producers; p++ {
		pwg.Add(1)
		go func() {
			defer pwg.Done()
			for i := 0; i < perProducer; i++ {
				ch <- i
			}
		}()
	}
	pwg.Wait()
	close(ch)
	cwg.Wait()
	return time.Since(start)
}

func perOp(d time.Duration, n int) float64 {
	return float64(d.Nanoseconds()) / float64(n)
}

func report(name string, d time.Duration, n int) {
	ns := perOp(d, n)
	fmt.Printf("  %-14s %12v  %8.2f ns/op  %8.2f M ops/sec\n", name, d, ns, 1000/ns)
}
