package demo

import (
	"context"
	"math/rand/v2"

	"github.com/randomizedcoder/twolockq/internal/queue"
)

// Producer enqueues pseudo-random values and remembers what it sent.
type Producer struct {
	q       queue.Queue[int]
	rng     *rand.Rand
	items   int
	modulus int
	values  []int
}

// NewProducer creates a Producer that will enqueue items values in
// [0, modulus) drawn from a generator seeded with seed and stream.
func NewProducer(q queue.Queue[int], items, modulus int, seed, stream uint64) *Producer {
	return &Producer{
		q:       q,
		rng:     rand.New(rand.NewPCG(seed, stream)),
		items:   items,
		modulus: modulus,
		values:  make([]int, 0, items),
	}
}

// Produce enqueues the values. It stops early if ctx is done.
func (p *Producer) Produce(ctx context.Context) error {
	for i := 0; i < p.items; i++ {
		if i%1024 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		v := p.rng.IntN(p.modulus)
		p.values = append(p.values, v)
		p.q.Enqueue(v)
	}
	return nil
}

// Sum returns the total of the values enqueued so far.
// Call it only after Produce has returned.
func (p *Producer) Sum() int64 {
	var sum int64
	for _, v := range p.values {
		sum += int64(v)
	}
	return sum
}

// Count returns how many values were enqueued.
func (p *Producer) Count() int64 {
	return int64(len(p.values))
}
