package demo_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/twolockq/internal/demo"
	"github.com/randomizedcoder/twolockq/internal/metrics"
	"github.com/randomizedcoder/twolockq/internal/queue"
)

func fastConfig() demo.Config {
	cfg := demo.DefaultConfig()
	cfg.Items = 5000
	cfg.PollInterval = time.Millisecond
	cfg.Seed = 42
	return cfg
}

func TestRun_Polling(t *testing.T) {
	report, err := demo.Run(context.Background(), fastConfig(), queue.NewTwoLock[int](), zerolog.Nop())
	require.NoError(t, err)

	assert.True(t, report.Match(), "producer %d/%d vs consumer %d/%d",
		report.ProducerSum, report.ProducerCount, report.ConsumerSum, report.ConsumerCount)
	assert.Equal(t, int64(5000), report.ConsumerCount)
	assert.Len(t, report.Consumers, 4)
}

func TestRun_Blocking(t *testing.T) {
	cfg := fastConfig()
	cfg.Blocking = true

	report, err := demo.Run(context.Background(), cfg, queue.NewTwoLock[int](), zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, report.Match())
	assert.Equal(t, int64(5000), report.ConsumerCount)
}

// TestRun_TwoProducersFourConsumers checks conservation with the
// 2 x 1000 / 4 topology.
func TestRun_TwoProducersFourConsumers(t *testing.T) {
	cfg := fastConfig()
	cfg.Producers = 2
	cfg.Items = 1000

	report, err := demo.Run(context.Background(), cfg, queue.NewTwoLock[int](), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, int64(2000), report.ProducerCount)
	assert.Equal(t, int64(2000), report.ConsumerCount)
	assert.Equal(t, report.ProducerSum, report.ConsumerSum)
}

func TestRun_Instrumented(t *testing.T) {
	m := metrics.NewQueueMetrics(prometheus.NewRegistry(), "demo")
	q := metrics.Instrument[int](queue.NewTwoLock[int](), m)

	cfg := fastConfig()
	cfg.Blocking = true
	report, err := demo.Run(context.Background(), cfg, q, zerolog.Nop())
	require.NoError(t, err)
	require.True(t, report.Match())

	assert.Equal(t, float64(cfg.Items), testutil.ToFloat64(m.Enqueued))
	assert.Equal(t, float64(cfg.Items), testutil.ToFloat64(m.Dequeued))
}

func TestRun_Deterministic(t *testing.T) {
	cfg := fastConfig()
	cfg.Items = 200

	a, err := demo.Run(context.Background(), cfg, queue.NewTwoLock[int](), zerolog.Nop())
	require.NoError(t, err)
	b, err := demo.Run(context.Background(), cfg, queue.NewTwoLock[int](), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, a.ProducerSum, b.ProducerSum, "same seed should produce same values")
}

func TestRun_ZeroItems(t *testing.T) {
	cfg := fastConfig()
	cfg.Items = 0

	report, err := demo.Run(context.Background(), cfg, queue.NewTwoLock[int](), zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, report.Match())
	assert.Zero(t, report.ConsumerCount)
}

func TestRun_BlockingNeedsWaiter(t *testing.T) {
	cfg := fastConfig()
	cfg.Blocking = true

	_, err := demo.Run(context.Background(), cfg, queue.NewLinked[int](), zerolog.Nop())
	assert.Error(t, err)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := fastConfig()
	_, err := demo.Run(ctx, cfg, queue.NewTwoLock[int](), zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*demo.Config)
		want   error
	}{
		{"producers", func(c *demo.Config) { c.Producers = 0 }, demo.ErrInvalidProducers},
		{"consumers", func(c *demo.Config) { c.Consumers = -1 }, demo.ErrInvalidConsumers},
		{"items", func(c *demo.Config) { c.Items = -5 }, demo.ErrInvalidItems},
		{"modulus", func(c *demo.Config) { c.Modulus = 0 }, demo.ErrInvalidModulus},
		{"poll", func(c *demo.Config) { c.PollInterval = 0 }, demo.ErrInvalidPollInterval},
	}

	require.NoError(t, demo.DefaultConfig().Validate())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := demo.DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)

			_, err := demo.Run(context.Background(), cfg, queue.NewTwoLock[int](), zerolog.Nop())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
