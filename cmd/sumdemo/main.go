// Command sumdemo runs producers and consumers against a TwoLockQueue and
// checks the consumers' total matches the producers'.
//
// Settings come from SUMDEMO_* environment variables or a .env file.
//
// Usage:
//
//	SUMDEMO_CONSUMERS=8 SUMDEMO_ITEMS=1000000 go run ./cmd/sumdemo
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/randomizedcoder/twolockq/internal/demo"
	"github.com/randomizedcoder/twolockq/internal/logging"
	"github.com/randomizedcoder/twolockq/internal/metrics"
	"github.com/randomizedcoder/twolockq/internal/queue"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sumdemo: config: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Logging())
	if err != nil {
		fmt.Fprintf(os.Stderr, "sumdemo: logger: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}

	fmt.Printf("Producer sum: %d\n", report.ProducerSum)
	fmt.Printf("Consumers sum: %d\n", report.ConsumerSum)

	if !report.Match() {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, logger zerolog.Logger) (demo.Report, error) {
	var q queue.Queue[int] = queue.NewTwoLock[int]()

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		q = metrics.Instrument(q, metrics.NewQueueMetrics(reg, "sumdemo"))

		srv := &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		}
		go func() {
			logger.Info().Str("address", cfg.MetricsAddr).Msg("starting metrics server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
		defer srv.Close() //nolint:errcheck
	}

	return demo.Run(ctx, cfg.Demo(), q, logger)
}
