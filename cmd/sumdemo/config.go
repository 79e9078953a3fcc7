package main

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/randomizedcoder/twolockq/internal/demo"
	"github.com/randomizedcoder/twolockq/internal/logging"
)

// envPrefix namespaces every setting, e.g. SUMDEMO_CONSUMERS.
const envPrefix = "SUMDEMO"

// Config is the sumdemo configuration, read from the environment.
type Config struct {
	Producers    int           `envconfig:"PRODUCERS" default:"1"`
	Consumers    int           `envconfig:"CONSUMERS" default:"4"`
	Items        int           `envconfig:"ITEMS" default:"100000"`
	Modulus      int           `envconfig:"MODULUS" default:"10"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"100ms"`
	Seed         uint64        `envconfig:"SEED" default:"0"`
	Blocking     bool          `envconfig:"BLOCKING" default:"false"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// MetricsAddr serves Prometheus metrics when set, e.g. ":9090".
	MetricsAddr string `envconfig:"METRICS_ADDR" default:""`
}

// LoadConfig reads an optional .env file and then the environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// A missing file is fine; the environment alone is enough.
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid.
// Log setting errors wrap the logging package sentinels.
func ValidateConfig(cfg *Config) error {
	if err := cfg.Logging().Validate(); err != nil {
		return fmt.Errorf("log settings: %w", err)
	}
	return cfg.Demo().Validate()
}

// Demo returns the run parameters.
func (c *Config) Demo() demo.Config {
	return demo.Config{
		Producers:    c.Producers,
		Consumers:    c.Consumers,
		Items:        c.Items,
		Modulus:      c.Modulus,
		PollInterval: c.PollInterval,
		Seed:         c.Seed,
		Blocking:     c.Blocking,
	}
}

// Logging returns the logger settings.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.Format = c.LogFormat
	cfg.Component = "sumdemo"
	return cfg
}
