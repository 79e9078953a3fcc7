package demo

import (
	"errors"
	"time"

	"github.com/randomizedcoder/twolockq/internal/backoff"
)

// Config validation errors
var (
	ErrInvalidProducers    = errors.New("producers must be positive")
	ErrInvalidConsumers    = errors.New("consumers must be positive")
	ErrInvalidItems        = errors.New("items must not be negative")
	ErrInvalidModulus      = errors.New("modulus must be positive")
	ErrInvalidPollInterval = errors.New("poll interval must be positive")
)

// Config describes one producer/consumer run.
type Config struct {
	// Producers is the number of producer goroutines.
	Producers int
	// Consumers is the number of consumer goroutines.
	Consumers int
	// Items is the number of values each producer enqueues.
	Items int
	// Modulus bounds generated values to [0, Modulus).
	Modulus int
	// PollInterval is both the consumer backoff on an empty queue and the
	// period at which Run checks for the queue to drain.
	PollInterval time.Duration
	// Seed feeds the producers' generators. Zero picks a time-based seed.
	Seed uint64
	// Blocking makes consumers park in DequeueWait instead of polling.
	Blocking bool
}

// DefaultConfig is one producer, four consumers and 100000 values below 10.
func DefaultConfig() Config {
	return Config{
		Producers:    1,
		Consumers:    4,
		Items:        100000,
		Modulus:      10,
		PollInterval: backoff.DefaultInterval,
	}
}

// Validate returns an error if cfg cannot drive a run.
func (c Config) Validate() error {
	if c.Producers <= 0 {
		return ErrInvalidProducers
	}
	if c.Consumers <= 0 {
		return ErrInvalidConsumers
	}
	if c.Items < 0 {
		return ErrInvalidItems
	}
	if c.Modulus <= 0 {
		return ErrInvalidModulus
	}
	if c.PollInterval <= 0 {
		return ErrInvalidPollInterval
	}
	return nil
}
