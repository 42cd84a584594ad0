// Package benchmark drives repeated solver runs over one board, aggregates
// timing statistics and compares algorithms, optionally fanning work out
// across independent workers.
package benchmark

import (
	"fmt"
	"runtime"

	"github.com/kwyshell/sudoku/logger"
	"github.com/rs/zerolog"
)

// Option defines option for altering the behavior of a benchmark run. See the
// descriptions of functions returning instances of this type for implemented
// options.
type Option func(*Config) error

// Config is the benchmark configuration with the options applied.
type Config struct {
	Runs       int            // timed runs; per worker in multithreaded mode
	WarmupRuns int            // discarded runs before timing; -1 = min(2, Runs/5)
	NumWorkers int            // workers in multithreaded mode
	Verbose    bool           // per-run progress logging
	Logger     zerolog.Logger // defaults to the module logger
}

// WithRuns sets the number of timed runs. In multithreaded mode every worker
// performs this many runs.
func WithRuns(runs int) Option {
	return func(cfg *Config) error {
		if runs <= 0 {
			return fmt.Errorf("invalid number of runs: %d", runs)
		}
		cfg.Runs = runs
		return nil
	}
}

// WithWarmupRuns sets the number of discarded warmup runs. If not set, the
// warmup defaults to min(2, runs/5).
func WithWarmupRuns(warmup int) Option {
	return func(cfg *Config) error {
		if warmup < 0 {
			return fmt.Errorf("invalid number of warmup runs: %d", warmup)
		}
		cfg.WarmupRuns = warmup
		return nil
	}
}

// WithNumWorkers sets the number of parallel workers for multithreaded runs.
// 0 selects runtime.NumCPU().
func WithNumWorkers(workers int) Option {
	return func(cfg *Config) error {
		if workers < 0 {
			return fmt.Errorf("invalid number of workers: %d", workers)
		}
		if workers == 0 {
			workers = runtime.NumCPU()
		}
		if workers > 512 {
			// avoid saturating the runtime scheduler
			workers = 512
		}
		cfg.NumWorkers = workers
		return nil
	}
}

// WithVerbose enables per-run progress logging.
func WithVerbose(v bool) Option {
	return func(cfg *Config) error {
		cfg.Verbose = v
		return nil
	}
}

// WithLogger specifies a zerolog.Logger as the destination for benchmark
// logs. By default, uses the module logger. zerolog.Nop() will disable
// logging.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *Config) error {
		cfg.Logger = l
		return nil
	}
}

// NewConfig returns a default Config with the given options applied.
func NewConfig(opts ...Option) (Config, error) {
	cfg := Config{
		Runs:       10,
		WarmupRuns: -1,
		NumWorkers: 1,
		Logger:     logger.Logger(),
	}
	for _, option := range opts {
		if err := option(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func (cfg *Config) effectiveWarmup() int {
	if cfg.WarmupRuns >= 0 {
		return cfg.WarmupRuns
	}
	warmup := cfg.Runs / 5
	if warmup > 2 {
		warmup = 2
	}
	return warmup
}
