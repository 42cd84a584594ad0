package benchmark

import (
	"errors"
	"fmt"
	"time"

	"github.com/kwyshell/sudoku/board"
	"github.com/kwyshell/sudoku/solver"
)

// ErrNoBoard is returned when a benchmark is started without a board.
var ErrNoBoard = errors.New("no board provided")

// Result aggregates one single-threaded benchmark: warmup runs are discarded,
// every timed run solves the same board with fresh per-call search state (the
// engines keep no state between calls, so runs cannot memoize each other).
type Result struct {
	Algorithm  string
	Runs       int
	Completed  int // runs that returned a solution
	WarmupRuns int
	Times      []float64 // per-run wall time, milliseconds
	Stats      Stats
	First      solver.SolveResult // result of the first timed run
}

// Run executes a single-threaded benchmark of s over b.
func Run(b *board.Board, s solver.Solver, opts ...Option) (Result, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return Result{}, err
	}
	if b == nil {
		return Result{}, ErrNoBoard
	}
	return runSerial(b, s, &cfg), nil
}

func runSerial(b *board.Board, s solver.Solver, cfg *Config) Result {
	log := cfg.Logger
	warmup := cfg.effectiveWarmup()
	if cfg.Verbose {
		log.Info().
			Str("algorithm", s.Name()).
			Int("runs", cfg.Runs).
			Int("warmup", warmup).
			Msg("benchmark starting")
	}

	for i := 0; i < warmup; i++ {
		s.Solve(b)
	}

	res := Result{
		Algorithm:  s.Name(),
		Runs:       cfg.Runs,
		WarmupRuns: warmup,
		Times:      make([]float64, 0, cfg.Runs),
	}
	for i := 0; i < cfg.Runs; i++ {
		start := time.Now()
		sr := s.Solve(b)
		elapsed := float64(time.Since(start).Nanoseconds()) / 1e6
		res.Times = append(res.Times, elapsed)
		if sr.Solved {
			res.Completed++
		}
		if i == 0 {
			res.First = sr
		}
		if cfg.Verbose {
			log.Debug().
				Int("run", i+1).
				Str("time", fmt.Sprintf("%.3fms", elapsed)).
				Bool("solved", sr.Solved).
				Msg("benchmark run")
		}
	}
	res.Stats = computeStats(res.Times)
	if cfg.Verbose {
		log.Info().
			Str("algorithm", s.Name()).
			Str("avg", fmt.Sprintf("%.3fms", res.Stats.AvgMs)).
			Msg("benchmark done")
	}
	return res
}
