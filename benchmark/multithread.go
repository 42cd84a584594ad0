package benchmark

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kwyshell/sudoku/board"
	"github.com/kwyshell/sudoku/solver"
)

// WorkerResult is the benchmark outcome of one worker.
type WorkerResult struct {
	Worker int
	Result Result
}

// MultithreadResult aggregates a multithreaded benchmark. Every worker owns
// its own solver instance and board copy and performs Config.Runs timed runs;
// the wall time spans all workers running concurrently, so Speedup is the
// achieved parallelism (sum of per-worker busy time over wall time).
type MultithreadResult struct {
	Algorithm        string
	NumWorkers       int
	WorkerResults    []WorkerResult
	TotalRuns        int
	Completed        int
	WallTimeMs       float64
	ThroughputPerSec float64 // completed runs per second of wall time
	Speedup          float64
	Aggregate        Stats // over all runs of all workers
}

// RunMultithreaded executes a benchmark of the given algorithm over b with
// Config.NumWorkers independent workers. The shared board is only ever read;
// each worker constructs its own solver and its own copy, so no
// synchronization beyond the final join is needed.
func RunMultithreaded(b *board.Board, id solver.ID, opts ...Option) (MultithreadResult, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return MultithreadResult{}, err
	}
	if b == nil {
		return MultithreadResult{}, ErrNoBoard
	}
	// fail fast on an unknown algorithm before spawning workers
	probe, err := solver.New(id)
	if err != nil {
		return MultithreadResult{}, err
	}

	if cfg.Verbose {
		cfg.Logger.Info().
			Str("algorithm", probe.Name()).
			Int("workers", cfg.NumWorkers).
			Int("runsPerWorker", cfg.Runs).
			Msg("multithreaded benchmark starting")
	}

	workers := make([]WorkerResult, cfg.NumWorkers)
	start := time.Now()
	var g errgroup.Group
	for w := 0; w < cfg.NumWorkers; w++ {
		g.Go(func() error {
			s, err := solver.New(id)
			if err != nil {
				return err
			}
			own, err := board.New(b.Grid(), b.Dimension())
			if err != nil {
				return err
			}
			workerCfg := cfg
			workerCfg.Verbose = false
			workers[w] = WorkerResult{Worker: w, Result: runSerial(own, s, &workerCfg)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return MultithreadResult{}, err
	}
	wallMs := float64(time.Since(start).Nanoseconds()) / 1e6

	res := MultithreadResult{
		Algorithm:     probe.Name(),
		NumWorkers:    cfg.NumWorkers,
		WorkerResults: workers,
		WallTimeMs:    wallMs,
	}
	var allTimes []float64
	busyMs := 0.0
	for _, wr := range workers {
		res.TotalRuns += wr.Result.Runs
		res.Completed += wr.Result.Completed
		busyMs += wr.Result.Stats.TotalMs
		allTimes = append(allTimes, wr.Result.Times...)
	}
	res.Aggregate = computeStats(allTimes)
	if wallMs > 0 {
		res.ThroughputPerSec = float64(res.Completed) / (wallMs / 1000.0)
		res.Speedup = busyMs / wallMs
	}

	if cfg.Verbose {
		cfg.Logger.Info().
			Str("algorithm", res.Algorithm).
			Float64("throughput", res.ThroughputPerSec).
			Float64("speedup", res.Speedup).
			Msg("multithreaded benchmark done")
	}
	return res, nil
}
