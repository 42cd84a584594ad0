package benchmark

import (
	"github.com/kwyshell/sudoku/board"
	"github.com/kwyshell/sudoku/solver"
)

// AlgorithmResult is one algorithm's aggregate in a comparison. Relative is
// the ratio of this algorithm's average time to the fastest algorithm's
// average (1.0 for the fastest itself).
type AlgorithmResult struct {
	ID       solver.ID
	Result   Result
	Relative float64
}

// Comparison reports per-algorithm aggregates side by side, with the fastest
// algorithm's average time as the baseline.
type Comparison struct {
	Results []AlgorithmResult
	Fastest solver.ID
}

// Compare benchmarks each algorithm over b, single-threaded, one after the
// other under the same configuration.
func Compare(b *board.Board, ids []solver.ID, opts ...Option) (Comparison, error) {
	var cmp Comparison
	for _, id := range ids {
		s, err := solver.New(id)
		if err != nil {
			return Comparison{}, err
		}
		res, err := Run(b, s, opts...)
		if err != nil {
			return Comparison{}, err
		}
		cmp.Results = append(cmp.Results, AlgorithmResult{ID: id, Result: res})
	}
	baseline := relativize(cmp.Results)
	cmp.Fastest = baseline
	return cmp, nil
}

func relativize(results []AlgorithmResult) solver.ID {
	if len(results) == 0 {
		return solver.UNKNOWN
	}
	fastest := 0
	for i := range results {
		if results[i].Result.Stats.AvgMs < results[fastest].Result.Stats.AvgMs {
			fastest = i
		}
	}
	base := results[fastest].Result.Stats.AvgMs
	for i := range results {
		if base > 0 {
			results[i].Relative = results[i].Result.Stats.AvgMs / base
		} else {
			results[i].Relative = 1
		}
	}
	return results[fastest].ID
}

// MultithreadAlgorithmResult is one algorithm's aggregate in a multithreaded
// comparison.
type MultithreadAlgorithmResult struct {
	ID       solver.ID
	Result   MultithreadResult
	Relative float64
}

// MultithreadComparison reports per-algorithm multithreaded aggregates side
// by side.
type MultithreadComparison struct {
	Results []MultithreadAlgorithmResult
	Fastest solver.ID
}

// CompareMultithreaded benchmarks each algorithm over b with the configured
// worker count; the algorithms run one after the other, each with its own
// independent worker pool.
func CompareMultithreaded(b *board.Board, ids []solver.ID, opts ...Option) (MultithreadComparison, error) {
	var cmp MultithreadComparison
	for _, id := range ids {
		res, err := RunMultithreaded(b, id, opts...)
		if err != nil {
			return MultithreadComparison{}, err
		}
		cmp.Results = append(cmp.Results, MultithreadAlgorithmResult{ID: id, Result: res})
	}
	if len(cmp.Results) == 0 {
		return cmp, nil
	}
	fastest := 0
	for i := range cmp.Results {
		if cmp.Results[i].Result.Aggregate.AvgMs < cmp.Results[fastest].Result.Aggregate.AvgMs {
			fastest = i
		}
	}
	base := cmp.Results[fastest].Result.Aggregate.AvgMs
	for i := range cmp.Results {
		if base > 0 {
			cmp.Results[i].Relative = cmp.Results[i].Result.Aggregate.AvgMs / base
		} else {
			cmp.Results[i].Relative = 1
		}
	}
	cmp.Fastest = cmp.Results[fastest].ID
	return cmp, nil
}
