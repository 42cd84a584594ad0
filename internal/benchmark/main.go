// Package main internal benchmarks
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"

	"github.com/kwyshell/sudoku/benchmark"
	"github.com/kwyshell/sudoku/internal/puzzles"
	"github.com/kwyshell/sudoku/solver"
)

const benchRuns = 20

var sizes = []int{9, 16} // 25: heavy, enable when profiling the engines

// /!\ internal use /!\
// running it with "trace" will output trace.out file
// else will output average solve times per algorithm, in csv format
func main() {
	mode := "time"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	for _, size := range sizes {
		b, err := puzzles.BySize(size)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		runtime.GC()
		if mode != "trace" {
			cmp, err := benchmark.Compare(b, solver.Implemented(),
				benchmark.WithRuns(benchRuns))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, r := range cmp.Results {
				fmt.Printf("%s,%d,%d,%.4f,%.4f\n",
					r.ID, size, r.Result.Runs, r.Result.Stats.AvgMs, r.Relative)
			}
		} else {
			p := profile.Start(profile.TraceProfile, profile.ProfilePath("."))
			s, _ := solver.New(solver.DLX)
			for i := 0; i < benchRuns; i++ {
				_ = s.Solve(b)
			}
			p.Stop()
		}
	}
}
