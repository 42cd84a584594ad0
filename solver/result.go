package solver

// SolveResult is the outcome of one Solve call: the solution grid when
// Solved, the algorithm name, and the search statistics. It is plain
// structured data for callers to persist or format; produced once and
// immutable after return.
//
// Iterations and Backtracks are engine-specific: the DLX engine counts
// column-choice expansions and failed-branch rewinds, the backtracking engine
// counts cell-assignment attempts and undone assignments.
type SolveResult struct {
	Solved       bool
	Solution     [][]int // valid only if Solved
	Algorithm    string
	TimeMs       float64
	Iterations   int64
	Backtracks   int64
	ErrorMessage string
}

func failure(algorithm, message string) SolveResult {
	return SolveResult{Algorithm: algorithm, ErrorMessage: message}
}
