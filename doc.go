// Package sudoku solves generalized Sudoku-family puzzles (N×N grids with R×C
// boxes, N ∈ {9, 16, 25, ...}) with two independent engines behind one solver
// contract, and benchmarks them under single- and multi-threaded execution.
//
// The engines are:
//   - Dancing Links (DLX): Knuth's Algorithm X over an exact-cover matrix
//   - Backtracking: depth-first search with bitset constraint propagation
//
// See the board, solver and benchmark packages.
package sudoku

import "github.com/kwyshell/sudoku/solver"

// Algorithms returns the list of implemented solving algorithms.
func Algorithms() []solver.ID {
	return solver.Implemented()
}
