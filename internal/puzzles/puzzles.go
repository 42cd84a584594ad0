// Package puzzles provides the built-in benchmark boards: a classic hard 9×9,
// a 16×16 with 4×4 boxes and a sparsely seeded 25×25 with 5×5 boxes.
package puzzles

import (
	"fmt"

	"github.com/kwyshell/sudoku/board"
)

// Classic9x9 is the classic hard 9×9 puzzle used as the default benchmark
// board. It has a unique solution (Solution9x9).
func Classic9x9() [][]int {
	return [][]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
}

// Solution9x9 is the unique solution of Classic9x9.
func Solution9x9() [][]int {
	return [][]int{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
}

// Grid16x16 is a hard 16×16 puzzle (4×4 boxes, 77 clues, unique solution).
func Grid16x16() [][]int {
	return [][]int{
		{0, 0, 0, 4, 5, 6, 7, 0, 0, 10, 0, 0, 0, 0, 15, 0},
		{0, 0, 0, 0, 0, 10, 0, 0, 0, 14, 0, 16, 0, 2, 0, 0},
		{0, 10, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 5, 6, 7, 0},
		{0, 14, 15, 0, 1, 0, 0, 4, 5, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 6, 0, 0, 0, 10, 0, 0, 0, 0, 0, 16, 0},
		{6, 0, 8, 0, 0, 0, 0, 0, 0, 0, 0, 15, 2, 0, 4, 0},
		{0, 9, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 6, 5, 8, 0},
		{0, 13, 16, 0, 2, 0, 0, 0, 0, 5, 0, 7, 0, 0, 0, 11},
		{0, 0, 0, 2, 0, 8, 0, 6, 11, 0, 0, 0, 0, 0, 0, 0},
		{7, 0, 5, 0, 11, 12, 9, 10, 0, 0, 0, 0, 0, 0, 1, 0},
		{11, 0, 0, 0, 15, 0, 0, 0, 3, 4, 0, 0, 7, 0, 0, 0},
		{0, 0, 0, 0, 0, 4, 0, 2, 0, 8, 0, 6, 11, 0, 0, 0},
		{0, 0, 2, 0, 0, 7, 0, 5, 12, 11, 0, 0, 0, 0, 14, 0},
		{8, 0, 0, 0, 12, 0, 0, 0, 16, 0, 14, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 16, 0, 14, 0, 4, 0, 0, 0, 0, 7, 0, 0},
		{0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 6, 0, 12, 0, 0, 0},
	}
}

// Grid25x25 is a 25×25 grid (5×5 boxes) with ~85% empty cells, seeded with a
// conflict-free diagonal pattern. Heavy benchmark load.
func Grid25x25() [][]int {
	grid := make([][]int, 25)
	for r := range grid {
		grid[r] = make([]int, 25)
	}
	// base value for each 5-row band; within a band, row i seeds columns
	// i, i+5, ... with values stepping by 5 (mod 25).
	for band := 0; band < 5; band++ {
		for i := 0; i < 5; i++ {
			r := band*5 + i
			base := band + 1 + i*6
			for j := 0; j < 5; j++ {
				v := (base+j*5-1)%25 + 1
				grid[r][i+j*5] = v
			}
		}
	}
	return grid
}

// BySize returns the built-in board for size 9, 16 or 25, labeled with its
// description.
func BySize(size int) (*board.Board, error) {
	var grid [][]int
	switch size {
	case 9:
		grid = Classic9x9()
	case 16:
		grid = Grid16x16()
	case 25:
		grid = Grid25x25()
	default:
		return nil, fmt.Errorf("unsupported test size: %d (supported: 9, 16, 25)", size)
	}
	dim, err := board.DefaultDimension(size)
	if err != nil {
		return nil, err
	}
	b, err := board.New(grid, dim)
	if err != nil {
		return nil, err
	}
	return b.WithName(Description(size)), nil
}

// Description returns a human-readable label for a built-in board size.
func Description(size int) string {
	switch size {
	case 9:
		return "9x9 Classic (3x3 boxes)"
	case 16:
		return "16x16 Extended (4x4 boxes) - 77 clues, hard"
	case 25:
		return "25x25 Mega (5x5 boxes) - Heavy benchmark"
	default:
		return "Unknown"
	}
}
