// Package board defines the puzzle data model: an N×N grid with R×C boxes,
// immutable after construction. Both solving engines read it and operate on
// private working copies; a Board handed out is never mutated.
package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidShape is returned when the raw grid is not Size×Size.
	ErrInvalidShape = errors.New("grid shape does not match dimension")
	// ErrInvalidDimension is returned when BoxRows*BoxCols != Size.
	ErrInvalidDimension = errors.New("box dimensions are inconsistent with size")
	// ErrValueOutOfRange is returned when a cell holds a value outside [0, Size].
	ErrValueOutOfRange = errors.New("cell value out of range")
)

// Dimension describes the geometry of a board: the side length and the shape
// of the boxes tiling it. Invariant: BoxRows*BoxCols == Size.
type Dimension struct {
	Size    int
	BoxRows int
	BoxCols int
}

// DefaultDimension returns the square-box dimension for the given size
// (9 → 3×3 boxes, 16 → 4×4, 25 → 5×5, ...).
func DefaultDimension(size int) (Dimension, error) {
	for r := 1; r*r <= size; r++ {
		if r*r == size {
			return Dimension{Size: size, BoxRows: r, BoxCols: r}, nil
		}
	}
	return Dimension{}, fmt.Errorf("size %d is not a perfect square: %w", size, ErrInvalidDimension)
}

// Valid reports whether the dimension is internally consistent.
func (d Dimension) Valid() bool {
	return d.Size > 0 && d.BoxRows > 0 && d.BoxCols > 0 && d.BoxRows*d.BoxCols == d.Size
}

// BoxIndex returns the index of the box containing cell (r, c), counting boxes
// in row-major order.
func (d Dimension) BoxIndex(r, c int) int {
	return (r/d.BoxRows)*d.BoxRows + c/d.BoxCols
}

// Board is an N×N grid of cell values, 0 meaning empty and 1..N a filled
// value, plus display-only metadata. It is read-only after construction.
type Board struct {
	grid       [][]int
	dim        Dimension
	name       string
	difficulty string
}

// New constructs a Board from a raw grid and a dimension. The grid is
// deep-copied; the input slice stays owned by the caller. It fails on a
// malformed shape, an inconsistent dimension or an out-of-range value, before
// any solve attempt.
func New(grid [][]int, dim Dimension) (*Board, error) {
	if !dim.Valid() {
		return nil, fmt.Errorf("%w: size=%d boxes=%dx%d", ErrInvalidDimension, dim.Size, dim.BoxRows, dim.BoxCols)
	}
	if len(grid) != dim.Size {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrInvalidShape, len(grid), dim.Size)
	}
	cells := make([][]int, dim.Size)
	for r, row := range grid {
		if len(row) != dim.Size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidShape, r, len(row), dim.Size)
		}
		cells[r] = make([]int, dim.Size)
		for c, v := range row {
			if v < 0 || v > dim.Size {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d, want [0,%d]", ErrValueOutOfRange, r, c, v, dim.Size)
			}
			cells[r][c] = v
		}
	}
	return &Board{grid: cells, dim: dim}, nil
}

// NewDefault constructs a Board inferring a square-box dimension from the grid
// side length.
func NewDefault(grid [][]int) (*Board, error) {
	dim, err := DefaultDimension(len(grid))
	if err != nil {
		return nil, err
	}
	return New(grid, dim)
}

// WithName returns a copy of the board carrying a display name.
func (b *Board) WithName(name string) *Board {
	nb := *b
	nb.name = name
	return &nb
}

// WithDifficulty returns a copy of the board carrying a difficulty label.
func (b *Board) WithDifficulty(label string) *Board {
	nb := *b
	nb.difficulty = label
	return &nb
}

// Name returns the display name, if any.
func (b *Board) Name() string { return b.name }

// Difficulty returns the difficulty label, if any.
func (b *Board) Difficulty() string { return b.difficulty }

// Size returns the side length N.
func (b *Board) Size() int { return b.dim.Size }

// Dimension returns the board geometry.
func (b *Board) Dimension() Dimension { return b.dim }

// Get returns the value at (r, c); 0 means empty.
func (b *Board) Get(r, c int) int { return b.grid[r][c] }

// Grid returns a deep copy of the cell values.
func (b *Board) Grid() [][]int {
	out := make([][]int, len(b.grid))
	for r, row := range b.grid {
		out[r] = make([]int, len(row))
		copy(out[r], row)
	}
	return out
}

// CountEmpty returns the number of empty cells.
func (b *Board) CountEmpty() int {
	n := 0
	for _, row := range b.grid {
		for _, v := range row {
			if v == 0 {
				n++
			}
		}
	}
	return n
}

// FillRatio returns filled/N².
func (b *Board) FillRatio() float64 {
	total := b.dim.Size * b.dim.Size
	return float64(total-b.CountEmpty()) / float64(total)
}

// IsValid reports whether no row, column or box contains a duplicate nonzero
// value. An empty board is valid.
func (b *Board) IsValid() bool {
	n := b.dim.Size
	rows := make([]bool, (n+1)*n)
	cols := make([]bool, (n+1)*n)
	boxes := make([]bool, (n+1)*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := b.grid[r][c]
			if v == 0 {
				continue
			}
			bx := b.dim.BoxIndex(r, c)
			if rows[r*(n+1)+v] || cols[c*(n+1)+v] || boxes[bx*(n+1)+v] {
				return false
			}
			rows[r*(n+1)+v] = true
			cols[c*(n+1)+v] = true
			boxes[bx*(n+1)+v] = true
		}
	}
	return true
}

// String renders the grid with box separators, for diagnostics and tests.
func (b *Board) String() string {
	var sb strings.Builder
	n := b.dim.Size
	width := 1
	if n > 9 {
		width = 2
	}
	for r := 0; r < n; r++ {
		if r > 0 && r%b.dim.BoxRows == 0 {
			sb.WriteString(strings.Repeat("-", (width+1)*n+2*(n/b.dim.BoxCols-1)))
			sb.WriteByte('\n')
		}
		for c := 0; c < n; c++ {
			if c > 0 && c%b.dim.BoxCols == 0 {
				sb.WriteString("| ")
			}
			if v := b.grid[r][c]; v == 0 {
				fmt.Fprintf(&sb, "%*s ", width, ".")
			} else {
				fmt.Fprintf(&sb, "%*d ", width, v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
