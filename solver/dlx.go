package solver

import (
	"time"

	"github.com/kwyshell/sudoku/board"
	"github.com/kwyshell/sudoku/debug"
)

// DLXSolver solves boards as exact-cover problems with Knuth's Algorithm X
// over a dancing-links matrix.
//
// Constraint columns, 4*N*N in total for an N×N board:
//
//	0*N*N .. 1*N*N-1  cell (r,c) has a value
//	1*N*N .. 2*N*N-1  row r has value v
//	2*N*N .. 3*N*N-1  column c has value v
//	3*N*N .. 4*N*N-1  box b has value v
//
// Rows are the candidate placements (r,c,v) consistent with the pre-filled
// cells; each covers exactly four columns. The matrix is built per call and
// discarded when it returns.
type DLXSolver struct{}

// Name implements Solver.
func (s *DLXSolver) Name() string { return "Dancing Links (DLX)" }

// dlxNode is one entry of the node arena. The toroidal doubly linked
// structure is expressed with stable integer indices rather than pointers, so
// cover/uncover are index reassignments and trivially reversible. Index 0 is
// the root header; column headers occupy 1..nCols.
type dlxNode struct {
	up, down, left, right int
	col                   int // arena index of the column header; 0 on the root
	row                   int // candidate id (r*N+c)*N + v-1; -1 on headers
}

type dlxMatrix struct {
	dim   board.Dimension
	nodes []dlxNode
	size  []int       // rows linked per column, indexed by header arena index
	heads map[int]int // candidate id -> first node of its row ring

	choice     []int // stack of chosen row nodes
	iterations int64
	backtracks int64
}

func newDLXMatrix(b *board.Board) *dlxMatrix {
	dim := b.Dimension()
	n := dim.Size
	nCols := 4 * n * n

	m := &dlxMatrix{
		dim:   dim,
		nodes: make([]dlxNode, nCols+1, nCols+1+4*n*n*n),
		size:  make([]int, nCols+1),
		heads: make(map[int]int),
	}
	// horizontal ring of root + column headers
	for i := 0; i <= nCols; i++ {
		m.nodes[i] = dlxNode{
			up: i, down: i,
			left:  (i + nCols) % (nCols + 1),
			right: (i + 1) % (nCols + 1),
			col:   i,
			row:   -1,
		}
	}

	rowUsed := usedValues(b, func(r, c int) int { return r })
	colUsed := usedValues(b, func(r, c int) int { return c })
	boxUsed := usedValues(b, dim.BoxIndex)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v := b.Get(r, c); v != 0 {
				m.addCandidate(r, c, v)
				continue
			}
			bx := dim.BoxIndex(r, c)
			for v := 1; v <= n; v++ {
				if rowUsed[r*(n+1)+v] || colUsed[c*(n+1)+v] || boxUsed[bx*(n+1)+v] {
					continue
				}
				m.addCandidate(r, c, v)
			}
		}
	}
	return m
}

func usedValues(b *board.Board, unit func(r, c int) int) []bool {
	n := b.Size()
	used := make([]bool, n*(n+1))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v := b.Get(r, c); v != 0 {
				used[unit(r, c)*(n+1)+v] = true
			}
		}
	}
	return used
}

// addCandidate links the four nodes of placement (r,c,v) into the matrix, at
// the bottom of their columns. Construction order is row-major cells then
// ascending values, which fixes the enumeration order of the search.
func (m *dlxMatrix) addCandidate(r, c, v int) {
	n := m.dim.Size
	id := (r*n+c)*n + v - 1
	cols := [4]int{
		r*n + c,
		n*n + r*n + v - 1,
		2*n*n + c*n + v - 1,
		3*n*n + m.dim.BoxIndex(r, c)*n + v - 1,
	}
	first := -1
	for _, col := range cols {
		ch := col + 1 // header arena index
		i := len(m.nodes)
		m.nodes = append(m.nodes, dlxNode{
			up:   m.nodes[ch].up,
			down: ch,
			col:  ch,
			row:  id,
		})
		m.nodes[m.nodes[ch].up].down = i
		m.nodes[ch].up = i
		m.size[ch]++
		if first < 0 {
			first = i
			m.nodes[i].left = i
			m.nodes[i].right = i
		} else {
			last := m.nodes[first].left
			m.nodes[i].left = last
			m.nodes[i].right = first
			m.nodes[last].right = i
			m.nodes[first].left = i
		}
	}
	m.heads[id] = first
}

// cover unlinks column header ch and every row intersecting it. O(1) per
// node, no node is deallocated.
func (m *dlxMatrix) cover(ch int) {
	m.nodes[m.nodes[ch].left].right = m.nodes[ch].right
	m.nodes[m.nodes[ch].right].left = m.nodes[ch].left
	for i := m.nodes[ch].down; i != ch; i = m.nodes[i].down {
		for j := m.nodes[i].right; j != i; j = m.nodes[j].right {
			m.nodes[m.nodes[j].up].down = m.nodes[j].down
			m.nodes[m.nodes[j].down].up = m.nodes[j].up
			m.size[m.nodes[j].col]--
		}
	}
}

// uncover restores ch in the exact reverse order of cover, returning the
// matrix to its pre-descent topology.
func (m *dlxMatrix) uncover(ch int) {
	for i := m.nodes[ch].up; i != ch; i = m.nodes[i].up {
		for j := m.nodes[i].left; j != i; j = m.nodes[j].left {
			m.size[m.nodes[j].col]++
			m.nodes[m.nodes[j].up].down = j
			m.nodes[m.nodes[j].down].up = j
		}
	}
	m.nodes[m.nodes[ch].left].right = ch
	m.nodes[m.nodes[ch].right].left = ch
}

// chooseColumn returns the uncovered column with the fewest remaining rows
// (the "S" heuristic). A size-0 column is an immediate dead end and is
// returned as soon as seen.
func (m *dlxMatrix) chooseColumn() int {
	best := -1
	for ch := m.nodes[0].right; ch != 0; ch = m.nodes[ch].right {
		if best < 0 || m.size[ch] < m.size[best] {
			best = ch
			if m.size[best] == 0 {
				break
			}
		}
	}
	return best
}

// applyGiven selects the candidate row of a pre-filled cell by covering its
// four columns, exactly as if the search had chosen it at the top level.
func (m *dlxMatrix) applyGiven(r, c, v int) bool {
	n := m.dim.Size
	head, ok := m.heads[(r*n+c)*n+v-1]
	if !ok {
		return false
	}
	m.cover(m.nodes[head].col)
	for j := m.nodes[head].right; j != head; j = m.nodes[j].right {
		m.cover(m.nodes[j].col)
	}
	return true
}

// search runs the depth-first cover search. emit is called with the chosen
// row stack for each solution; returning true stops the whole search. The
// final matrix state is only restored on backtracked branches; the matrix is
// single-use, so an early stop leaves it as is.
func (m *dlxMatrix) search(emit func(choice []int) bool) bool {
	if m.nodes[0].right == 0 {
		return emit(m.choice)
	}
	ch := m.chooseColumn()
	m.iterations++
	if m.size[ch] == 0 {
		return false
	}
	m.cover(ch)
	for i := m.nodes[ch].down; i != ch; i = m.nodes[i].down {
		m.choice = append(m.choice, i)
		for j := m.nodes[i].right; j != i; j = m.nodes[j].right {
			m.cover(m.nodes[j].col)
		}
		if m.search(emit) {
			return true
		}
		for j := m.nodes[i].left; j != i; j = m.nodes[j].left {
			m.uncover(m.nodes[j].col)
		}
		m.choice = m.choice[:len(m.choice)-1]
		m.backtracks++
	}
	m.uncover(ch)
	return false
}

// run builds the matrix for b, applies the givens and searches for up to
// limit solutions (limit <= 0 means unlimited).
func (s *DLXSolver) run(b *board.Board, limit int) (solutions [][][]int, iterations, backtracks int64) {
	m := newDLXMatrix(b)
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v := b.Get(r, c); v != 0 {
				ok := m.applyGiven(r, c, v)
				debug.Assert(ok, "given without a candidate row; precheck must reject it")
			}
		}
	}
	m.search(func(choice []int) bool {
		grid := b.Grid()
		for _, node := range choice {
			id := m.nodes[node].row
			r, c, v := id/(n*n), (id/n)%n, id%n+1
			grid[r][c] = v
		}
		solutions = append(solutions, grid)
		return limit > 0 && len(solutions) >= limit
	})
	return solutions, m.iterations, m.backtracks
}

// Solve implements Solver.
func (s *DLXSolver) Solve(b *board.Board) SolveResult {
	if msg := precheck(b); msg != "" {
		return failure(s.Name(), msg)
	}
	start := time.Now()
	solutions, iterations, backtracks := s.run(b, 1)
	res := SolveResult{
		Algorithm:  s.Name(),
		TimeMs:     float64(time.Since(start).Nanoseconds()) / 1e6,
		Iterations: iterations,
		Backtracks: backtracks,
	}
	if len(solutions) == 0 {
		res.ErrorMessage = "no solution exists"
		return res
	}
	res.Solved = true
	res.Solution = solutions[0]
	return res
}

// FindAllSolutions implements Solver.
func (s *DLXSolver) FindAllSolutions(b *board.Board, maxSolutions int) []*board.Board {
	if precheck(b) != "" {
		return nil
	}
	warnUnbounded(b, maxSolutions)
	solutions, _, _ := s.run(b, maxSolutions)
	out := make([]*board.Board, 0, len(solutions))
	for _, grid := range solutions {
		sb, err := board.New(grid, b.Dimension())
		if err != nil {
			continue
		}
		out = append(out, sb)
	}
	return out
}

// HasUniqueSolution implements Solver.
func (s *DLXSolver) HasUniqueSolution(b *board.Board) bool {
	if precheck(b) != "" {
		return false
	}
	solutions, _, _ := s.run(b, 2)
	return len(solutions) == 1
}
