package solver

import (
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/kwyshell/sudoku/board"
	"github.com/kwyshell/sudoku/debug"
)

// BacktrackingSolver solves boards by depth-first search over the empty
// cells, pruned by per-row, per-column and per-box candidate bitsets. Before
// searching it repeatedly assigns naked singles; during search it picks the
// empty cell with the fewest remaining candidates, ties broken row-major, and
// tries candidate values in ascending order.
type BacktrackingSolver struct{}

// Name implements Solver.
func (s *BacktrackingSolver) Name() string { return "Backtracking with Constraint Propagation" }

// btState is the per-call working state. Bit v-1 of a unit set means value v
// is still legal in that unit. Assign and unassign mutate the three bitsets in
// lock-step with the grid; after any backtrack step the bitsets equal their
// pre-descent state.
type btState struct {
	dim  board.Dimension
	grid [][]int

	rows  []*bitset.BitSet
	cols  []*bitset.BitSet
	boxes []*bitset.BitSet

	iterations int64
	backtracks int64
}

func newBTState(b *board.Board) *btState {
	dim := b.Dimension()
	n := dim.Size
	st := &btState{
		dim:   dim,
		grid:  b.Grid(),
		rows:  make([]*bitset.BitSet, n),
		cols:  make([]*bitset.BitSet, n),
		boxes: make([]*bitset.BitSet, n),
	}
	for i := 0; i < n; i++ {
		st.rows[i] = fullCandidates(n)
		st.cols[i] = fullCandidates(n)
		st.boxes[i] = fullCandidates(n)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v := st.grid[r][c]; v != 0 {
				st.rows[r].Clear(uint(v - 1))
				st.cols[c].Clear(uint(v - 1))
				st.boxes[dim.BoxIndex(r, c)].Clear(uint(v - 1))
			}
		}
	}
	return st
}

func fullCandidates(n int) *bitset.BitSet {
	s := bitset.New(uint(n))
	for v := 0; v < n; v++ {
		s.Set(uint(v))
	}
	return s
}

// candidates returns the row∩column∩box candidate set of cell (r, c).
func (st *btState) candidates(r, c int) *bitset.BitSet {
	cand := st.rows[r].Intersection(st.cols[c])
	cand.InPlaceIntersection(st.boxes[st.dim.BoxIndex(r, c)])
	return cand
}

func (st *btState) assign(r, c, v int) {
	debug.Assert(st.grid[r][c] == 0, "assign to filled cell")
	st.grid[r][c] = v
	st.rows[r].Clear(uint(v - 1))
	st.cols[c].Clear(uint(v - 1))
	st.boxes[st.dim.BoxIndex(r, c)].Clear(uint(v - 1))
	st.iterations++
}

func (st *btState) unassign(r, c, v int) {
	debug.Assert(st.grid[r][c] == v, "unassign of a different value")
	st.grid[r][c] = 0
	st.rows[r].Set(uint(v - 1))
	st.cols[c].Set(uint(v - 1))
	st.boxes[st.dim.BoxIndex(r, c)].Set(uint(v - 1))
	st.backtracks++
}

// propagate assigns naked singles until none remain. It reports false when an
// unfilled cell has an empty candidate intersection, i.e. the board is
// contradictory.
func (st *btState) propagate() bool {
	n := st.dim.Size
	for changed := true; changed; {
		changed = false
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				if st.grid[r][c] != 0 {
					continue
				}
				cand := st.candidates(r, c)
				switch cand.Count() {
				case 0:
					return false
				case 1:
					v, _ := cand.NextSet(0)
					st.assign(r, c, int(v)+1)
					changed = true
				}
			}
		}
	}
	return true
}

// nextCell returns the empty cell with the fewest remaining candidates,
// ties broken by row-major order, or ok=false when the grid is complete.
func (st *btState) nextCell() (r, c int, ok bool) {
	n := st.dim.Size
	best := n + 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if st.grid[i][j] != 0 {
				continue
			}
			count := int(st.candidates(i, j).Count())
			if count < best {
				best = count
				r, c, ok = i, j, true
				if count == 0 {
					return
				}
			}
		}
	}
	return
}

// search runs the depth-first search. emit is called with the completed grid
// for each solution; returning true stops the whole search.
func (st *btState) search(emit func(grid [][]int) bool) bool {
	r, c, ok := st.nextCell()
	if !ok {
		return emit(st.grid)
	}
	cand := st.candidates(r, c)
	for v, found := cand.NextSet(0); found; v, found = cand.NextSet(v + 1) {
		st.assign(r, c, int(v)+1)
		if st.search(emit) {
			return true
		}
		st.unassign(r, c, int(v)+1)
	}
	return false
}

// run derives the working state from b, propagates forced assignments and
// searches for up to limit solutions (limit <= 0 means unlimited).
func (s *BacktrackingSolver) run(b *board.Board, limit int) (solutions [][][]int, iterations, backtracks int64) {
	st := newBTState(b)
	if !st.propagate() {
		return nil, st.iterations, st.backtracks
	}
	st.search(func(grid [][]int) bool {
		solutions = append(solutions, copyGrid(grid))
		return limit > 0 && len(solutions) >= limit
	})
	return solutions, st.iterations, st.backtracks
}

func copyGrid(grid [][]int) [][]int {
	out := make([][]int, len(grid))
	for r, row := range grid {
		out[r] = make([]int, len(row))
		copy(out[r], row)
	}
	return out
}

// Solve implements Solver.
func (s *BacktrackingSolver) Solve(b *board.Board) SolveResult {
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
func (s *BacktrackingSolver) FindAllSolutions(b *board.Board, maxSolutions int) []*board.Board {
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
func (s *BacktrackingSolver) HasUniqueSolution(b *board.Board) bool {
	if precheck(b) != "" {
		return false
	}
	solutions, _, _ := s.run(b, 2)
	return len(solutions) == 1
}
