// Package solver implements the two puzzle-solving engines behind a common
// contract: an exact-cover search over a dancing-links matrix (DLX) and a
// constraint-propagating backtracking search. Both honor identical semantics
// so their results are comparable run for run.
package solver

import (
	"errors"
	"fmt"

	"github.com/kwyshell/sudoku/board"
	"github.com/kwyshell/sudoku/logger"
)

// ErrUnknownAlgorithm is returned by New and IDFromString for an identifier
// that does not map to an implemented engine.
var ErrUnknownAlgorithm = errors.New("unknown solving algorithm")

// ID represents a unique ID for a solving algorithm
type ID uint16

const (
	UNKNOWN ID = iota
	DLX
	Backtracking
)

// Implemented returns the list of solving algorithms implemented in this module
func Implemented() []ID {
	return []ID{DLX, Backtracking}
}

// String returns the identifier of the algorithm, as accepted by IDFromString
func (id ID) String() string {
	switch id {
	case DLX:
		return "dlx"
	case Backtracking:
		return "backtrack"
	default:
		return "unknown"
	}
}

// IDFromString maps an algorithm identifier ("dlx", "backtrack") to its ID.
// Unknown identifiers are a configuration error, not a silent fallback.
func IDFromString(name string) (ID, error) {
	switch name {
	case "dlx":
		return DLX, nil
	case "backtrack":
		return Backtracking, nil
	default:
		return UNKNOWN, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Solver is the contract every engine implements. Implementations never
// mutate the caller's Board; each call derives private working state from it,
// so a Solver value itself carries no state between calls and is safe to reuse
// within one goroutine. Sharing one Solver across goroutines is not supported;
// construct one per worker.
type Solver interface {
	// Solve returns the first solution found, or Solved=false with a
	// descriptive ErrorMessage if the board admits none. It terminates on
	// any valid-shaped board.
	Solve(b *board.Board) SolveResult

	// FindAllSolutions enumerates distinct solutions, stopping after
	// maxSolutions are found. maxSolutions <= 0 means unlimited, which may
	// not terminate in reasonable time for large boards. The enumeration
	// order is fixed for a given board: both engines expand cells in
	// row-major order and values in ascending order. Zero solutions yield
	// an empty slice, not an error.
	FindAllSolutions(b *board.Board, maxSolutions int) []*board.Board

	// HasUniqueSolution reports whether exactly one solution exists. The
	// search stops as soon as a second solution is found.
	HasUniqueSolution(b *board.Board) bool

	// Name returns the human-readable algorithm name.
	Name() string
}

// New returns the Solver for the given algorithm ID.
func New(id ID) (Solver, error) {
	switch id {
	case DLX:
		return &DLXSolver{}, nil
	case Backtracking:
		return &BacktrackingSolver{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, id)
	}
}

// NewFromString returns the Solver for the given algorithm identifier string.
func NewFromString(name string) (Solver, error) {
	id, err := IDFromString(name)
	if err != nil {
		return nil, err
	}
	return New(id)
}

// warnUnbounded logs the advisory for an unlimited enumeration request on a
// large board. Non-fatal; the search is still attempted.
func warnUnbounded(b *board.Board, maxSolutions int) {
	if maxSolutions <= 0 && b.Size() > 9 {
		log := logger.Logger()
		log.Warn().
			Int("size", b.Size()).
			Msg("unlimited solution enumeration requested on a large board; this may not terminate in reasonable time")
	}
}

// precheck validates a board common to all engine entry points. It returns a
// non-empty message when solving must not proceed.
func precheck(b *board.Board) string {
	if b == nil {
		return "no board provided"
	}
	if !b.IsValid() {
		return "puzzle contains conflicting clues"
	}
	return ""
}
