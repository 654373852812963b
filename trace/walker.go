package trace

import (
	"fmt"

	"github.com/katalvlaran/flowpath/d8"
	"github.com/katalvlaran/flowpath/raster"
)

// initialCapacity is the starting path capacity, capped at the grid size.
const initialCapacity = 100

// Walker advances a flow path one cell per Step.
// A Walker is not safe for concurrent use; the Grid it reads may be shared.
type Walker struct {
	g       *raster.Grid
	visited []bool
	path    Path
	cur     Point
	code    d8.Code
	state   Status
	err     error
}

// NewWalker prepares a walk over g starting at (row, col). The start cell may
// lie outside the grid; the first Step then ends the walk with OutOfBounds.
// Returns ErrNilGrid for a nil grid, an error wrapping raster.ErrEmptyGrid for
// a Grid not built by a raster constructor, or an error wrapping ErrAllocation
// if the visited set cannot be allocated.
// Complexity: O(R×C) memory for the visited set.
func NewWalker(g *raster.Grid, row, col int) (*Walker, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Check(); err != nil {
		return nil, fmt.Errorf("trace: NewWalker: %w", err)
	}
	if err := checkAlloc(g.Len()); err != nil {
		return nil, fmt.Errorf("trace: NewWalker: %w", err)
	}
	w := &Walker{g: g, cur: Point{Row: row, Col: col}, state: Walking}
	err := guard(func() {
		w.visited = make([]bool, g.Len())
		w.path = make(Path, 0, min(initialCapacity, g.Len()))
	})
	if err != nil {
		return nil, fmt.Errorf("trace: NewWalker: %w", err)
	}

	return w, nil
}

// Step examines the current cell and moves at most one cell downstream.
// It returns the state after the step; once terminal, further calls are
// no-ops returning the same state. A non-nil error (wrapping ErrAllocation)
// means the path could not grow; the walker is then unusable.
func (w *Walker) Step() (Status, error) {
	if w.err != nil || w.state.Terminal() {
		return w.state, w.err
	}
	if err := guard(w.step); err != nil {
		w.err = fmt.Errorf("trace: Step: %w", err)
		return w.state, w.err
	}

	return w.state, nil
}

// step is the single Walking transition.
func (w *Walker) step() {
	p := w.cur
	// 1) Off the grid: nothing is recorded.
	if !w.g.InBounds(p.Row, p.Col) {
		w.state = OutOfBounds
		return
	}
	// 2) Already on the path: a cycle in the direction codes.
	idx := w.g.Index(p.Row, p.Col)
	if w.visited[idx] {
		w.state = Revisited
		return
	}
	// 3) Record the cell before its code is read.
	w.visited[idx] = true
	w.path = append(w.path, p)

	// 4) Decode and move.
	c := w.g.AtIndex(idx)
	if c.IsTerminal() {
		w.code = c
		w.state = Sink
		return
	}
	off, ok := d8.Decode(c)
	if !ok {
		w.code = c
		w.state = InvalidCode
		return
	}
	w.cur = Point{Row: p.Row + off.DRow, Col: p.Col + off.DCol}
}

// run steps until a terminal state. The loop is bounded by Len()+1 steps
// because every non-terminal step marks a fresh cell.
func (w *Walker) run() {
	for !w.state.Terminal() {
		w.step()
	}
}

// State returns the current state.
func (w *Walker) State() Status {
	return w.state
}

// Current returns the cell the next Step will examine, or, once the walk has
// ended, the cell that ended it.
func (w *Walker) Current() Point {
	return w.cur
}

// Len returns the number of cells recorded so far.
func (w *Walker) Len() int {
	return len(w.path)
}

// Result returns a snapshot of the walk. The Path is an exact-size copy owned
// by the caller; it may be taken before the walk has ended, in which case
// Status is Walking.
func (w *Walker) Result() Result {
	path := make(Path, len(w.path))
	copy(path, w.path)
	res := Result{Path: path, Status: w.state, Stop: w.cur}
	if w.state == Sink || w.state == InvalidCode {
		res.Code = w.code
	}

	return res
}
