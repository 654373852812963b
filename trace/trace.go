package trace

import (
	"fmt"

	"github.com/katalvlaran/flowpath/raster"
)

// Trace follows the flow path of g from (row, col) to its end.
//
// Behavior:
//  1. An off-grid start yields an empty path and OutOfBounds.
//  2. Each in-grid, unvisited cell is appended, then its code decides the
//     next move (see the package state machine).
//  3. The walk ends at the first OutOfBounds, Revisited, Sink or InvalidCode.
//
// The termination reason is reported in Result.Status and is never an error.
// The returned error is non-nil only for a nil grid (ErrNilGrid) or an
// allocation failure (wrapping ErrAllocation).
//
// Complexity: O(L) time for a path of length L, O(R×C) memory.
func Trace(g *raster.Grid, row, col int) (Result, error) {
	w, err := NewWalker(g, row, col)
	if err != nil {
		return Result{}, err
	}
	var res Result
	err = guard(func() {
		w.run()
		res = w.Result()
	})
	if err != nil {
		return Result{}, fmt.Errorf("trace: Trace: %w", err)
	}

	return res, nil
}

// TraceCodes traces over a raw row-major code slice of nrows×ncols cells
// without copying it. The slice must not change during the call.
// Dimension errors from raster.Wrap are returned wrapped.
func TraceCodes(codes []uint8, nrows, ncols, row, col int) (Result, error) {
	g, err := raster.Wrap(codes, nrows, ncols)
	if err != nil {
		return Result{}, fmt.Errorf("trace: TraceCodes: %w", err)
	}

	return Trace(g, row, col)
}
