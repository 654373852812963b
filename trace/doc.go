// Package trace follows a single flow path across a D8 flow-direction raster.
//
// What:
//
//   - Trace starts at a cell and follows direction codes downstream until the
//     walk leaves the grid, reaches a cell it has already visited, lands on a
//     sink (code 0 or 255), or reads a code outside the D8 set.
//   - The result is the ordered list of visited cells plus the reason the walk
//     stopped. Stopping is never an error; only an allocation failure or a nil
//     grid is returned as error.
//   - Walker exposes the same walk one cell at a time, for callers that want
//     to inspect or animate a path as it grows.
//
// State machine:
//
//	            ┌──────────── next cell ────────────┐
//	            ▼                                   │
//	        Walking ── off grid ─────────────► OutOfBounds
//	            │  ── seen before ───────────► Revisited
//	            │  ── record cell, read code
//	            │        ├── 0 / 255 ────────► Sink
//	            │        ├── 1..128 (D8) ──────┘
//	            │        └── anything else ──► InvalidCode
//
//	Bounds and revisit checks run before a cell is recorded, so an off-grid or
//	revisited cell never appears in the path. Sink and invalid-code cells are
//	recorded before their code is read, so they are the last path element.
//
// Guarantees:
//
//   - Every path point lies inside the grid and no point appears twice.
//   - The walk ends after at most Rows×Cols recorded cells.
//   - The returned Path has len == cap; the caller owns it.
//   - No package state: a *raster.Grid may be traced from many goroutines.
//
// Complexity:
//
//   - Trace: O(L) steps for a path of length L ≤ R×C; Memory O(R×C) for the
//     visited set plus O(L) for the path.
//
// Errors:
//
//   - ErrNilGrid:    grid pointer is nil.
//   - raster.ErrEmptyGrid: the Grid was not built by a raster constructor.
//   - ErrAllocation: the visited set or the path could not be allocated.
//   - Result.Err:    *raster.InvalidCodeError (matches ErrInvalidCode) when the
//     walk stopped on malformed data.
package trace
