// Package raster holds a flow-direction raster as an immutable, row-major
// grid of d8 codes.
//
// What:
//
//   - Grid wraps nrows×ncols codes stored row by row (index = row*Cols + col).
//   - New deep-copies caller data; Wrap adopts it without copying, for callers
//     that keep ownership of a large raster and only read it.
//   - From2D accepts a [][]uint8 literal, convenient for tests and small maps.
//   - Validate scans once for values outside the legal D8 set.
//
// Why:
//
//   - Tracing code only needs O(1) bounds checks and O(1) lookups; keeping the
//     grid flat makes both branch-free and cache-friendly.
//   - A Grid is never modified after construction, so any number of
//     goroutines may trace over the same Grid concurrently.
//
// Complexity:
//
//   - New, From2D:  O(R×C) time and memory.
//   - Wrap:         O(1).
//   - Validate:     O(R×C) time, O(1) memory.
//   - InBounds, At: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:     zero rows or zero columns.
//   - ErrNonRectangular: rows of differing lengths (From2D).
//   - ErrSizeMismatch:  len(codes) != nrows*ncols (New, Wrap).
//   - ErrGridTooLarge:  nrows*ncols does not fit in an int.
//   - ErrInvalidCode:   matched by *InvalidCodeError from Validate.
package raster
