package raster

import (
	"math"

	"github.com/katalvlaran/flowpath/d8"
)

// New builds a Grid from nrows*ncols row-major codes, copying them so later
// changes to codes do not affect the Grid.
// Returns ErrEmptyGrid, ErrGridTooLarge or ErrSizeMismatch on bad dimensions.
// Complexity: O(R×C) time and memory.
func New(codes []uint8, nrows, ncols int) (*Grid, error) {
	if err := checkDims(len(codes), nrows, ncols); err != nil {
		return nil, err
	}
	cells := make([]uint8, len(codes))
	copy(cells, codes)

	return &Grid{rows: nrows, cols: ncols, cells: cells}, nil
}

// Wrap builds a Grid over codes without copying. The caller keeps ownership
// and must not modify codes while the Grid is in use.
// Complexity: O(1).
func Wrap(codes []uint8, nrows, ncols int) (*Grid, error) {
	if err := checkDims(len(codes), nrows, ncols); err != nil {
		return nil, err
	}

	return &Grid{rows: nrows, cols: ncols, cells: codes}, nil
}

// From2D builds a Grid from a rectangular [][]uint8, row by row.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
func From2D(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if h > math.MaxInt/w {
		return nil, ErrGridTooLarge
	}
	cells := make([]uint8, 0, h*w)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

func checkDims(n, nrows, ncols int) error {
	if nrows <= 0 || ncols <= 0 {
		return ErrEmptyGrid
	}
	if nrows > math.MaxInt/ncols {
		return ErrGridTooLarge
	}
	if n != nrows*ncols {
		return ErrSizeMismatch
	}

	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Len returns the number of cells, Rows()*Cols().
func (g *Grid) Len() int {
	return len(g.cells)
}

// Check reports whether g was built by a constructor: ErrEmptyGrid for the
// zero Grid, ErrSizeMismatch if the cells do not fill Rows()×Cols().
// Complexity: O(1).
func (g *Grid) Check() error {
	return checkDims(len(g.cells), g.rows, g.cols)
}

// InBounds reports whether (row, col) lies inside [0,Rows)×[0,Cols).
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index maps (row, col) to its row-major index. The cell must be in bounds.
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}

// At returns the code stored at (row, col). The cell must be in bounds.
func (g *Grid) At(row, col int) d8.Code {
	return d8.Code(g.cells[row*g.cols+col])
}

// AtIndex returns the code at a row-major index.
func (g *Grid) AtIndex(idx int) d8.Code {
	return d8.Code(g.cells[idx])
}

// Validate scans the grid once and returns an *InvalidCodeError for the first
// cell (in row-major order) whose value is not a legal D8 code, or nil.
// Complexity: O(R×C).
func (g *Grid) Validate() error {
	for i, v := range g.cells {
		if c := d8.Code(v); !c.Valid() {
			row, col := g.Coordinate(i)
			return &InvalidCodeError{Row: row, Col: col, Code: c}
		}
	}

	return nil
}
