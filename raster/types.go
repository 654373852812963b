package raster

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flowpath/d8"
)

// Sentinel errors for raster construction and validation.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("raster: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrSizeMismatch indicates the code slice does not hold nrows*ncols values.
	ErrSizeMismatch = errors.New("raster: code count does not match dimensions")
	// ErrGridTooLarge indicates nrows*ncols overflows int.
	ErrGridTooLarge = errors.New("raster: grid dimensions overflow")
	// ErrInvalidCode indicates a cell holds a value outside the D8 set.
	ErrInvalidCode = errors.New("raster: invalid flow-direction code")
)

// InvalidCodeError reports the first offending cell found in a grid.
type InvalidCodeError struct {
	Row, Col int
	Code     d8.Code
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("raster: unexpected cell value %d at (%d, %d)", uint8(e.Code), e.Row, e.Col)
}

// Is makes errors.Is(err, ErrInvalidCode) hold for every *InvalidCodeError.
func (e *InvalidCodeError) Is(target error) bool {
	return target == ErrInvalidCode
}

// Grid is an immutable flow-direction raster stored row-major.
// Build one with New, Wrap or From2D; the zero Grid is empty and fails Check.
type Grid struct {
	rows, cols int
	cells      []uint8
}
