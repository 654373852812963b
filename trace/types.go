package trace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flowpath/d8"
	"github.com/katalvlaran/flowpath/raster"
)

var (
	// ErrNilGrid is returned when a nil *raster.Grid is passed to Trace or NewWalker.
	ErrNilGrid = errors.New("trace: grid is nil")

	// ErrAllocation indicates the visited set or the path could not be allocated.
	ErrAllocation = errors.New("trace: allocation failed")

	// ErrInvalidCode is matched by the error of a Result that stopped on a
	// code outside the D8 set. It is the same value as raster.ErrInvalidCode.
	ErrInvalidCode = raster.ErrInvalidCode
)

// Status is the state of a walk. Walking is the only non-terminal state.
type Status int

const (
	Walking     Status = iota // Walking: the walk may take another step.
	OutOfBounds               // OutOfBounds: the next cell lies outside the grid.
	Revisited                 // Revisited: the next cell is already on the path.
	Sink                      // Sink: the last cell holds code 0 or 255.
	InvalidCode               // InvalidCode: the last cell holds a code outside the D8 set.
)

var statusNames = [...]string{
	Walking:     "walking",
	OutOfBounds: "out-of-bounds",
	Revisited:   "revisited",
	Sink:        "sink",
	InvalidCode: "invalid-code",
}

// String returns the lower-case, hyphenated name of s.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalText encodes s by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether s ends the walk.
func (s Status) Terminal() bool {
	return s != Walking
}

// Point is a (row, column) cell coordinate.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Result is the outcome of a walk.
type Result struct {
	// Path lists the visited cells in traversal order, starting at the start
	// cell. It is empty when the start cell is outside the grid.
	Path Path `json:"path"`

	// Status is the terminal state that ended the walk.
	Status Status `json:"status"`

	// Stop is the cell that ended the walk: the off-grid or revisited cell for
	// OutOfBounds and Revisited, the last path cell for Sink and InvalidCode.
	Stop Point `json:"stop"`

	// Code is the direction code at Stop for Sink (0 or 255) and InvalidCode.
	// It is zero for the other states.
	Code d8.Code `json:"code"`
}

// Err returns a *raster.InvalidCodeError when the walk stopped on a code
// outside the D8 set, and nil for every other outcome.
func (r Result) Err() error {
	if r.Status != InvalidCode {
		return nil
	}

	return &raster.InvalidCodeError{Row: r.Stop.Row, Col: r.Stop.Col, Code: r.Code}
}
