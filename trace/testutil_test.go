package trace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowpath/raster"
	"github.com/katalvlaran/flowpath/trace"
)

// sampleRows is the 5×5 reference raster used across the package tests.
//
//	1   1   1   1   4
//	1 255   1 255   4
//	1   1   4  16  16
//	1 255   1 255   1
//	1   1   1   1   1
var sampleRows = [][]uint8{
	{1, 1, 1, 1, 4},
	{1, 255, 1, 255, 4},
	{1, 1, 4, 16, 16},
	{1, 255, 1, 255, 1},
	{1, 1, 1, 1, 1},
}

// mustGrid builds a grid from rows or fails the test.
func mustGrid(tb testing.TB, rows [][]uint8) *raster.Grid {
	tb.Helper()
	g, err := raster.From2D(rows)
	require.NoError(tb, err)
	return g
}

// pts builds a Path from flat row,col pairs.
func pts(rc ...int) trace.Path {
	if len(rc)%2 != 0 {
		panic("pts: odd number of coordinates")
	}
	p := make(trace.Path, 0, len(rc)/2)
	for i := 0; i < len(rc); i += 2 {
		p = append(p, trace.Point{Row: rc[i], Col: rc[i+1]})
	}
	return p
}

// serpentine returns an n×n raster whose single flow path visits every cell:
// even rows run east, odd rows run west, and row ends drop south.
func serpentine(n int) []uint8 {
	codes := make([]uint8, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := uint8(1)
			switch {
			case r%2 == 0 && c == n-1, r%2 == 1 && c == 0:
				v = 4
			case r%2 == 1:
				v = 16
			}
			codes[r*n+c] = v
		}
	}
	return codes
}
