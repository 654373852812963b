// Package flowpath traces hydrological flow paths across D8 flow-direction
// rasters.
//
// A flow-direction raster stores, for every cell, the neighbour its surface
// water drains into (codes 1, 2, 4, ..., 128), or marks the cell as a sink
// (0) or no-data (255). Starting from one cell, a flow path follows these
// pointers downstream until it reaches a sink, leaves the raster, loops back
// onto a cell it has already visited, or meets a malformed code.
//
// Subpackages:
//
//	d8/     — direction codes: code → (Δrow, Δcol) lookup, sink / validity checks
//	raster/ — immutable row-major Grid of codes, bounds checks, validation
//	trace/  — Trace and Walker: the flow-path state machine and its Result
//
// Quick example:
//
//	g, _ := raster.From2D([][]uint8{
//		{1, 1, 4},
//		{64, 0, 4},
//		{64, 16, 16},
//	})
//	res, _ := trace.Trace(g, 0, 0)
//	// res.Path   = (0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0) (1,0)
//	// res.Status = Revisited, res.Stop = (0,0)
//
// The command in cmd/flowpath is a small diagnostic harness around trace.
//
//	go install github.com/katalvlaran/flowpath/cmd/flowpath@latest
package flowpath
