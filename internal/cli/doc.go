// Package cli implements the flowpath command: a diagnostic harness that
// builds a small flow-direction raster (the built-in sample or an inline
// literal), traces one path and prints it.
//
// Commands:
//
//	flowpath trace --row R --col C [--grid LITERAL] [--json|--render|--steps] [--decimate K]
//	flowpath codes
//
// A grid literal lists rows separated by ';' or newlines and cells separated
// by spaces or commas, e.g. "1 1 4; 64 0 4; 64 16 16".
package cli
