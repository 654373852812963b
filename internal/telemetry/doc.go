// Package telemetry sets up structured logging for the flowpath command.
//
// Library packages (d8, raster, trace) never log; they report every outcome
// through return values. Only the command-line harness writes log records,
// to stderr, as text (default) or JSON.
package telemetry
