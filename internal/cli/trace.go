package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowpath/raster"
	"github.com/katalvlaran/flowpath/trace"
)

type traceOptions struct {
	row, col int
	grid     string
	asJSON   bool
	render   bool
	steps    bool
	decimate int
}

func newTraceCommand(a *app) *cobra.Command {
	o := &traceOptions{}
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Trace one flow path from a start cell",
		Long: `Trace follows flow-direction codes from --row/--col until the path reaches
a sink (0 or 255), leaves the grid, revisits a cell, or reads an invalid code.
Without --grid the built-in 5×5 sample raster is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd.OutOrStdout(), a, o)
		},
	}

	f := cmd.Flags()
	f.IntVar(&o.row, "row", 0, "start row (0 = top)")
	f.IntVar(&o.col, "col", 0, "start column (0 = left)")
	f.StringVar(&o.grid, "grid", "", `inline grid literal, e.g. "1 1 4; 64 0 4; 64 16 16"`)
	f.BoolVar(&o.asJSON, "json", false, "print the result as JSON")
	f.BoolVar(&o.render, "render", false, "draw the grid with the path highlighted")
	f.BoolVar(&o.steps, "steps", false, "print every step of the walk")
	f.IntVar(&o.decimate, "decimate", 1, "print only every k-th path point")
	cmd.MarkFlagsMutuallyExclusive("json", "render", "steps")

	return cmd
}

func runTrace(out io.Writer, a *app, o *traceOptions) error {
	rows := sampleGrid
	if o.grid != "" {
		var err error
		if rows, err = parseGrid(o.grid); err != nil {
			return err
		}
	}
	g, err := raster.From2D(rows)
	if err != nil {
		return err
	}
	a.log.Debug("grid ready", "rows", g.Rows(), "cols", g.Cols(), "start_row", o.row, "start_col", o.col)

	var res trace.Result
	if o.steps {
		res, err = walkVerbose(out, g, o.row, o.col)
	} else {
		res, err = trace.Trace(g, o.row, o.col)
	}
	if err != nil {
		return err
	}

	if err := res.Err(); err != nil {
		a.log.Warn("trace stopped on malformed data",
			"row", res.Stop.Row, "col", res.Stop.Col, "code", uint8(res.Code))
	}
	a.log.Info("trace finished", "points", len(res.Path), "status", res.Status.String())

	res.Path = res.Path.Decimate(o.decimate)
	switch {
	case o.asJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case o.render:
		_, err = fmt.Fprint(out, renderGrid(out, g, res))
		return err
	default:
		return printPath(out, res)
	}
}

// walkVerbose drives a Walker and prints each transition.
func walkVerbose(out io.Writer, g *raster.Grid, row, col int) (trace.Result, error) {
	w, err := trace.NewWalker(g, row, col)
	if err != nil {
		return trace.Result{}, err
	}
	for n := 1; !w.State().Terminal(); n++ {
		at := w.Current()
		st, err := w.Step()
		if err != nil {
			return trace.Result{}, err
		}
		if _, err = fmt.Fprintf(out, "step %d: %v -> %v %s\n", n, at, w.Current(), st); err != nil {
			return trace.Result{}, err
		}
	}

	return w.Result(), nil
}

// printPath writes a header, one "(row, col)" line per point, then the
// termination reason.
func printPath(out io.Writer, res trace.Result) error {
	if _, err := fmt.Fprintf(out, "Flow path (%d points):\n", len(res.Path)); err != nil {
		return err
	}
	for _, p := range res.Path {
		if _, err := fmt.Fprintln(out, p); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out, statusLine(res))
	return err
}

func statusLine(res trace.Result) string {
	switch res.Status {
	case trace.Sink, trace.InvalidCode:
		return fmt.Sprintf("status: %s at %v (code %d)", res.Status, res.Stop, uint8(res.Code))
	default:
		return fmt.Sprintf("status: %s at %v", res.Status, res.Stop)
	}
}
