package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowpath/d8"
)

func newCodesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "Print the D8 flow-direction code table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tDIRECTION\tGLYPH\tDROW\tDCOL")
			for _, c := range d8.Codes() {
				off, _ := d8.Decode(c)
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", c, c, glyph(c), off.DRow, off.DCol)
			}
			for _, c := range []d8.Code{d8.Sink, d8.NoData} {
				fmt.Fprintf(tw, "%d\t%s\t%s\t-\t-\n", c, c, glyph(c))
			}
			return tw.Flush()
		},
	}
}
