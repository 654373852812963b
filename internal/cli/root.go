package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowpath/internal/telemetry"
)

// AppName is the binary name used in usage text.
const AppName = "flowpath"

// app carries state shared by all subcommands.
type app struct {
	logLevel  string
	logFormat string
	log       *slog.Logger
}

// NewRootCommand builds the flowpath command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   AppName,
		Short: "Trace D8 flow paths across a flow-direction raster",
		Long: `flowpath follows surface-water flow downstream across a D8 flow-direction
raster, from a start cell until the path reaches a sink, leaves the grid,
loops back on itself, or meets an invalid direction code.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := telemetry.NewLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", telemetry.EnvOr(telemetry.EnvLogLevel, "info"),
		"log level: debug, info, warn, error (env "+telemetry.EnvLogLevel+")")
	flags.StringVar(&a.logFormat, "log-format", telemetry.EnvOr(telemetry.EnvLogFormat, telemetry.FormatText),
		"log format: text or json (env "+telemetry.EnvLogFormat+")")

	root.AddCommand(newTraceCommand(a), newCodesCommand())

	return root
}

// Execute runs the command tree against os.Args and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
