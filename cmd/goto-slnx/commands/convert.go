package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/komimoe/GotoSlnx/cmd/goto-slnx/output"
	"github.com/komimoe/GotoSlnx/convert"
	"github.com/komimoe/GotoSlnx/observability"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand(console *output.Console) *cobra.Command {
	opts := &convert.Options{}
	var traceExporter string
	var otlpEndpoint string

	cmd := &cobra.Command{
		Use:   "convert <SOLUTION|DIRECTORY>",
		Short: "Convert a .sln file to .slnx",
		Long: `Convert a Visual Studio text solution (.sln) to the XML solution
format (.slnx).

The input may be a .sln file or a directory containing exactly one.
By default the output is written next to the input with the .slnx
extension.

Examples:
  goto-slnx convert MyApp.sln
  goto-slnx convert . -o build/MyApp.slnx
  goto-slnx convert MyApp.sln --force
  goto-slnx convert MyApp.sln --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity, _ := cmd.Flags().GetString("verbosity")
			console.SetVerbosity(output.ParseVerbosity(verbosity))
			logger := newLogger(verbosity)

			if traceExporter != "none" {
				config := observability.DefaultTracerConfig()
				config.ExporterType = traceExporter
				config.OTLPEndpoint = otlpEndpoint
				tp, err := observability.SetupTracing(cmd.Context(), config)
				if err != nil {
					return err
				}
				defer func() { _ = observability.ShutdownTracing(cmd.Context(), tp) }()
			}

			return convert.Run(cmd.Context(), args[0], opts, console, logger)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output .slnx path (default: input with .slnx extension)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite an existing output file")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-convert whenever the input file changes")
	cmd.Flags().StringVar(&traceExporter, "trace", "none", "Trace exporter: none, stdout, or otlp")
	cmd.Flags().StringVar(&otlpEndpoint, "otlp-endpoint", "localhost:4317", "OTLP collector endpoint for --trace=otlp")

	return cmd
}

// newLogger maps the verbosity flag to a logger level. Diagnostic
// verbosity surfaces the Debug statistics, detailed surfaces Info;
// anything else only reports problems.
func newLogger(verbosity string) observability.Logger {
	switch output.ParseVerbosity(verbosity) {
	case output.VerbosityDiagnostic:
		return observability.NewLogger(os.Stderr, observability.DebugLevel)
	case output.VerbosityDetailed:
		return observability.NewLogger(os.Stderr, observability.InfoLevel)
	default:
		return observability.NewLogger(os.Stderr, observability.WarnLevel)
	}
}
