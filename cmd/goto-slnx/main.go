// cmd/goto-slnx/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/komimoe/GotoSlnx/cmd/goto-slnx/cli"
	"github.com/komimoe/GotoSlnx/cmd/goto-slnx/commands"
)

// Version information (set via ldflags during build)
var (
	version = "0.0.0-dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Set version info
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Setup version after variables are set
	cli.SetupVersion()

	// Register commands
	cli.AddCommand(commands.NewConvertCommand(cli.Console))
	cli.AddCommand(commands.NewTreeCommand(cli.Console))
	cli.AddCommand(commands.NewVersionCommand(cli.Console))

	// Cancel the root context on SIGINT/SIGTERM so watch mode winds
	// down cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute CLI
	if err := cli.ExecuteContext(ctx); err != nil {
		// Print error to stderr since SilenceErrors is true in rootCmd
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
