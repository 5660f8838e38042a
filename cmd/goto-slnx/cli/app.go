// cmd/goto-slnx/cli/app.go
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/komimoe/GotoSlnx/cmd/goto-slnx/output"
)

var rootCmd = &cobra.Command{
	Use:   "goto-slnx",
	Short: "Convert Visual Studio .sln solutions to the XML .slnx format",
	Long: `goto-slnx converts a Visual Studio text solution file (.sln) into the
XML solution format (.slnx), preserving solution folders, solution
items, project dependencies, and per-configuration build and deploy
mappings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// Show help when no command is provided
		_ = cmd.Help()
	},
}

// Console is the global console for CLI commands
var Console *output.Console

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which commands
// receive through cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	Console = output.DefaultConsole()

	rootCmd.PersistentFlags().StringP("verbosity", "", "normal", "Display verbosity (quiet, normal, detailed, diagnostic)")
}

// SetupVersion configures version information after variables are set
func SetupVersion() {
	rootCmd.SetVersionTemplate(GetFullVersion() + "\n")
	rootCmd.Version = GetVersion()
}

// AddCommand adds a command to the root command
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
