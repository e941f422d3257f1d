package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes: success, runtime failure, bad usage, operator interrupt.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
	ExitInterrupt    = 130
)

var rootCmd = &cobra.Command{
	Use:   "greviews",
	Short: "Analyze Google Business Profile reviews from Takeout data",
	Long:  "Greviews loads Business Profile reviews from an extracted Google Takeout archive, filters them by date and star rating, and counts person names mentioned in review comments.",
}

// Run executes the root command and returns an exit code.
func Run(ctx context.Context) int {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print greviews version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "greviews version %s\n", version)
	},
}
