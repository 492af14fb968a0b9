// internal/cli/run_benchmark.go
package balbis

import (
	"github.com/spf13/cobra"
)

// runBenchmarkCmd launches the benchmark described by a recipe file.
var runBenchmarkCmd = &cobra.Command{
	Use:   "benchmark <recipe>",
	Short: "Run the benchmark described by a recipe",
	Long: `Resolves a recipe file, waits for the target endpoint to serve a model,
and launches the configured benchmark tool against it.

The recipe argument may be an absolute path, a path relative to the
working directory, or a bare name resolved against the recipes
directory (with .yaml and .yml extensions tried automatically).`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		saveResult, _ := cmd.Flags().GetString("save-result")
		return runRunBenchmark(cmd.Context(), args[0], saveResult, dryRun)
	},
}

func init() {
	runBenchmarkCmd.Flags().Bool("dry-run", false, "Print the resolved benchmark command without probing the endpoint or running anything")
	runBenchmarkCmd.Flags().String("save-result", "", "Override the recipe's save_result argument with the given path")
	runCmd.AddCommand(runBenchmarkCmd)
}
