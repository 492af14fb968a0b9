// internal/cli/validate_recipe.go
package balbis

import (
	"github.com/spf13/cobra"
)

// validateRecipeCmd checks a recipe file without contacting the endpoint.
var validateRecipeCmd = &cobra.Command{
	Use:   "recipe <recipe>",
	Short: "Validate a benchmark recipe",
	Long: `Resolve and parse a recipe file, fill in the launcher's defaults, and
report whether 'run benchmark' would accept it. Validation checks the
framework name, the argument value shapes, and, for enabled recipes,
that the benchmark tool is installed.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidateRecipe(cmd, args[0])
	},
}

func init() {
	validateCmd.AddCommand(validateRecipeCmd)
}
