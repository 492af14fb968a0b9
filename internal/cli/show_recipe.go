// internal/cli/show_recipe.go
package balbis

import (
	"github.com/spf13/cobra"
)

// showRecipeCmd displays a resolved, normalized recipe and the command it would run.
var showRecipeCmd = &cobra.Command{
	Use:   "recipe <recipe>",
	Short: "Show a resolved benchmark recipe",
	Long: `Resolve a recipe file, fill in the launcher's defaults, and display the
normalized benchmark section together with the command 'run benchmark'
would launch. With --debug the full parsed recipe structure is dumped.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShowRecipe(cmd, args[0])
	},
}

func init() {
	showCmd.AddCommand(showRecipeCmd)
}
