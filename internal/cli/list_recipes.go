// internal/cli/list_recipes.go
package balbis

import (
	"github.com/spf13/cobra"
)

// listRecipesCmd implements 'list recipes', which enumerates the recipe
// files in the recipes directory and labels their benchmark status.
var listRecipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "List recipe files in the recipes directory",
	Long:  `The 'recipes' subcommand lists the YAML recipe files in the recipes directory (default: recipes), indicating whether each one has its benchmark enabled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListRecipes()
	},
}

func init() {
	listCmd.AddCommand(listRecipesCmd)
}
