// internal/cli/validate.go
package balbis

import "github.com/spf13/cobra"

// validateCmd represents the 'validate' command group for checking resources.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Group commands for validating resources",
	Long:  `The 'validate' command groups subcommands that check recipes and configuration without running anything.`,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
