// internal/cli/list.go
package balbis

import "github.com/spf13/cobra"

// listCmd represents the 'list' command group for enumerating resources.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
	Long:  `The 'list' command groups subcommands that list resources related to balbis.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
