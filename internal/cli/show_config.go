// internal/cli/show_config.go
package balbis

import (
	"github.com/mwiater/balbis/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			RecipesDir:            viper.GetString("recipesDir"),
			Debug:                 viper.GetBool("debug"),
			Warmup:                viper.GetBool("warmup"),
			WaitTimeoutSeconds:    viper.GetInt("waitTimeout"),
			WaitIntervalSeconds:   viper.GetInt("waitInterval"),
			RequestTimeoutSeconds: viper.GetInt("requestTimeout"),
			LogFile:               viper.GetString("logFile"),
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig(), fallback)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
