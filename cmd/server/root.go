package main

import (
	"github.com/spf13/cobra"

	"github.com/JaimeStill/promptlab/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "promptlab",
	Short: "Prompt template and collection service",
	Long: `PromptLab stores prompt templates and the collections that group them,
and serves them over a JSON REST API.

Running promptlab without a subcommand is the same as "promptlab serve".`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", config.BaseConfigFile, "base config file; config.<PROMPTLAB_ENV>.toml beside it is applied as an overlay",
	)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(openapiCmd)
}

func loadConfig() (*config.Config, error) {
	return config.LoadFrom(cfgFile)
}
