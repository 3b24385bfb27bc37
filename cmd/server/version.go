package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "promptlab %s\n", cfg.Version)
		fmt.Fprintf(out, "  Go:  %s\n", runtime.Version())
		fmt.Fprintf(out, "  Env: %s\n", cfg.Env())
		return nil
	},
}
