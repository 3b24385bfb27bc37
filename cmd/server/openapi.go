package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/promptlab/internal/api"
	"github.com/JaimeStill/promptlab/internal/infrastructure"
	"github.com/JaimeStill/promptlab/pkg/openapi"
)

var openapiOut string

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Write the OpenAPI document",
	Long: `Write the OpenAPI 3.1 document describing every route to stdout,
or to the file given by --out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		infra, err := infrastructure.New(cfg)
		if err != nil {
			return err
		}
		defer infra.Sync()

		var w io.Writer = cmd.OutOrStdout()
		if openapiOut != "" {
			f, err := os.Create(openapiOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", openapiOut, err)
			}
			defer f.Close()
			w = f
		}

		return openapi.Write(w, api.Spec(cfg, infra))
	},
}

func init() {
	openapiCmd.Flags().StringVarP(&openapiOut, "out", "o", "", "output file (default: stdout)")
}
