package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PromptLab HTTP server",
	Long: `Start the PromptLab HTTP server.

The server runs until interrupted (Ctrl+C or SIGTERM), then drains in-flight
requests within the configured shutdown timeout.

Examples:
  promptlab serve                          # Start on the configured port
  promptlab serve --port 3000              # Override the port
  promptlab serve --config ./deploy.toml   # Use another base config file`,
	RunE: runServe,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides server.port)")
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
		if err := cfg.Server.Finalize(); err != nil {
			return err
		}
	}

	srv, err := NewServer(cfg)
	if err != nil {
		return err
	}

	if err := srv.Start(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(srv.Serve)
	g.Go(func() error {
		<-ctx.Done()
		return srv.Shutdown(cfg.ShutdownTimeoutDuration())
	})

	return g.Wait()
}
