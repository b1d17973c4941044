package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ssargent/wondercard/pkg/api"
)

func newServeCmd(a *app) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start the wondercard REST API server over the gift store.

Examples:
  wondercard serve
  wondercard serve --port 9000 --bind 0.0.0.0
  wondercard serve --api-key mysecretkey --data-dir ./gifts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("port") {
				cfg.Port, _ = cmd.Flags().GetInt("port")
			}
			if cmd.Flags().Changed("bind") {
				cfg.Bind, _ = cmd.Flags().GetString("bind")
			}
			if cmd.Flags().Changed("api-key") {
				cfg.Security.APIKey, _ = cmd.Flags().GetString("api-key")
			}
			if cfg.Security.APIKey == "" || cfg.Security.APIKey == "auto" {
				return fmt.Errorf("no API key configured (run 'wondercard init' or pass --api-key)")
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			cmd.Printf("🚀 Starting wondercard server on %s:%d\n", cfg.Bind, cfg.Port)
			cmd.Printf("📁 Data directory: %s\n", cfg.DataDir)

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			starter := a.container.GetServerFactory().CreateServerStarter()
			return starter.StartServer(ctx, store, api.ServerConfig{
				Port:          cfg.Port,
				Bind:          cfg.Bind,
				APIKey:        cfg.Security.APIKey,
				MaxRecordSize: cfg.Security.MaxRecordSize,
				Trainer:       cfg.Trainer,
				Seed:          cfg.Generator.Seed,
			}, a.logger)
		},
	}

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind server to")
	serveCmd.Flags().String("api-key", "", "API key for client authentication")
	return serveCmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
