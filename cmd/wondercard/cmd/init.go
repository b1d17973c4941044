package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/wondercard/pkg/config"
)

func newInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with a fresh API key",
		Long: `Create the wondercard configuration file.

This command will:
- Write the default configuration
- Generate an API key for the REST server

Examples:
  wondercard init
  wondercard init --config ./wondercard.yaml --data-dir ./gifts --print-keys`,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := configPathFlag(cmd)
			dataDir, _ := cmd.Flags().GetString("data-dir")
			force, _ := cmd.Flags().GetBool("force")
			printKeys, _ := cmd.Flags().GetBool("print-keys")

			if config.ConfigExists(configPath) && !force {
				cmd.Printf("Configuration already exists at %s. Use --force to replace it.\n", configPath)
				return nil
			}

			cfg, err := config.BootstrapConfig(configPath, dataDir)
			if err != nil {
				return err
			}

			cmd.Printf("✅ Configuration created at %s\n", configPath)
			cmd.Printf("Data directory: %s\n", cfg.DataDir)
			if printKeys {
				cmd.Printf("\n🔑 API Key: %s\n", cfg.Security.APIKey)
				cmd.Printf("\n⚠️  Store this key securely! It is also saved in %s\n", configPath)
			}
			cmd.Printf("\nYou can now start the server with:\n  wondercard serve --config %s\n", configPath)
			return nil
		},
	}

	initCmd.Flags().Bool("force", false, "Replace an existing configuration")
	initCmd.Flags().Bool("print-keys", false, "Print the generated API key")
	return initCmd
}
