// Package cmd implements the wondercard command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssargent/wondercard/pkg/api"
	"github.com/ssargent/wondercard/pkg/config"
	"github.com/ssargent/wondercard/pkg/di"
	"github.com/ssargent/wondercard/pkg/logging"
)

// skipConfig marks commands that run before a config file exists
const skipConfig = "skip-config"

var container *di.Container

// SetContainer sets the dependency container used by Execute
func SetContainer(c *di.Container) {
	container = c
}

// app is the state shared by subcommands once the root command has run
type app struct {
	container *di.Container
	cfg       *config.Config
	logger    *zap.Logger
}

// NewRootCmd builds the command tree around c
func NewRootCmd(c *di.Container) *cobra.Command {
	a := &app{container: c, logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "wondercard",
		Short: "Wondercard - generation 7 gift records",
		Long: `Wondercard decodes generation 7 gift records, keeps them in a local
store and redeems creature gifts into generation 7 creatures.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfig] != "" {
				return nil
			}
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: OS-specific location)")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "", "Data directory for the gift store")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("format", "table", "Output format (table or json)")

	rootCmd.AddCommand(
		newInitCmd(),
		newInspectCmd(a),
		newConvertCmd(a),
		newImportCmd(a),
		newGetCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newServeCmd(a),
		newServiceCmd(a),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if container == nil {
		container = di.NewContainer()
	}
	if err := NewRootCmd(container).Execute(); err != nil {
		os.Exit(1)
	}
}

// load reads the config file when there is one, otherwise the defaults, then
// applies environment and flag overrides
func (a *app) load(cmd *cobra.Command) error {
	configPath := configPathFlag(cmd)

	var cfg *config.Config
	if config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
		if err := config.ApplyEnv(cfg); err != nil {
			return err
		}
	}

	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded", zap.String("path", configPath), zap.String("data_dir", cfg.DataDir))
	return nil
}

// openStore opens the gift store in the configured data directory
func (a *app) openStore() (api.ClosableGiftStore, error) {
	if a.container == nil {
		return nil, fmt.Errorf("dependency container not initialized")
	}
	if err := os.MkdirAll(a.cfg.DataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return a.container.GetStoreOpener().OpenStore(a.cfg.DataDir, a.logger)
}

func configPathFlag(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.GetDefaultConfigPath()
}
