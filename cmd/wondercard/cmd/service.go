package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ssargent/wondercard/pkg/config"
)

const defaultUnitPath = "/etc/systemd/system/wondercard.service"

func newServiceCmd(a *app) *cobra.Command {
	serviceCmd := &cobra.Command{
		Use:   "service",
		Short: "Manage wondercard as a systemd service",
	}

	unitCmd := &cobra.Command{
		Use:   "unit",
		Short: "Print the systemd unit for the configured server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, _ := cmd.Flags().GetString("user")
			binary, _ := cmd.Flags().GetString("binary")
			_, err := fmt.Fprint(cmd.OutOrStdout(), systemdUnit(a.cfg, configPathFlag(cmd), user, binary))
			return err
		},
	}

	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Install wondercard as a systemd service",
		Long: `Write the systemd unit for the configured server and optionally start it.

Examples:
  sudo wondercard service install --user wondercard --start
  wondercard service install --unit-path ./wondercard.service`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, _ := cmd.Flags().GetString("user")
			binary, _ := cmd.Flags().GetString("binary")
			unitPath, _ := cmd.Flags().GetString("unit-path")
			start, _ := cmd.Flags().GetBool("start")

			unit := systemdUnit(a.cfg, configPathFlag(cmd), user, binary)
			if err := os.WriteFile(unitPath, []byte(unit), 0600); err != nil {
				return fmt.Errorf("failed to write unit file: %w", err)
			}
			cmd.Printf("✅ Unit written to %s\n", unitPath)

			if !start {
				return nil
			}
			for _, args := range [][]string{{"daemon-reload"}, {"enable", "--now", filepath.Base(unitPath)}} {
				if err := runSystemctlCommand(args...); err != nil {
					return fmt.Errorf("systemctl %v failed: %w", args, err)
				}
			}
			cmd.Printf("🚀 Service started\n")
			return nil
		},
	}

	for _, c := range []*cobra.Command{unitCmd, installCmd} {
		c.Flags().String("user", "wondercard", "User and group the service runs as")
		c.Flags().String("binary", "/usr/local/bin/wondercard", "Path of the wondercard binary")
	}
	installCmd.Flags().String("unit-path", defaultUnitPath, "Where to write the unit file")
	installCmd.Flags().Bool("start", false, "Reload systemd and start the service")

	serviceCmd.AddCommand(unitCmd, installCmd)
	return serviceCmd
}

// systemdUnit renders the unit file running the server
func systemdUnit(cfg *config.Config, configPath, user, binary string) string {
	return fmt.Sprintf(`[Unit]
Description=Wondercard Gift Server
After=network-online.target
Wants=network-online.target

[Service]
User=%s
Group=%s
ExecStart=%s serve --config %s
Restart=on-failure
NoNewPrivileges=true
UMask=0077
ReadWritePaths=%s
ReadOnlyPaths=%s

[Install]
WantedBy=multi-user.target
`, user, user, binary, configPath, cfg.DataDir, filepath.Dir(configPath))
}

// runSystemctlCommand runs a systemctl command
func runSystemctlCommand(args ...string) error {
	c := exec.Command("systemctl", args...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
