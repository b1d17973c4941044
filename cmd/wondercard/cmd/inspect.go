package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/wondercard/pkg/wondercard"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Decode a gift record file",
		Long: `Decode a bare or wrapped gift record and print its contents.

Example:
  wondercard inspect gift.wc7
  wondercard inspect gift.wc7full --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := readCard(args[0], a.cfg.Security.MaxRecordSize)
			if err != nil {
				return err
			}
			return outputSummary(cmd, wondercard.Summarize(card))
		},
	}
}

// readCard decodes the record stored in path
func readCard(path string, maxSize int) (*wondercard.WC7, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if maxSize > 0 && info.Size() > int64(maxSize) {
		return nil, fmt.Errorf("%s is %d bytes, larger than the %d byte limit", path, info.Size(), maxSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	return wondercard.Decode(data), nil
}
