package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssargent/wondercard/pkg/storage"
	"github.com/ssargent/wondercard/pkg/wondercard"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Store gift record files",
		Long: `Decode gift record files and add them to the gift store.

Example:
  wondercard import gift1.wc7 gift2.wc7full`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			for _, path := range args {
				card, err := readCard(path, a.cfg.Security.MaxRecordSize)
				if err != nil {
					return err
				}
				id, err := store.Create(card)
				if err != nil {
					return fmt.Errorf("failed to store %s: %w", path, err)
				}
				a.logger.Debug("imported gift", zap.String("path", path), zap.Stringer("id", id))
				cmd.Printf("Imported %s as %s\n", path, id)
			}
			return nil
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a stored gift",
		Long: `Show a stored gift, or write its record bytes with --out.

Example:
  wondercard get 2FzJ4...
  wondercard get 2FzJ4... --out gift.wc7full --wrapped`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			wrapped, _ := cmd.Flags().GetBool("wrapped")

			card, err := a.readStored(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				return outputSummary(cmd, wondercard.Summarize(card))
			}

			data := card.Bytes()
			if wrapped {
				data = card.Wrap()
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			cmd.Printf("Wrote %d bytes to %s\n", len(data), out)
			return nil
		},
	}
	getCmd.Flags().StringP("out", "o", "", "Write the record bytes to this file")
	getCmd.Flags().Bool("wrapped", false, "Write the wrapped distribution form")
	return getCmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored gifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ids, err := store.List()
			if err != nil {
				return err
			}
			rows := make([]giftRow, 0, len(ids))
			for _, id := range ids {
				card, err := store.Read(id)
				if err != nil {
					a.logger.Warn("skipping unreadable gift", zap.Stringer("id", id), zap.Error(err))
					continue
				}
				rows = append(rows, giftRow{ID: id.String(), Gift: wondercard.Summarize(card)})
			}
			return outputGifts(cmd, rows)
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored gift",
		Long: `Delete a gift from the gift store.

Example:
  wondercard delete 2FzJ4...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := storage.ParseID(args[0])
			if err != nil {
				return err
			}
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(id); err != nil {
				return err
			}
			cmd.Printf("Successfully deleted gift '%s'\n", id)
			return nil
		},
	}
}
