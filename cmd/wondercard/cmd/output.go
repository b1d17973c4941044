package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ssargent/wondercard/pkg/gamedata"
	"github.com/ssargent/wondercard/pkg/pk7"
	"github.com/ssargent/wondercard/pkg/wondercard"
)

// giftRow is one line of the gift listing
type giftRow struct {
	ID   string             `json:"id"`
	Gift wondercard.Summary `json:"gift"`
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputSummary displays a single gift
func outputSummary(cmd *cobra.Command, s wondercard.Summary) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if format == "json" {
		return outputJSON(cmd.OutOrStdout(), s)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Card ID:\t%d\n", s.CardID)
	fmt.Fprintf(w, "Title:\t%s\n", s.Title)
	fmt.Fprintf(w, "Type:\t%s\n", s.CardType)
	if s.Date != "" {
		fmt.Fprintf(w, "Date:\t%s\n", s.Date)
	}
	fmt.Fprintf(w, "Flags:\t%s\n", flagList(s))
	if s.RestrictVersion != 0 || s.RestrictLanguage != 0 {
		fmt.Fprintf(w, "Restrictions:\tversion mask 0x%02X, language %d\n", s.RestrictVersion, s.RestrictLanguage)
	}
	fmt.Fprintf(w, "Eligible Versions:\t%s\n", intList(s.EligibleVersions))

	switch {
	case s.Creature != nil:
		c := s.Creature
		fmt.Fprintf(w, "Species:\t%s (#%d form %d)\n", gamedata.Default().SpeciesName(c.Species, c.Language), c.Species, c.Form)
		fmt.Fprintf(w, "Level:\t%d\n", c.Level)
		if c.OTName != "" {
			fmt.Fprintf(w, "OT:\t%s (%05d/%05d)\n", c.OTName, c.TID, c.SID)
		}
		if c.Nickname != "" {
			fmt.Fprintf(w, "Nickname:\t%s\n", c.Nickname)
		}
		fmt.Fprintf(w, "PID Type:\t%s\n", c.PIDType)
		fmt.Fprintf(w, "Moves:\t%s\n", intList(c.Moves[:]))
		fmt.Fprintf(w, "IVs:\t%s\n", intList(c.IVs[:]))
		if len(c.Ribbons) > 0 {
			fmt.Fprintf(w, "Ribbons:\t%s\n", strings.Join(c.Ribbons, ", "))
		}
	case len(s.Items) > 0:
		for _, it := range s.Items {
			fmt.Fprintf(w, "Item:\t%d x%d\n", it.Item, it.Quantity)
		}
	case s.Bean != nil:
		fmt.Fprintf(w, "Bean:\t%d x%d\n", s.Bean.ID, s.Bean.Quantity)
	case s.BP != nil:
		fmt.Fprintf(w, "BP:\t%d\n", s.BP.Quantity)
	}

	return nil
}

// outputGifts displays a listing of stored gifts
func outputGifts(cmd *cobra.Command, rows []giftRow) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if format == "json" {
		return outputJSON(cmd.OutOrStdout(), rows)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tCARD\tTYPE\tTITLE")
	fmt.Fprintln(w, "--\t----\t----\t-----")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", row.ID, row.Gift.CardID, row.Gift.CardType, row.Gift.Title)
	}
	return nil
}

// outputCreature displays a generated creature
func outputCreature(cmd *cobra.Command, pk *pk7.PK7, seed uint64) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if format == "json" {
		return outputJSON(cmd.OutOrStdout(), struct {
			Seed     uint64   `json:"seed"`
			Shiny    bool     `json:"shiny"`
			Creature *pk7.PK7 `json:"creature"`
		}{seed, pk.IsShiny(), pk})
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Species:\t%s (#%d form %d)\n", gamedata.Default().SpeciesName(pk.Species, pk.Language), pk.Species, pk.Form)
	fmt.Fprintf(w, "Level:\t%d (%d exp)\n", pk.MetLevel, pk.EXP)
	fmt.Fprintf(w, "OT:\t%s (%05d/%05d)\n", pk.OTName, pk.TID, pk.SID)
	if pk.CurrentHandler != 0 {
		fmt.Fprintf(w, "Handler:\t%s\n", pk.HTName)
	}
	fmt.Fprintf(w, "PID:\t%08X\n", pk.PID)
	fmt.Fprintf(w, "Shiny:\t%t\n", pk.IsShiny())
	fmt.Fprintf(w, "Nature:\t%d\n", pk.Nature)
	fmt.Fprintf(w, "Ability:\t%d (slot %d)\n", pk.Ability, pk.AbilityNumber)
	fmt.Fprintf(w, "IVs:\t%s\n", intList(pk.IVs[:]))
	fmt.Fprintf(w, "Moves:\t%s\n", intList(pk.Moves[:]))
	fmt.Fprintf(w, "Version:\t%d\n", pk.Version)
	if pk.MetDate != nil {
		fmt.Fprintf(w, "Met:\t%s\n", pk.MetDate.Format("2006-01-02"))
	}
	fmt.Fprintf(w, "Seed:\t%d\n", seed)
	return nil
}

func flagList(s wondercard.Summary) string {
	var flags []string
	if s.Repeatable {
		flags = append(flags, "repeatable")
	}
	if s.Used {
		flags = append(flags, "used")
	}
	if s.OncePerDay {
		flags = append(flags, "once per day")
	}
	if s.MultiObtain {
		flags = append(flags, "multi obtain")
	}
	if len(flags) == 0 {
		return "none"
	}
	return strings.Join(flags, ", ")
}

// intList formats a list of ints
func intList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
