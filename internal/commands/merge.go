package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contport-dev/contport/internal/catalog"
	"github.com/contport-dev/contport/internal/sheet"
)

func newMergeCommand() *cobra.Command {
	var cfgPath string
	var digits int

	cmd := &cobra.Command{
		Use:   "merge <base> <additional> <output>",
		Short: "Merge two built account catalogs, keeping the base and adding missing accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if digits > 0 {
				cfg.Conversion.TotalDigits = digits
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runMerge(cmd, args[0], args[1], args[2], cfg.Conversion.TotalDigits)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to contport.yaml")
	cmd.Flags().IntVar(&digits, "digits", 0, "account code width (default from config)")

	return cmd
}

func runMerge(cmd *cobra.Command, basePath, extraPath, outputPath string, digits int) error {
	base, err := sheet.Open(basePath)
	if err != nil {
		return fmt.Errorf("reading base catalog: %w", err)
	}
	extra, err := sheet.Open(extraPath)
	if err != nil {
		return fmt.Errorf("reading additional catalog: %w", err)
	}

	added := catalog.Merge(base.Rows, extra.Rows, digits)

	rows := make([]sheet.Row, len(added))
	for i, r := range added {
		cells := make([]any, len(r))
		for c, v := range r {
			cells[c] = v
		}
		rows[i] = sheet.Row{Cells: cells, Highlight: sheet.HighlightNew}
	}

	// The base file doubles as the template: its rows are kept and the
	// new accounts land after them, highlighted for review.
	if err := sheet.AppendToTemplate(basePath, outputPath, rows); err != nil {
		return err
	}

	cmd.Printf("Wrote %s: %d accounts added from %s\n", outputPath, len(added), extraPath)
	return nil
}
