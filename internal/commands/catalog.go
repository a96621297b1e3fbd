package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/contport-dev/contport/internal/catalog"
	"github.com/contport-dev/contport/internal/config"
	"github.com/contport-dev/contport/internal/ledgerref"
	"github.com/contport-dev/contport/internal/model"
	"github.com/contport-dev/contport/internal/sheet"
)

// Fixed debit/credit total columns (G and H) of the account export.
const (
	colDebit  = 6
	colCredit = 7
)

func newCatalogCommand() *cobra.Command {
	var cfgPath string
	var reference string
	var digits int

	cmd := &cobra.Command{
		Use:   "catalog <template> <entry> <output>",
		Short: "Build a CONTPAQi account catalog from an account export",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if digits > 0 {
				cfg.Conversion.TotalDigits = digits
			}
			if reference != "" {
				cfg.Catalog.Reference = reference
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runCatalog(cmd, args[0], args[1], args[2], cfg)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to contport.yaml")
	cmd.Flags().StringVar(&reference, "reference", "", "SAT grouping reference table (default from config)")
	cmd.Flags().IntVar(&digits, "digits", 0, "account code width (default from config)")

	return cmd
}

func runCatalog(cmd *cobra.Command, templatePath, entryPath, outputPath string, cfg *config.Config) error {
	doc, err := sheet.Open(entryPath)
	if err != nil {
		return fmt.Errorf("reading entry file: %w", err)
	}

	rawRows, err := entryRows(doc, cfg.Catalog)
	if err != nil {
		return err
	}

	table := loadReference(cmd, cfg.Catalog.Reference)

	nodes := catalog.Build(rawRows, table, cfg.Conversion.TotalDigits)
	rows := catalog.Rows(nodes, time.Now())

	if err := sheet.AppendToTemplate(templatePath, outputPath, rows); err != nil {
		return err
	}

	var inherited, unmatched int
	for _, n := range nodes {
		switch n.Match {
		case model.MatchInherited:
			inherited++
		case model.MatchUnmatched:
			unmatched++
		}
	}
	cmd.Printf("Wrote %s: %d accounts (%d inherited, %d unmatched)\n",
		outputPath, len(nodes), inherited, unmatched)
	return nil
}

// entryRows trims the report title and total rows, then maps the data
// rows to raw catalog rows with indent levels and debit/credit totals.
func entryRows(doc *sheet.Document, cfg config.CatalogConfig) ([]catalog.RawRow, error) {
	skip := cfg.SkipLeading + cfg.SkipTrailing
	if len(doc.Rows) < skip+2 {
		return nil, fmt.Errorf("entry file too short: %d rows", len(doc.Rows))
	}
	body := doc.Rows[cfg.SkipLeading : len(doc.Rows)-cfg.SkipTrailing]

	codeIdx, nameIdx := catalog.FindColumns(body[0])

	rows := make([]catalog.RawRow, 0, len(body)-1)
	for i, row := range body[1:] {
		docRow := cfg.SkipLeading + 1 + i
		name := doc.Cell(docRow, nameIdx)
		rows = append(rows, catalog.RawRow{
			Indent: catalog.IndentLevel(doc.Indent(docRow, nameIdx), name),
			Code:   cellAt(row, codeIdx),
			Name:   name,
			Debit:  safeDecimal(cellAt(row, colDebit)),
			Credit: safeDecimal(cellAt(row, colCredit)),
		})
	}
	return rows, nil
}

// loadReference reads the grouping reference table, degrading to an
// empty table (everything unmatched) when it cannot be read.
func loadReference(cmd *cobra.Command, path string) *ledgerref.Table {
	if path == "" {
		return ledgerref.Empty()
	}
	doc, err := sheet.Open(path)
	if err != nil {
		cmd.Printf("Warning: reference table %s unavailable (%v); all accounts will be unmatched\n", path, err)
		return ledgerref.Empty()
	}
	return ledgerref.FromRows(doc.Rows)
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// safeDecimal parses a magnitude cell, defaulting to zero.
func safeDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
