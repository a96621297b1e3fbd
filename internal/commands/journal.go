package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/contport-dev/contport/internal/classify"
	"github.com/contport-dev/contport/internal/poliza"
	"github.com/contport-dev/contport/internal/roles"
	"github.com/contport-dev/contport/internal/sheet"
)

func newJournalCommand() *cobra.Command {
	var cfgPath string
	var policyName string
	var digits int

	cmd := &cobra.Command{
		Use:   "journal <template> <entry.xml> <groups.csv> <output>",
		Short: "Build CONTPAQi póliza rows from a journal-entry XML export",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if digits > 0 {
				cfg.Conversion.TotalDigits = digits
			}
			if policyName != "" {
				cfg.Conversion.Policy = policyName
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runJournal(cmd, args[0], args[1], args[2], args[3],
				cfg.Conversion.Policy, cfg.Conversion.TotalDigits)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to contport.yaml")
	cmd.Flags().StringVar(&policyName, "policy", "", `classification policy: "roles" or "heuristic" (default from config)`)
	cmd.Flags().IntVar(&digits, "digits", 0, "account code width (default from config)")

	return cmd
}

func runJournal(cmd *cobra.Command, templatePath, xmlPath, groupsPath, outputPath, policyName string, digits int) error {
	groupsFile, err := os.Open(groupsPath)
	if err != nil {
		return fmt.Errorf("opening account groups: %w", err)
	}
	rules, err := roles.ReadRules(groupsFile)
	groupsFile.Close()
	if err != nil {
		return err
	}
	index := roles.NewIndex(rules)

	policy, err := classify.ForName(policyName, index)
	if err != nil {
		return err
	}

	xmlFile, err := os.Open(xmlPath)
	if err != nil {
		return fmt.Errorf("opening póliza XML: %w", err)
	}
	polizas, err := poliza.Parse(xmlFile)
	xmlFile.Close()
	if err != nil {
		return err
	}

	rows, emitted := poliza.BuildRows(polizas, policy, digits)

	if err := sheet.AppendToTemplate(templatePath, outputPath, rows); err != nil {
		return err
	}

	skipped := len(polizas) - emitted
	cmd.Printf("Wrote %s: %d pólizas (%d rows, %d excluded)\n", outputPath, emitted, len(rows), skipped)
	return nil
}
