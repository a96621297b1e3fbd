// Package commands wires the conversion pipeline into the contport CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contport-dev/contport/internal/buildinfo"
	"github.com/contport-dev/contport/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "contport",
		Short:   "Convert Odoo accounting exports into CONTPAQi import sheets",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newCatalogCommand())
	rootCmd.AddCommand(newMergeCommand())
	rootCmd.AddCommand(newJournalCommand())

	return rootCmd
}

// loadConfig reads the given contport.yaml, or returns defaults when
// no path is set.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
