// Package cli defines the adg command tree.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scthornton/analytics-data-gen-parquet/pkg/logger"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for adg.
func NewRootCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "adg",
		Short: "Synthetic web analytics dataset generator",
		Long: `adg synthesizes a deterministic, statistically plausible web analytics
dataset: per-user event streams plus daily and per-session aggregate tables,
written as parquet files (and optionally into ClickHouse).

The same seed, user count and day count always reproduce the same tables.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				color.NoColor = true
			}
			return logger.Init()
		},
	}

	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewInspectCommand())

	return cmd
}
