package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dataqa",
	Short: "Audit tabular data quality",
	Long: `dataqa audits a CSV or xlsx file for quality issues: missing values,
duplicate rows, distribution shape and outliers, and correlations between
numeric columns. It writes a multi-sheet xlsx report and PNG charts into a
timestamped output directory.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
