package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dataqa/internal"
	"dataqa/internal/config"
	"dataqa/internal/report"
)

var (
	flagOutPrefix  string
	flagMaxColumns int
	flagNoPlots    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a CSV or xlsx file and write a quality report",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&flagOutPrefix, "out-prefix", "", "output directory prefix (default \"quality_report\")")
	analyzeCmd.Flags().IntVar(&flagMaxColumns, "max-columns", 0, "advisory column ceiling before warning (default 30)")
	analyzeCmd.Flags().BoolVar(&flagNoPlots, "no-plots", false, "skip PNG chart rendering")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// Flags override the environment
	if flagOutPrefix != "" {
		cfg.OutPrefix = flagOutPrefix
	}
	if cmd.Flags().Changed("max-columns") {
		cfg.MaxColumns = flagMaxColumns
	}
	if flagNoPlots {
		cfg.NoPlots = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := internal.NewLogger(cfg.LogLevel)
	dir, err := report.NewWriter(cfg, log).Run(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", dir)
	return nil
}
