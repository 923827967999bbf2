package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dataqa/internal/testkit"
)

var (
	flagGenRows int
	flagGenSeed uint64
	flagGenOut  string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a seeded sample dataset with known quality defects",
	RunE:  runGen,
}

func init() {
	genCmd.Flags().IntVar(&flagGenRows, "rows", 1000, "base row count before duplicates")
	genCmd.Flags().Uint64Var(&flagGenSeed, "seed", 42, "random seed")
	genCmd.Flags().StringVar(&flagGenOut, "out", "sample_data.csv", "output file")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	gen := testkit.NewGenerator(flagGenSeed, flagGenRows)
	if err := gen.WriteCSV(flagGenOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "sample data written to %s\n", flagGenOut)
	return nil
}
