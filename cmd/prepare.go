package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivianokoye/nutristat/internal/dataset"
	"github.com/vivianokoye/nutristat/internal/prep"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Normalize, code, and score the raw survey export",
	Long: `prepare loads the raw survey export, canonicalizes its text fields,
codes every food frequency response onto the 1-6 scale, derives BMI
categories, and computes each participant's Dietary Diversity Score.
The prepared table is written as the snapshot CSV all analysis
sections read.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("[1/3] Loading %s...\n", cfg.InputPath)
		t, err := readInput(cfg.InputPath, cfg.Sheet)
		if err != nil {
			return err
		}
		fmt.Printf("   ✓ Loaded %d participants, %d columns\n", t.Len(), len(t.Columns()))

		fmt.Println("[2/3] Preparing data...")
		summary, err := prep.Run(t, prep.DefaultCatalog())
		if err != nil {
			return err
		}
		fmt.Printf("   ✓ Normalized %d text columns\n", summary.TextColumns)
		fmt.Printf("   ✓ Coded %d food frequency items\n", summary.CodedItems)
		for _, cat := range prep.Categories {
			if n := summary.BMIDistribution[cat]; n > 0 {
				fmt.Printf("      - %s: %d\n", cat, n)
			}
		}
		fmt.Printf("   ✓ DDS mean %.2f (range %.0f-%.0f)\n", summary.DDS.Mean, summary.DDS.Min, summary.DDS.Max)

		fmt.Println("[3/3] Writing snapshot...")
		if err := dataset.WriteCSV(t, cfg.SnapshotPath); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		if err := summary.WriteSummary(cfg.SummaryPath); err != nil {
			return err
		}
		fmt.Printf("   ✓ Snapshot written to %s\n", cfg.SnapshotPath)
		fmt.Printf("   ✓ Summary written to %s\n", cfg.SummaryPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prepareCmd)
}
