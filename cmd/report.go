package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vivianokoye/nutristat/internal/report"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compile all section workbooks into one markdown report",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := uuid.NewString()
		compiled, err := report.Compile(cfg.ResultsDir, runID)
		if err != nil {
			return err
		}
		for _, w := range compiled.Warnings {
			fmt.Fprintf(os.Stderr, "⚠ Warning: %s\n", w)
		}

		out := reportOut
		if out == "" {
			out = filepath.Join(cfg.ResultsDir, "analysis_report.md")
		}
		if err := os.WriteFile(out, []byte(compiled.Markdown), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("✓ Report written to %s (run %s)\n", out, runID)

		if len(compiled.Key) == 0 {
			fmt.Println("(no significant findings)")
			return nil
		}
		fmt.Println("\nKey findings:")
		for _, tbl := range compiled.Key {
			fmt.Printf("\n%s\n", tbl.Name)
			report.Render(os.Stdout, tbl)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "report output path (default results/analysis_report.md)")
	rootCmd.AddCommand(reportCmd)
}
